package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "plain date", token: "2024-03-01", want: true},
		{name: "leap day in leap year", token: "2024-02-29", want: true},
		{name: "leap day in common year", token: "2023-02-29", want: false},
		{name: "february 30", token: "2024-02-30", want: false},
		{name: "month 13", token: "2024-13-01", want: false},
		{name: "day zero", token: "2024-01-00", want: false},
		{name: "not zero padded", token: "2024-3-1", want: false},
		{name: "signed year", token: "+024-03-01", want: false},
		{name: "slashes", token: "2024/03/01", want: false},
		{name: "course name", token: "CS2113", want: false},
		{name: "empty", token: "", want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, IsValidDate(tc.token))
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	got, err := ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, "2024-03-01", FormatDate(got))

	_, err = ParseDate("2024-02-30")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestEarliestCalendarDateIsValid(t *testing.T) {
	t.Parallel()

	got, err := ParseDate("0001-01-01")
	require.NoError(t, err)
	assert.Equal(t, "0001-01-01", FormatDate(got))
	assert.True(t, IsValidDate("0001-01-01"))
}
