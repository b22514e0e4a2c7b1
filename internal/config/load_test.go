package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".nustudy", "nustudy.txt"), cfg.Data.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.NoError(t, os.MkdirAll(filepath.Join(home, ".nustudy"), 0o700))
	require.NoError(t, os.WriteFile(FilePath(home), []byte("[data]\npath = \"~/study/records.txt\"\n\n[log]\nlevel = \"DEBUG\"\n"), 0o600))

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "study", "records.txt"), cfg.Data.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("NUSTUDY_LOG_LEVEL", "error")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadExplicitValuesWin(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	v := viper.New()
	v.Set(DataPathKey, "/tmp/elsewhere.txt")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/elsewhere.txt", cfg.Data.Path)
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	v := viper.New()
	v.Set(LogLevelKey, "verbose")

	_, err := Load(v)
	require.Error(t, err)
	assert.ErrorContains(t, err, "validate config")
}

func TestValidateRequiresEverySection(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate(Default(t.TempDir())))

	err := Validate(Config{Log: LogConfig{Level: "warn"}})
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)

	failed := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		failed[fieldErr.Namespace()] = fieldErr.Tag()
	}
	assert.Equal(t, "required", failed["Config.Data"])
	assert.NotContains(t, failed, "Config.Log")
}

func TestWriteFileRoundTripsThroughLoad(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	want := Config{
		Data: DataConfig{Path: filepath.Join(home, "records.txt")},
		Log:  LogConfig{Level: "info"},
	}
	require.NoError(t, WriteFile(FilePath(home), want, false))

	got, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	err = WriteFile(FilePath(home), want, false)
	assert.ErrorIs(t, err, ErrConfigExists)
	assert.NoError(t, WriteFile(FilePath(home), want, true))
}
