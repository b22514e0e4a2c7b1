package application

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/arpahome/nustudy/internal/domain"
)

const (
	addUsage    = "Usage: add <course> OR add <course> <hours> [<date>]"
	listUsage   = "Usage: list OR list <course>"
	editUsage   = "Usage: edit <course> <newName> OR edit <course> <index> <hours>"
	deleteUsage = "Usage: delete <date> OR delete <course> OR delete <course> <index>"
	filterUsage = "Currently supported: filter <course>"
)

// ParseCommand turns one line of user input into a Command. It is a pure
// function: the grammar is picked from the verb and then disambiguated by
// token count and by whether a token looks like a date.
func ParseCommand(input string) (Command, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: Input cannot be empty", domain.ErrInvalidCommand)
	}

	verb, arguments := splitVerb(trimmed)
	switch strings.ToLower(verb) {
	case "add":
		return parseAdd(arguments)
	case "list":
		return parseList(arguments)
	case "reset":
		command, err := NewResetHoursCommand(arguments)
		return built(command, err)
	case "edit":
		return parseEdit(arguments)
	case "delete":
		return parseDelete(arguments)
	case "exit":
		if arguments != "" {
			return nil, fmt.Errorf("%w: Invalid exit command format. Usage: exit", domain.ErrInvalidCommand)
		}
		return ExitCommand{}, nil
	case "filter":
		return parseFilter(arguments)
	default:
		return nil, fmt.Errorf("%w: Wrong command", domain.ErrInvalidCommand)
	}
}

func splitVerb(input string) (string, string) {
	i := strings.IndexFunc(input, unicode.IsSpace)
	if i < 0 {
		return input, ""
	}
	return input[:i], strings.TrimSpace(input[i:])
}

func parseAdd(arguments string) (Command, error) {
	parts := strings.Fields(arguments)
	switch len(parts) {
	case 1:
		command, err := NewAddCourseCommand(parts[0])
		return built(command, err)
	case 2, 3:
		hours, err := parseNumber("hours", parts[1])
		if err != nil {
			return nil, err
		}

		var date *time.Time
		if len(parts) == 3 {
			parsed, err := domain.ParseDate(parts[2])
			if err != nil {
				return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCommand, err)
			}
			date = &parsed
		}
		command, err := NewAddSessionCommand(parts[0], hours, date)
		return built(command, err)
	case 0:
		return nil, fmt.Errorf("%w: Add command requires arguments. %s", domain.ErrInvalidCommand, addUsage)
	default:
		return nil, fmt.Errorf("%w: Invalid add command format. %s", domain.ErrInvalidCommand, addUsage)
	}
}

func parseList(arguments string) (Command, error) {
	parts := strings.Fields(arguments)
	switch len(parts) {
	case 0:
		return ListCoursesCommand{}, nil
	case 1:
		command, err := NewListSessionsCommand(parts[0])
		return built(command, err)
	default:
		return nil, fmt.Errorf("%w: Invalid list command format. %s", domain.ErrInvalidCommand, listUsage)
	}
}

func parseEdit(arguments string) (Command, error) {
	parts := strings.Fields(arguments)
	switch len(parts) {
	case 2:
		command, err := NewEditCourseNameCommand(parts[0], parts[1])
		return built(command, err)
	case 3:
		index, err := parseNumber("index", parts[1])
		if err != nil {
			return nil, err
		}
		hours, err := parseNumber("hours", parts[2])
		if err != nil {
			return nil, err
		}
		command, err := NewEditSessionCommand(parts[0], index, hours)
		return built(command, err)
	default:
		return nil, fmt.Errorf("%w: Invalid edit command format. %s", domain.ErrInvalidCommand, editUsage)
	}
}

func parseDelete(arguments string) (Command, error) {
	parts := strings.Fields(arguments)
	switch len(parts) {
	case 1:
		if date, err := domain.ParseDate(parts[0]); err == nil {
			return DeleteSessionsByDateCommand{Date: date}, nil
		}
		command, err := NewDeleteCourseCommand(parts[0])
		return built(command, err)
	case 2:
		index, err := parseNumber("index", parts[1])
		if err != nil {
			return nil, err
		}
		command, err := NewDeleteSessionByIndexCommand(parts[0], index)
		return built(command, err)
	default:
		return nil, fmt.Errorf("%w: Invalid delete command format. %s", domain.ErrInvalidCommand, deleteUsage)
	}
}

// parseFilter only accepts a single course keyword. Date and compound
// filters are rejected until they are implemented.
func parseFilter(arguments string) (Command, error) {
	parts := strings.Fields(arguments)
	if len(parts) == 1 && !domain.IsValidDate(parts[0]) {
		return FilterByNameCommand{Keyword: parts[0]}, nil
	}
	return nil, fmt.Errorf("%w: Invalid filter command. %s", domain.ErrInvalidCommand, filterUsage)
}

func parseNumber(field, token string) (int, error) {
	value, ok := domain.ParseInteger(token)
	if !ok {
		return 0, fmt.Errorf("%w: %s %q is not an integer", domain.ErrInvalidCommand, field, token)
	}
	return value, nil
}

// built keeps a failed constructor from leaking a zero-valued command through
// the Command interface.
func built[C Command](command C, err error) (Command, error) {
	if err != nil {
		return nil, err
	}
	return command, nil
}
