// Package validate checks input shape before any storage access.
// All failures wrap entity.ErrValidation.
package validate

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/project/dbcentral/internal/entity"
)

const (
	MaxNameLen  = 100
	MaxEmailLen = 100
	MaxTitleLen = 200
)

var errNoAtSign = errors.New("must contain the @ character")

// containsAt is deliberately permissive: presence of "@" only,
// not a full RFC 5322 check.
var containsAt = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if !strings.Contains(s, "@") {
		return errNoAtSign
	}
	return nil
})

func wrap(field string, err error) error {
	return fmt.Errorf("%s: %v: %w", field, err, entity.ErrValidation)
}

// String trims value and fails if the result is empty or longer than
// maxLen runes. maxLen <= 0 means unbounded. Returns the trimmed value.
func String(value, field string, maxLen int) (string, error) {
	trimmed := strings.TrimSpace(value)

	rules := []validation.Rule{validation.Required}
	if maxLen > 0 {
		rules = append(rules, validation.RuneLength(1, maxLen))
	}

	if err := validation.Validate(trimmed, rules...); err != nil {
		return "", wrap(field, err)
	}

	return trimmed, nil
}

func Name(value string) (string, error) {
	return String(value, "name", MaxNameLen)
}

func Email(value string) (string, error) {
	trimmed, err := String(value, "email", MaxEmailLen)

	if err != nil {
		return "", err
	}

	if err = validation.Validate(trimmed, containsAt); err != nil {
		return "", wrap("email", err)
	}

	return trimmed, nil
}

func Title(value string) (string, error) {
	return String(value, "title", MaxTitleLen)
}

func Content(value string) (string, error) {
	return String(value, "content", 0)
}

// ID fails unless id is a positive integer.
func ID(id int64) error {
	if err := validation.Validate(id, validation.Required, validation.Min(int64(1))); err != nil {
		return wrap("id", err)
	}
	return nil
}

// Query validates a search term: non-empty after trimming.
func Query(value string) (string, error) {
	return String(value, "query", 0)
}
