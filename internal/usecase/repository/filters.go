package repository

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/project/dbcentral/internal/entity"
)

// Condition is one field = value equality constraint. Multiple conditions
// combine with AND. Field names are checked against the entity's permitted
// column set before any SQL is built; an unknown field is a validation
// error, never a silent empty result.
type Condition struct {
	Field string
	Value any
}

func Eq(field string, value any) Condition {
	return Condition{Field: field, Value: value}
}

var (
	authorFields = []string{"id", "name", "email"}
	bookFields   = []string{"id", "title", "content", "author_id"}
)

func buildWhere(allowed []string, conds []Condition) (string, []any, error) {
	if len(conds) == 0 {
		return "", nil, nil
	}

	clauses := make([]string, 0, len(conds))
	args := make([]any, 0, len(conds))

	for _, c := range conds {
		if !lo.Contains(allowed, c.Field) {
			return "", nil, fmt.Errorf("unknown filter field %q (allowed: %s): %w",
				c.Field, strings.Join(allowed, ", "), entity.ErrValidation)
		}

		args = append(args, c.Value)
		clauses = append(clauses, fmt.Sprintf("%s = $%d", c.Field, len(args)))
	}

	return "\nWHERE " + strings.Join(clauses, " AND "), args, nil
}

// escapeLike neutralizes LIKE wildcards in a user-supplied search term.
func escapeLike(query string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(query)
}
