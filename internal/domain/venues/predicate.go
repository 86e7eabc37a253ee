package venues

import (
	"fmt"
	"strings"
)

// Predicate selects venues for public listing. Every non-empty field adds a
// clause and clauses are ANDed.
type Predicate struct {
	Kind   Kind
	Status Status
	// Term is matched case-insensitively as a substring of name, address or city.
	Term string
	// City is matched case-insensitively as a substring of city.
	City string
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input literal inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Where renders the predicate as a SQL boolean expression over the "v" alias.
// Placeholders are numbered from $1.
func (p Predicate) Where() (string, []any) {
	var (
		where      []string
		args       []any
		argCounter = 1
	)

	if p.Kind != "" {
		where = append(where, fmt.Sprintf("v.kind = $%d", argCounter))
		args = append(args, string(p.Kind))
		argCounter++
	}

	if p.Status != "" {
		where = append(where, fmt.Sprintf("v.status = $%d", argCounter))
		args = append(args, string(p.Status))
		argCounter++
	}

	if p.Term != "" {
		where = append(where, fmt.Sprintf(
			"(v.name ILIKE '%%' || $%[1]d || '%%' OR v.address ILIKE '%%' || $%[1]d || '%%' OR v.city ILIKE '%%' || $%[1]d || '%%')",
			argCounter,
		))
		args = append(args, escapeLike(p.Term))
		argCounter++
	}

	if p.City != "" {
		where = append(where, fmt.Sprintf("v.city ILIKE '%%' || $%d || '%%'", argCounter))
		args = append(args, escapeLike(p.City))
	}

	if len(where) == 0 {
		return "TRUE", nil
	}
	return strings.Join(where, " AND "), args
}
