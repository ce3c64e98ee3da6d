package venue

import (
	"fmt"
	"strings"
)

// Filter holds the optional catalog constraints. Nil fields are ignored.
type Filter struct {
	City        *string
	MinCapacity *int
	MaxPrice    *float64
}

// clause is one predicate with a single positional argument.
// expr contains %d where the placeholder index goes.
type clause struct {
	expr string
	arg  interface{}
}

func (f Filter) clauses() []clause {
	var cs []clause
	if f.City != nil {
		cs = append(cs, clause{expr: "city = $%d", arg: *f.City})
	}
	if f.MinCapacity != nil {
		cs = append(cs, clause{expr: "capacity >= $%d", arg: *f.MinCapacity})
	}
	if f.MaxPrice != nil {
		cs = append(cs, clause{expr: "price_per_night <= $%d", arg: *f.MaxPrice})
	}
	return cs
}

// whereClause folds clauses into a WHERE expression joined by AND.
// Returns "" and no args for an empty filter.
func whereClause(cs []clause) (string, []interface{}) {
	if len(cs) == 0 {
		return "", nil
	}

	conditions := make([]string, 0, len(cs))
	args := make([]interface{}, 0, len(cs))
	for i, c := range cs {
		conditions = append(conditions, fmt.Sprintf(c.expr, i+1))
		args = append(args, c.arg)
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// cacheKey is a stable representation of the filter for cache keys.
func (f Filter) cacheKey() string {
	var b strings.Builder
	b.WriteString("city=")
	if f.City != nil {
		b.WriteString(*f.City)
	}
	b.WriteString("&minCapacity=")
	if f.MinCapacity != nil {
		fmt.Fprintf(&b, "%d", *f.MinCapacity)
	}
	b.WriteString("&maxPrice=")
	if f.MaxPrice != nil {
		fmt.Fprintf(&b, "%g", *f.MaxPrice)
	}
	return b.String()
}
