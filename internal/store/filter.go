package store

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Op identifies a comparison operator in a filter condition.
type Op string

const (
	OpEq     Op = "eq"     // exact equality
	OpEqFold Op = "eqfold" // case-insensitive exact equality (full string, not substring)
	OpGte    Op = "gte"    // inclusive lower bound
	OpLte    Op = "lte"    // inclusive upper bound
)

// Cond is a single (field, operator, value) condition.
type Cond struct {
	Field string
	Op    Op
	Value any
}

// Filter is a conjunction of conditions, built by the query layer and
// compiled into the store's native syntax by BSON. Handlers and services
// never construct bson documents directly.
type Filter struct {
	Conds []Cond
}

// Where returns an empty filter.
func Where() Filter {
	return Filter{}
}

func (f Filter) add(field string, op Op, value any) Filter {
	f.Conds = append(f.Conds, Cond{Field: field, Op: op, Value: value})
	return f
}

// Eq adds an exact-match condition.
func (f Filter) Eq(field string, value any) Filter {
	return f.add(field, OpEq, value)
}

// EqFold adds a case-insensitive exact-match condition on a string field.
func (f Filter) EqFold(field, value string) Filter {
	return f.add(field, OpEqFold, value)
}

// Gte adds an inclusive lower-bound condition.
func (f Filter) Gte(field string, value any) Filter {
	return f.add(field, OpGte, value)
}

// Lte adds an inclusive upper-bound condition.
func (f Filter) Lte(field string, value any) Filter {
	return f.add(field, OpLte, value)
}

// BSON compiles the filter into a MongoDB filter document. Range conditions
// on the same field are merged into a single operator document.
func (f Filter) BSON() bson.M {
	out := bson.M{}
	for _, c := range f.Conds {
		switch c.Op {
		case OpEq:
			out[c.Field] = c.Value
		case OpEqFold:
			s, _ := c.Value.(string)
			out[c.Field] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(s) + "$", Options: "i"}
		case OpGte, OpLte:
			bounds, ok := out[c.Field].(bson.M)
			if !ok {
				bounds = bson.M{}
				out[c.Field] = bounds
			}
			bounds["$"+string(c.Op)] = c.Value
		}
	}
	return out
}
