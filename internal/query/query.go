// Package query models the table-store filter grammar as typed conditions
// instead of hand-concatenated strings: (field,op,value) clauses joined by
// the literal separator ~and on the wire.
package query

import (
	"fmt"
	"regexp"
	"strings"
)

// Op is a filter operator understood by the table store.
type Op string

const (
	// OpEq is exact, case-sensitive string equality.
	OpEq Op = "eq"
	// OpGe compares both sides as dates, greater-or-equal.
	OpGe Op = "ge"
	// OpLe compares both sides as dates, less-or-equal.
	OpLe Op = "le"
)

// ExactDatePrefix may prefix a condition value on the wire; consumers
// strip it before comparing.
const ExactDatePrefix = "exactDate,"

const separator = "~and"

// Condition is one (field,op,value) clause.
type Condition struct {
	Field string
	Op    Op
	Value string
}

// Eq builds an equality condition.
func Eq(field, value string) Condition {
	return Condition{Field: field, Op: OpEq, Value: value}
}

// Ge builds a date greater-or-equal condition.
func Ge(field, value string) Condition {
	return Condition{Field: field, Op: OpGe, Value: value}
}

// Le builds a date less-or-equal condition.
func Le(field, value string) Condition {
	return Condition{Field: field, Op: OpLe, Value: value}
}

// Known reports whether the operator is one the store evaluates.
// Unknown operators are carried through and skipped by consumers.
func (c Condition) Known() bool {
	switch c.Op {
	case OpEq, OpGe, OpLe:
		return true
	}
	return false
}

// CleanValue returns the value with any exactDate prefix stripped.
func (c Condition) CleanValue() string {
	return strings.TrimPrefix(c.Value, ExactDatePrefix)
}

func (c Condition) String() string {
	return fmt.Sprintf("(%s,%s,%s)", c.Field, c.Op, c.Value)
}

// Encode renders conditions in wire order joined by ~and. Empty input
// encodes to the empty string.
func Encode(conds []Condition) string {
	if len(conds) == 0 {
		return ""
	}
	parts := make([]string, 0, len(conds))
	for _, c := range conds {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, separator)
}

var clausePattern = regexp.MustCompile(`^\(([^,()]+),([^,()]+),([^()]*)\)$`)

// Parse reads a wire filter expression back into conditions. Malformed
// clauses are dropped rather than failing the whole expression, matching
// the tolerant behavior of the store; unknown operators are preserved
// verbatim so consumers can decide to skip them.
func Parse(where string) []Condition {
	if where == "" {
		return nil
	}

	var conds []Condition
	for _, raw := range strings.Split(where, separator) {
		m := clausePattern.FindStringSubmatch(strings.TrimSpace(raw))
		if m == nil {
			continue
		}
		conds = append(conds, Condition{
			Field: m[1],
			Op:    Op(m[2]),
			Value: m[3],
		})
	}
	return conds
}
