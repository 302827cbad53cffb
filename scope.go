package uuident

import (
	"strings"

	"github.com/google/uuid"

	"github.com/syssam/uuident/dialect/sql"
)

// WhereUUID adds an equality predicate on the managed field to the
// selector and returns the selector for chaining.
//
// When the field is binary-cast, the value is lower-cased, parsed, and
// compared against its raw 16-byte encoding; a value that does not
// parse is recorded on the selector and surfaces from Err at execution
// time. In string mode the value is compared exactly as given, with no
// case normalization, while stored values are always generated
// lowercase. Callers filtering string-stored columns therefore match
// case-sensitively.
func (a *Assigner) WhereUUID(s *sql.Selector, value string) *sql.Selector {
	if !a.binary {
		s.Where(sql.EQ(s.C(a.field), value))
		return s
	}
	id, err := uuid.Parse(strings.ToLower(value))
	if err != nil {
		s.AddError(&ParseError{Field: a.field, Value: value, Err: err})
		return s
	}
	b := make([]byte, len(id))
	copy(b, id[:])
	s.Where(sql.EQ(s.C(a.field), b))
	return s
}
