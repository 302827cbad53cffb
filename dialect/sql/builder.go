package sql

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/syssam/uuident/dialect"
)

// Querier wraps the Query method of all specialized builders.
type Querier interface {
	// Query returns the query representation of the element
	// and its arguments (if any).
	Query() (string, []any)
}

// Builder is the base query builder shared by the specialized builders.
// It holds the dialect, the query buffer, the collected arguments, and
// any errors accumulated while building.
type Builder struct {
	sb      strings.Builder
	dialect string
	args    []any
	errs    []error
}

// SetDialect sets the builder dialect. It is used for garnering
// dialect-specific output, like placeholders and identifier quoting.
func (b *Builder) SetDialect(dialect string) {
	b.dialect = dialect
}

// Dialect returns the dialect of the builder.
func (b *Builder) Dialect() string {
	return b.dialect
}

// AddError appends an error to the builder. Builders do not fail
// mid-chain; accumulated errors surface from Err at execution time.
func (b *Builder) AddError(err error) *Builder {
	if err != nil {
		b.errs = append(b.errs, err)
	}
	return b
}

// Err returns a concatenated error of all errors encountered during
// the query-building, or nil if none.
func (b *Builder) Err() error {
	return errors.Join(b.errs...)
}

func (b *Builder) postgres() bool {
	return b.dialect == dialect.Postgres
}

// Quote quotes the given identifier according to the configured dialect.
func (b *Builder) Quote(ident string) string {
	quote := "`"
	// Postgres (and SQLite) use double quotes for identifiers;
	// the backtick form is kept for MySQL and the default dialect.
	if b.postgres() || b.dialect == dialect.SQLite {
		quote = `"`
	}
	return quote + ident + quote
}

// WriteString appends the string to the query buffer.
func (b *Builder) WriteString(s string) *Builder {
	b.sb.WriteString(s)
	return b
}

// WriteByte appends the byte to the query buffer.
func (b *Builder) WriteByte(c byte) *Builder {
	b.sb.WriteByte(c)
	return b
}

// Comma appends a comma separator to the query buffer.
func (b *Builder) Comma() *Builder {
	return b.WriteString(", ")
}

// Pad appends a space to the query buffer.
func (b *Builder) Pad() *Builder {
	return b.WriteByte(' ')
}

// Ident appends the given string as an identifier. Strings that are
// already quoted or qualified (or the wildcard) are written as-is.
func (b *Builder) Ident(s string) *Builder {
	switch {
	case s == "*" || strings.ContainsAny(s, "`\". ") || s == "":
		b.WriteString(s)
	default:
		b.WriteString(b.Quote(s))
	}
	return b
}

// IdentComma appends the given identifiers separated by commas.
func (b *Builder) IdentComma(idents ...string) *Builder {
	for i, s := range idents {
		if i > 0 {
			b.Comma()
		}
		b.Ident(s)
	}
	return b
}

// Arg appends the dialect placeholder for the given argument and
// collects the argument value.
func (b *Builder) Arg(v any) *Builder {
	b.args = append(b.args, v)
	if b.postgres() {
		b.WriteString("$" + strconv.Itoa(len(b.args)))
	} else {
		b.WriteByte('?')
	}
	return b
}

// Args appends placeholders for all given arguments, comma separated.
func (b *Builder) Args(vs ...any) *Builder {
	for i, v := range vs {
		if i > 0 {
			b.Comma()
		}
		b.Arg(v)
	}
	return b
}

// Wrap wraps the output of f with parentheses.
func (b *Builder) Wrap(f func(*Builder)) *Builder {
	b.WriteByte('(')
	f(b)
	b.WriteByte(')')
	return b
}

// String returns the accumulated query string.
func (b *Builder) String() string {
	return b.sb.String()
}

// DialectBuilder prefixes all root builders with the given dialect.
//
//	d := sql.Dialect(dialect.Postgres)
//	d.Select("uuid").From("users").Where(sql.EQ("uuid", v))
type DialectBuilder struct {
	dialect string
}

// Dialect creates a new DialectBuilder with the given dialect name.
func Dialect(name string) *DialectBuilder {
	return &DialectBuilder{name}
}

// Select creates a Selector for the configured dialect.
func (d *DialectBuilder) Select(columns ...string) *Selector {
	s := Select(columns...)
	s.SetDialect(d.dialect)
	return s
}

// Insert creates an InsertBuilder for the configured dialect.
func (d *DialectBuilder) Insert(table string) *InsertBuilder {
	i := Insert(table)
	i.SetDialect(d.dialect)
	return i
}

// Predicate is a where predicate. Predicates defer their rendering
// until Query time, so they share the placeholder numbering of the
// statement they are attached to.
type Predicate struct {
	fns []func(*Builder)
}

// P creates a new predicate.
func P(fns ...func(*Builder)) *Predicate {
	return &Predicate{fns: fns}
}

// Append appends a rendering step to the predicate.
func (p *Predicate) Append(f func(*Builder)) *Predicate {
	p.fns = append(p.fns, f)
	return p
}

func (p *Predicate) build(b *Builder) {
	for _, f := range p.fns {
		f(b)
	}
}

// Query returns the standalone query representation of the predicate.
func (p *Predicate) Query() (string, []any) {
	b := &Builder{}
	p.build(b)
	return b.String(), b.args
}

// EQ returns a "=" predicate on the given column.
func EQ(col string, value any) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col).WriteString(" = ").Arg(value)
	})
}

// NEQ returns a "<>" predicate on the given column.
func NEQ(col string, value any) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col).WriteString(" <> ").Arg(value)
	})
}

// In returns an "IN" predicate on the given column.
// An empty value list renders FALSE, matching nothing.
func In(col string, values ...any) *Predicate {
	return P(func(b *Builder) {
		if len(values) == 0 {
			b.WriteString("FALSE")
			return
		}
		b.Ident(col).WriteString(" IN ").Wrap(func(b *Builder) {
			b.Args(values...)
		})
	})
}

// IsNull returns an "IS NULL" predicate on the given column.
func IsNull(col string) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col).WriteString(" IS NULL")
	})
}

// NotNull returns an "IS NOT NULL" predicate on the given column.
func NotNull(col string) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col).WriteString(" IS NOT NULL")
	})
}

// And combines the given predicates with the AND operator.
func And(preds ...*Predicate) *Predicate {
	return P(func(b *Builder) {
		for i, p := range preds {
			if i > 0 {
				b.WriteString(" AND ")
			}
			p.build(b)
		}
	})
}

// Or combines the given predicates with the OR operator,
// wrapping each operand with parentheses.
func Or(preds ...*Predicate) *Predicate {
	return P(func(b *Builder) {
		for i, p := range preds {
			if i > 0 {
				b.WriteString(" OR ")
			}
			b.Wrap(p.build)
		}
	})
}

// Not negates the given predicate.
func Not(p *Predicate) *Predicate {
	return P(func(b *Builder) {
		b.WriteString("NOT ")
		b.Wrap(p.build)
	})
}

// Selector is a builder for the SELECT statement.
type Selector struct {
	Builder
	columns []string
	from    string
	where   *Predicate
	order   []string
	limit   *int
}

// Select returns a new selector for the given columns.
// An empty column list selects all columns.
func Select(columns ...string) *Selector {
	return &Selector{columns: columns}
}

// From sets the source table of the selector.
func (s *Selector) From(table string) *Selector {
	s.from = table
	return s
}

// Table returns the source table of the selector.
func (s *Selector) Table() string {
	return s.from
}

// C returns the column name qualified and quoted with the
// selector's table.
func (s *Selector) C(column string) string {
	if s.from == "" {
		return s.Quote(column)
	}
	return s.Quote(s.from) + "." + s.Quote(column)
}

// Where sets or appends the given predicate to the selector.
// Consecutive calls are combined with the AND operator.
func (s *Selector) Where(p *Predicate) *Selector {
	switch {
	case p == nil:
	case s.where == nil:
		s.where = p
	default:
		s.where = And(s.where, p)
	}
	return s
}

// P returns the predicate of the selector.
func (s *Selector) P() *Predicate {
	return s.where
}

// OrderBy appends the given columns to the ORDER BY clause.
func (s *Selector) OrderBy(columns ...string) *Selector {
	s.order = append(s.order, columns...)
	return s
}

// Limit sets the LIMIT clause of the selector.
func (s *Selector) Limit(limit int) *Selector {
	s.limit = &limit
	return s
}

// Query returns the query representation of the SELECT statement
// and its collected arguments.
func (s *Selector) Query() (string, []any) {
	s.WriteString("SELECT ")
	if len(s.columns) == 0 {
		s.WriteByte('*')
	} else {
		s.IdentComma(s.columns...)
	}
	s.WriteString(" FROM ").Ident(s.from)
	if s.where != nil {
		s.WriteString(" WHERE ")
		s.where.build(&s.Builder)
	}
	if len(s.order) > 0 {
		s.WriteString(" ORDER BY ").IdentComma(s.order...)
	}
	if s.limit != nil {
		s.WriteString(" LIMIT ").WriteString(strconv.Itoa(*s.limit))
	}
	return s.String(), s.args
}

// InsertBuilder is a builder for the INSERT statement.
type InsertBuilder struct {
	Builder
	table   string
	columns []string
	values  [][]any
}

// Insert creates a builder for the INSERT statement.
func Insert(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

// Columns sets the columns of the INSERT statement.
func (i *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	i.columns = append(i.columns, columns...)
	return i
}

// Values appends one row of values to the INSERT statement.
func (i *InsertBuilder) Values(values ...any) *InsertBuilder {
	i.values = append(i.values, values)
	return i
}

// Query returns the query representation of the INSERT statement
// and its collected arguments.
func (i *InsertBuilder) Query() (string, []any) {
	i.WriteString("INSERT INTO ").Ident(i.table)
	if len(i.columns) > 0 {
		i.Pad().Wrap(func(b *Builder) {
			b.IdentComma(i.columns...)
		})
	}
	i.WriteString(" VALUES ")
	for r, row := range i.values {
		if r > 0 {
			i.Comma()
		}
		if len(row) != len(i.columns) {
			i.AddError(fmt.Errorf("dialect/sql: insert into %s: %d values for %d columns", i.table, len(row), len(i.columns)))
		}
		i.Wrap(func(b *Builder) {
			b.Args(row...)
		})
	}
	return i.String(), i.args
}
