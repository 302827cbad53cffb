package uuident

import (
	"context"
	"sort"

	"github.com/syssam/uuident/dialect"
	"github.com/syssam/uuident/dialect/sql"
)

// Store is an explicit persistence path for attribute-mapped records.
// It wires the assigner's creation hook into inserts and its query
// scope into lookups, against any dialect.Driver.
//
// The store is deliberately small; it exists so the creation lifecycle
// is an explicit, registered callback chain rather than an implicit
// event system.
type Store struct {
	drv      dialect.Driver
	table    string
	assigner *Assigner
	hooks    []func(Record) error
}

// NewStore returns a store for the given table. The assigner's
// BeforeInsert hook is registered as the first creation callback.
func NewStore(drv dialect.Driver, table string, a *Assigner) *Store {
	s := &Store{drv: drv, table: table, assigner: a}
	s.hooks = append(s.hooks, a.BeforeInsert)
	return s
}

// Assigner returns the assigner the store was built with.
func (s *Store) Assigner() *Assigner {
	return s.assigner
}

// OnCreate registers an additional creation callback. Callbacks run in
// registration order, immediately before a record is first written;
// the first error aborts the creation.
func (s *Store) OnCreate(h func(Record) error) {
	s.hooks = append(s.hooks, h)
}

// Create runs the creation callbacks on the record and inserts it.
// The record is mutated in place, so the assigned UUID can be read
// back from it after a successful insert.
func (s *Store) Create(ctx context.Context, rec Attributes) error {
	for _, h := range s.hooks {
		if err := h(rec); err != nil {
			return err
		}
	}
	columns := make([]string, 0, len(rec))
	for c := range rec {
		columns = append(columns, c)
	}
	// Deterministic column order keeps statements cacheable and tests stable.
	sort.Strings(columns)
	values := make([]any, len(columns))
	for i, c := range columns {
		values[i] = rec[c]
	}
	ins := sql.Dialect(s.drv.Dialect()).
		Insert(s.table).
		Columns(columns...).
		Values(values...)
	query, args := ins.Query()
	if err := ins.Err(); err != nil {
		return err
	}
	return s.drv.Exec(ctx, query, args, nil)
}

// ByUUID returns the record matching the given UUID. The managed field
// is decoded back to its canonical string form when it is binary-cast.
// A missing record yields a NotFoundError.
func (s *Store) ByUUID(ctx context.Context, value string) (Attributes, error) {
	sel := sql.Dialect(s.drv.Dialect()).
		Select().
		From(s.table).
		Limit(1)
	s.assigner.WhereUUID(sel, value)
	query, args := sel.Query()
	if err := sel.Err(); err != nil {
		return nil, err
	}
	var rows sql.Rows
	if err := s.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, NewNotFoundError(s.table, value)
	}
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	dest := make([]any, len(columns))
	for i := range dest {
		dest[i] = new(any)
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}
	rec := make(Attributes, len(columns))
	for i, c := range columns {
		v := *dest[i].(*any)
		if c == s.assigner.Field() && s.assigner.Binary() {
			if v, err = s.assigner.Attribute(c, v); err != nil {
				return nil, err
			}
		}
		rec[c] = v
	}
	return rec, nil
}

// ExistsUUID reports whether a record with the given UUID exists.
func (s *Store) ExistsUUID(ctx context.Context, value string) (bool, error) {
	sel := sql.Dialect(s.drv.Dialect()).
		Select(s.assigner.Field()).
		From(s.table).
		Limit(1)
	s.assigner.WhereUUID(sel, value)
	query, args := sel.Query()
	if err := sel.Err(); err != nil {
		return false, err
	}
	var rows sql.Rows
	if err := s.drv.Query(ctx, query, args, &rows); err != nil {
		return false, err
	}
	defer rows.Close()
	return rows.Next(), rows.Err()
}
