// Package sql provides SQL query building primitives and the standard
// dialect.Driver implementation over database/sql.
//
// Query generation adapts to different database dialects (PostgreSQL,
// MySQL, SQLite): identifier quoting and argument placeholders follow
// the configured dialect.
//
// # Builder Types
//
//   - Builder: low-level SQL string builder with identifier quoting
//   - Selector: SELECT query builder with predicates, ordering, and limits
//   - InsertBuilder: INSERT statement builder with multi-row support
//
// # Usage
//
//	b := sql.Dialect(dialect.Postgres)
//	query, args := b.Select("uuid", "subject").
//	    From("tickets").
//	    Where(sql.EQ("state", "open")).
//	    Query()
//
// # Predicates
//
//	sql.EQ("name", "john")      // name = 'john'
//	sql.NEQ("state", "closed")  // state <> 'closed'
//	sql.In("state", "a", "b")   // state IN ('a', 'b')
//	sql.IsNull("deleted_at")    // deleted_at IS NULL
//	sql.And(p1, p2)
//	sql.Or(p1, p2)
//
// Builders accumulate errors instead of failing mid-chain; check Err
// before executing the built statement.
package sql
