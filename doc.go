// Package uuident assigns UUID identifiers to records at creation time.
//
// It provides a single composable component, the Assigner, that a
// persistence path calls explicitly right before a new record is first
// written to storage. The assigner generates a UUID with a configurable
// version (1, 3, 4 or 5; the default is 4), honors a caller-supplied
// value when one is present, and writes the result into the record's
// attribute mapping in the representation the record type declares:
// the raw 16-byte encoding for binary-cast fields, the canonical
// lowercase string otherwise.
//
// # Configuring an assigner
//
// Record types declare their policy through two optional capability
// interfaces:
//
//	type Ticket struct{}
//
//	func (Ticket) UUIDVersion() string            { return "uuid5" }
//	func (Ticket) HasBinaryCast(field string) bool { return field == "uuid" }
//
//	a := uuident.ForModel(Ticket{})
//
// or directly through options:
//
//	a := uuident.New(
//	    uuident.WithVersion(uuident.V4),
//	    uuident.WithBinary(true),
//	)
//
// # Creation hook
//
// BeforeInsert mutates the record in place and reports malformed
// caller-supplied values with a ParseError:
//
//	rec := uuident.Attributes{"subject": "hello"}
//	if err := a.BeforeInsert(rec); err != nil {
//	    return err
//	}
//	// rec["uuid"] now holds the encoded identifier.
//
// # Querying
//
// WhereUUID extends a selector with an equality predicate on the
// managed field, encoding the value to match the storage form:
//
//	sel := sql.Dialect(dialect.MySQL).Select().From("tickets")
//	a.WhereUUID(sel, "2c5ea4c0-4067-11e9-8bad-9b1deb4d3b7d")
//
// # Store
//
// Store ties the pieces together over a dialect.Driver: Create runs the
// registered creation callbacks and inserts the attribute map, ByUUID
// looks a record up through the scope and decodes binary-stored
// identifiers back to their canonical string form.
package uuident
