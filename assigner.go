package uuident

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultField is the attribute key the assigner manages unless
// configured otherwise.
const DefaultField = "uuid"

// Record is the minimal surface the assigner needs from a record:
// a mutable attribute mapping.
type Record interface {
	// Field returns the value stored under the given attribute key.
	// The second return value reports whether the key is present.
	Field(name string) (any, bool)

	// SetField stores a value under the given attribute key.
	SetField(name string, value any)
}

// VersionResolver is implemented by record types that declare a UUID
// version policy, e.g.
//
//	func (Ticket) UUIDVersion() string { return "uuid5" }
//
// Unrecognized tags fall back to DefaultVersion.
type VersionResolver interface {
	UUIDVersion() string
}

// BinaryCaster is implemented by record types that persist some fields
// as raw bytes instead of text.
type BinaryCaster interface {
	HasBinaryCast(field string) bool
}

// Attributes is a map-backed Record implementation.
type Attributes map[string]any

// Field returns the value stored under the given attribute key.
func (a Attributes) Field(name string) (any, bool) {
	v, ok := a[name]
	return v, ok
}

// SetField stores a value under the given attribute key.
func (a Attributes) SetField(name string, value any) {
	a[name] = value
}

var _ Record = Attributes(nil)

// Assigner generates and assigns a UUID attribute on records that are
// about to be inserted, encodes it according to the record type's
// storage cast, and decodes it back on attribute reads.
//
// An Assigner is configured once per record type and is safe for
// concurrent use; it holds no per-record state.
type Assigner struct {
	field     string
	version   Version
	binary    bool
	binarySet bool
	namespace uuid.UUID
	name      func() string
}

// Option configures an Assigner.
type Option func(*Assigner)

// WithField sets the attribute key the assigner manages.
// The default is "uuid".
func WithField(name string) Option {
	return func(a *Assigner) { a.field = name }
}

// WithVersion sets the UUID version used for generated values.
// Invalid versions are replaced with DefaultVersion.
func WithVersion(v Version) Option {
	return func(a *Assigner) {
		if !v.Valid() {
			v = DefaultVersion
		}
		a.version = v
	}
}

// WithBinary sets whether the field is persisted as its raw 16-byte
// encoding instead of the canonical string form.
func WithBinary(binary bool) Option {
	return func(a *Assigner) {
		a.binary = binary
		a.binarySet = true
	}
}

// WithNamespace sets the namespace used by the name-based versions
// (V3 and V5). The default is uuid.NameSpaceOID.
func WithNamespace(ns uuid.UUID) Option {
	return func(a *Assigner) { a.namespace = ns }
}

// WithNameFunc sets the name source used by the name-based versions
// (V3 and V5). The default draws a fresh random value per record, so
// generated V3/V5 UUIDs stay unique; supply a deterministic source to
// get reproducible name-based identifiers.
func WithNameFunc(f func() string) Option {
	return func(a *Assigner) { a.name = f }
}

// New returns an Assigner with the given options applied.
// Defaults: field "uuid", version 4, canonical string encoding.
func New(opts ...Option) *Assigner {
	a := &Assigner{
		field:     DefaultField,
		version:   DefaultVersion,
		namespace: uuid.NameSpaceOID,
		name:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ForModel returns an Assigner configured from the record type's own
// declarations: its UUIDVersion policy if it implements VersionResolver,
// and its storage cast for the managed field if it implements
// BinaryCaster. Options are applied afterwards and take precedence.
func ForModel(m any, opts ...Option) *Assigner {
	a := New()
	if vr, ok := m.(VersionResolver); ok {
		a.version = ResolveVersion(vr.UUIDVersion())
	}
	for _, opt := range opts {
		opt(a)
	}
	if bc, ok := m.(BinaryCaster); ok && !a.binarySet {
		a.binary = bc.HasBinaryCast(a.field)
	}
	return a
}

// Field returns the attribute key the assigner manages.
func (a *Assigner) Field() string { return a.field }

// Version returns the UUID version used for generated values.
func (a *Assigner) Version() Version { return a.version }

// Binary reports whether the field is persisted as raw bytes.
func (a *Assigner) Binary() bool { return a.binary }

// BeforeInsert assigns the record's UUID attribute. It is intended to
// run once, immediately before the record is first written to storage.
//
// A fresh UUID is generated with the configured version. If the record
// already carries a non-nil value under the managed field, that value
// must be a UUID string; it is lower-cased, parsed, and used instead of
// the generated one. A value that does not parse aborts the insert with
// a ParseError.
//
// The resulting UUID is written back into the record: the raw 16-byte
// encoding when the field is binary-cast, the canonical string form
// otherwise. The record is mutated in place.
func (a *Assigner) BeforeInsert(r Record) error {
	id, err := a.version.Generate(a.namespace, a.name())
	if err != nil {
		return err
	}
	if v, ok := r.Field(a.field); ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return &ParseError{Field: a.field, Value: v}
		}
		id, err = uuid.Parse(strings.ToLower(s))
		if err != nil {
			return &ParseError{Field: a.field, Value: s, Err: err}
		}
	}
	if a.binary {
		b := make([]byte, len(id))
		copy(b, id[:])
		r.SetField(a.field, b)
	} else {
		r.SetField(a.field, id.String())
	}
	return nil
}

// Attribute decodes a stored attribute value on read. For the managed
// field with a non-nil value, the stored raw bytes are decoded into the
// canonical lowercase string form. Every other key, and nil values,
// pass through unchanged.
//
// Note that the decode path assumes the stored representation is the
// 16-byte encoding and does not consult the binary cast the way
// BeforeInsert and WhereUUID do. Reading a string-stored value through
// it returns a DecodeError.
func (a *Assigner) Attribute(key string, value any) (any, error) {
	if key != a.field || value == nil {
		return value, nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return nil, &DecodeError{Field: key, Err: &ParseError{Field: key, Value: value}}
	}
	id, err := uuid.FromBytes(b)
	if err != nil {
		return nil, &DecodeError{Field: key, Err: err}
	}
	return id.String(), nil
}
