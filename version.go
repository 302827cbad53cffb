package uuident

import (
	"strings"

	"github.com/google/uuid"
)

// Version selects the UUID generation algorithm used for new records.
//
// Only versions 1, 3, 4 and 5 are supported. The zero value is not a valid
// version; use V4 (random) as the default, which is what ResolveVersion
// falls back to for unset or unrecognized policies.
type Version int

// Supported UUID versions.
const (
	V1 Version = 1 // time-based
	V3 Version = 3 // name-based, MD5
	V4 Version = 4 // random
	V5 Version = 5 // name-based, SHA-1
)

// DefaultVersion is used when a record type declares no version policy,
// or declares one that is not supported.
const DefaultVersion = V4

// String returns the version tag, e.g. "uuid4".
func (v Version) String() string {
	switch v {
	case V1:
		return "uuid1"
	case V3:
		return "uuid3"
	case V4:
		return "uuid4"
	case V5:
		return "uuid5"
	default:
		return "uuid?"
	}
}

// Valid reports whether v is one of the supported versions.
func (v Version) Valid() bool {
	switch v {
	case V1, V3, V4, V5:
		return true
	default:
		return false
	}
}

// ParseVersion parses a version policy tag into a Version.
// It accepts the tags "uuid1", "uuid3", "uuid4" and "uuid5"
// (case-insensitive) as well as the bare digits "1", "3", "4" and "5".
// The second return value reports whether the tag was recognized.
func ParseVersion(tag string) (Version, bool) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "uuid1", "1":
		return V1, true
	case "uuid3", "3":
		return V3, true
	case "uuid4", "4":
		return V4, true
	case "uuid5", "5":
		return V5, true
	default:
		return 0, false
	}
}

// ResolveVersion is like ParseVersion, but falls back to DefaultVersion
// for unrecognized tags instead of failing. An unsupported policy is a
// configuration default, not an error.
func ResolveVersion(tag string) Version {
	if v, ok := ParseVersion(tag); ok {
		return v
	}
	return DefaultVersion
}

// Generate produces a new UUID using the version's algorithm.
// The namespace and name arguments are used only by the name-based
// versions (V3 and V5); the other versions ignore them.
//
// An invalid Version generates with the default algorithm.
func (v Version) Generate(ns uuid.UUID, name string) (uuid.UUID, error) {
	switch v {
	case V1:
		return uuid.NewUUID()
	case V3:
		return uuid.NewMD5(ns, []byte(name)), nil
	case V5:
		return uuid.NewSHA1(ns, []byte(name)), nil
	default:
		return uuid.NewRandom()
	}
}
