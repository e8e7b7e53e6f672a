// Package typeid implements TypeIDs: type-prefixed, lexicographically
// sortable, globally unique identifiers built on UUIDv7.
//
// A TypeID is an optional lowercase prefix naming the identifier's domain,
// joined by an underscore to a 26-character base32 suffix encoding a
// 128-bit value:
//
//	user_01h5fskfsk4fpeqwnsyz5hj55t
//	└──┘ └────────────────────────┘
//	prefix        suffix
//
// The suffix uses a Crockford-style alphabet (0123456789abcdefghjkmnpqrstvwxyz,
// excluding i, l, o and u) so identifiers stay unambiguous when read aloud
// or transcribed, and sort lexicographically in creation order because the
// encoded value leads with a 48-bit millisecond timestamp.
//
// Key Features:
//   - UUIDv7-shaped values (RFC 9562 Section 5.7 bit layout)
//   - Lossless 16-byte <-> 26-character base32 codec, allocation-free
//   - Strict validation with a typed error for every failure mode
//   - Injectable clock and random source for deterministic tests
//   - Thread-safe concurrent generation with no shared state
//   - UUID string and byte interoperability via github.com/google/uuid
//
// Two TypeIDs generated within the same millisecond carry no ordering
// guarantee beyond their random bits; there is no sequence counter. Callers
// that need a total order within a millisecond must layer their own
// sequencing on top.
//
// Copyright (c) 2025 Dombox. All rights reserved.
// Licensed under the MIT License.
package typeid

import (
	"encoding/json"
	"strings"
	"time"
)

// TypeID is an immutable prefixed identifier. The zero value is Nil: an
// empty prefix with an all-zero value, rendering as 26 '0' characters.
type TypeID struct {
	prefix string
	value  [16]byte
}

// Nil is the zero TypeID.
var Nil TypeID

// New generates a TypeID with the given prefix and a fresh UUIDv7-shaped
// value from the default generator. An empty prefix is allowed and yields
// a bare 26-character identifier.
func New(prefix string) (TypeID, error) {
	return getDefaultGenerator().New(prefix)
}

// MustNew is like New but panics on error.
func MustNew(prefix string) TypeID {
	tid, err := New(prefix)
	if err != nil {
		panic("typeid: " + err.Error())
	}
	return tid
}

// FromValue builds a TypeID from an externally supplied 16-byte value.
// The value is taken as-is: no version or variant bits are required, so
// any 128-bit quantity can be wrapped. Use IsValidV7 to check for the
// stricter self-generated shape.
func FromValue(prefix string, value [16]byte) (TypeID, error) {
	if err := validatePrefix(prefix); err != nil {
		return Nil, err
	}
	return TypeID{prefix: prefix, value: value}, nil
}

// FromBytes builds a TypeID from a 16-byte slice.
func FromBytes(prefix string, b []byte) (TypeID, error) {
	if len(b) != 16 {
		return Nil, parseError(ErrInvalidValueLength, string(b))
	}
	var value [16]byte
	copy(value[:], b)
	return FromValue(prefix, value)
}

// Parse validates s and returns the TypeID it denotes. Checks run in a
// fixed order and the first failure wins: overall length, case, leading
// underscore, prefix grammar, suffix length, suffix alphabet, suffix
// overflow. Every returned error is a *ParseError wrapping one of the
// package sentinel errors.
func Parse(s string) (TypeID, error) {
	if len(s) < suffixLen || len(s) > MaxPrefixLen+1+suffixLen {
		return Nil, parseError(ErrInvalidLength, s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			return Nil, parseErrorAt(ErrInvalidCase, s, i)
		}
	}
	if s[0] == '_' {
		return Nil, parseError(ErrLeadingUnderscore, s)
	}

	prefix, suffix := splitTypeID(s)
	if err := validatePrefix(prefix); err != nil {
		return Nil, err
	}
	value, err := decodeSuffix(suffix)
	if err != nil {
		return Nil, err
	}

	return TypeID{prefix: prefix, value: value}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) TypeID {
	tid, err := Parse(s)
	if err != nil {
		panic("typeid: " + err.Error())
	}
	return tid
}

// splitTypeID partitions on the last underscore. Prefixes may themselves
// contain underscores while the suffix alphabet never does, so the suffix
// is always the run after the final underscore; with no underscore the
// whole string is the suffix.
func splitTypeID(s string) (prefix, suffix string) {
	if i := strings.LastIndexByte(s, '_'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return "", s
}

// Prefix returns the type prefix, empty for prefix-less identifiers.
func (t TypeID) Prefix() string {
	return t.prefix
}

// Suffix returns the 26-character base32 encoding of the value.
func (t TypeID) Suffix() string {
	return encodeSuffix(t.value)
}

// Value returns the underlying 16-byte value.
func (t TypeID) Value() [16]byte {
	return t.value
}

// Bytes returns a copy of the underlying value as a slice.
func (t TypeID) Bytes() []byte {
	b := make([]byte, 16)
	copy(b, t.value[:])
	return b
}

// String returns the canonical text form: the suffix alone when the prefix
// is empty, otherwise prefix + "_" + suffix.
func (t TypeID) String() string {
	suffix := t.Suffix()
	if t.prefix == "" {
		return suffix
	}
	return t.prefix + "_" + suffix
}

// IsNil reports whether t is the zero TypeID.
func (t TypeID) IsNil() bool {
	return t == Nil
}

// IsValidV7 reports whether the value carries the UUIDv7 shape the
// generator produces: version nibble 0111 and variant bits 10. Parsing
// never requires this; externally supplied values may fail it and still be
// valid TypeIDs.
func (t TypeID) IsValidV7() bool {
	return t.value[6]>>4 == 7 && t.value[8]&0xC0 == 0x80
}

// Timestamp extracts the 48-bit millisecond timestamp from the value.
// Meaningful only for UUIDv7-shaped values; see IsValidV7.
func (t TypeID) Timestamp() time.Time {
	ms := uint64(t.value[0])<<40 |
		uint64(t.value[1])<<32 |
		uint64(t.value[2])<<24 |
		uint64(t.value[3])<<16 |
		uint64(t.value[4])<<8 |
		uint64(t.value[5])
	return time.UnixMilli(int64(ms)) // #nosec G115
}

// Compare orders two TypeIDs by their canonical string form: prefix first,
// then byte order of the value, which for generated values is creation
// order at millisecond resolution. Returns -1, 0 or 1.
func (t TypeID) Compare(other TypeID) int {
	return strings.Compare(t.String(), other.String())
}

// Equal reports whether two TypeIDs have the same prefix and value.
func (t TypeID) Equal(other TypeID) bool {
	return t == other
}

// MarshalText implements encoding.TextMarshaler.
func (t TypeID) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TypeID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t TypeID) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *TypeID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
