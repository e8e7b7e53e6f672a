package typeid

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// UUID interoperability. The 16-byte value of a TypeID is bit-compatible
// with a UUID, so identifiers convert losslessly in both directions.

// FromUUID builds a TypeID from a UUID in text form. Hyphenated canonical
// form and bare 32-character hex are both accepted, in either case.
func FromUUID(prefix, uuidStr string) (TypeID, error) {
	u, err := uuid.Parse(uuidStr)
	if err != nil {
		return Nil, fmt.Errorf("typeid: parse uuid: %w", err)
	}
	return FromValue(prefix, [16]byte(u))
}

// FromUUIDBytes builds a TypeID from a 16-byte UUID.
func FromUUIDBytes(prefix string, b []byte) (TypeID, error) {
	return FromBytes(prefix, b)
}

// MustFromUUID is like FromUUID but panics on error.
func MustFromUUID(prefix, uuidStr string) TypeID {
	tid, err := FromUUID(prefix, uuidStr)
	if err != nil {
		panic("typeid: " + err.Error())
	}
	return tid
}

// UUID returns the value as a uuid.UUID.
func (t TypeID) UUID() uuid.UUID {
	return uuid.UUID(t.value)
}

// UUIDString returns the value in canonical hyphenated UUID form.
func (t TypeID) UUIDString() string {
	return t.UUID().String()
}

// Hex returns the value as 32 lowercase hex characters without hyphens.
// FromUUID accepts this form back, so Hex and FromUUID are mutual inverses.
func (t TypeID) Hex() string {
	return hex.EncodeToString(t.value[:])
}
