package bleadv

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
)

// A UUID is a BLE UUID.
type UUID struct {
	// Hide the bytes, so that the caller cannot hand us a slice of an
	// unexpected length and cannot mutate the UUID afterwards.
	b []byte
}

// UUID16 converts a uint16 (such as 0x1800) to a UUID.
func UUID16(i uint16) UUID { return UUID{itob(uint32(i), 2)} }

// UUID32 converts a uint32 to a 32-bit UUID.
func UUID32(i uint32) UUID { return UUID{itob(i, 4)} }

// ParseUUID parses a standard-format UUID string, such
// as "1800" or "34DA3AD1-7110-41A1-B1EF-4430F509CDE7".
func ParseUUID(s string) (UUID, error) {
	b, err := hex.DecodeString(strings.ReplaceAll(s, "-", ""))
	if err != nil {
		return UUID{}, err
	}
	switch len(b) {
	case 2, 4, 16:
	default:
		return UUID{}, fmt.Errorf("invalid UUID length: %d bytes", len(b))
	}
	return UUID{b}, nil
}

// MustParseUUID parses a standard-format UUID string,
// like ParseUUID, but panics in case of error.
func MustParseUUID(s string) UUID {
	u, err := ParseUUID(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Len returns the length of the UUID in bytes: 2, 4 or 16.
func (u UUID) Len() int { return len(u.b) }

// String hex-encodes a UUID.
func (u UUID) String() string { return fmt.Sprintf("%x", u.b) }

// Equal returns a boolean reporting whether v represents the same UUID as u.
func (u UUID) Equal(v UUID) bool { return bytes.Equal(u.b, v.b) }

// reverseBytes returns the UUID in wire (little-endian) byte order.
func (u UUID) reverseBytes() []byte { return reverse(u.b) }

func itob(i uint32, w int) []byte {
	b := make([]byte, w)
	for j := 0; j < w; j++ {
		b[j] = byte(i >> uint(8*(w-j-1)))
	}
	return b
}

// reverse returns a reversed copy of u.
func reverse(u []byte) []byte {
	l := len(u)
	b := make([]byte, l)
	for i := 0; i < l; i++ {
		b[i] = u[l-i-1]
	}
	return b
}
