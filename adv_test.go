package bleadv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvPacketAppendField(t *testing.T) {
	a := &AdvPacket{}
	a.AppendField(0x09, []byte("Go"))
	assert.Equal(t, []byte{3, 0x09, 'G', 'o'}, a.Bytes())
	assert.Equal(t, 4, a.Len())

	// Zero-length values are legal and still carry the type byte.
	a.AppendField(0xFF, nil)
	assert.Equal(t, []byte{3, 0x09, 'G', 'o', 1, 0xFF}, a.Bytes())
}

func TestAdvPacketAppendFlags(t *testing.T) {
	a := &AdvPacket{}
	a.AppendFlags(FlagGeneralDiscoverable | FlagLEOnly)
	assert.Equal(t, []byte{2, 0x01, 0x06}, a.Bytes())
}

func TestAdvPacketAppendNameShortens(t *testing.T) {
	a := &AdvPacket{}
	a.AppendName(strings.Repeat("x", 30))
	b := a.Bytes()
	assert.Equal(t, byte(19), b[0])
	assert.Equal(t, byte(0x08), b[1])
	assert.Len(t, b, 20)
}

func TestAdvPacketAppendUUIDFit(t *testing.T) {
	a := &AdvPacket{}
	uu := []UUID{UUID16(0x180D), MustParseUUID("34DA3AD1-7110-41A1-B1EF-4430F509CDE7")}
	assert.True(t, a.AppendUUIDFit(uu))
	assert.Equal(t, 4+18, a.Len())

	// A second 128-bit UUID does not fit in the remaining 9 bytes.
	assert.False(t, a.AppendUUIDFit([]UUID{MustParseUUID("00112233-4455-6677-8899-AABBCCDDEEFF")}))
	assert.Equal(t, 4+18, a.Len())
}
