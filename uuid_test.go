package bleadv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID16(t *testing.T) {
	u := UUID16(0x1800)
	assert.Equal(t, 2, u.Len())
	assert.Equal(t, "1800", u.String())
	assert.Equal(t, []byte{0x00, 0x18}, u.reverseBytes())
}

func TestUUID32(t *testing.T) {
	u := UUID32(0xAABBCCDD)
	assert.Equal(t, 4, u.Len())
	assert.Equal(t, []byte{0xDD, 0xCC, 0xBB, 0xAA}, u.reverseBytes())
}

func TestParseUUID(t *testing.T) {
	u, err := ParseUUID("34DA3AD1-7110-41A1-B1EF-4430F509CDE7")
	require.NoError(t, err)
	assert.Equal(t, 16, u.Len())
	assert.Equal(t, "34da3ad1711041a1b1ef4430f509cde7", u.String())

	_, err = ParseUUID("nope")
	assert.Error(t, err)

	// Only 2, 4 and 16 byte UUIDs exist.
	_, err = ParseUUID("112233")
	assert.Error(t, err)
}

func TestUUIDEqual(t *testing.T) {
	assert.True(t, UUID16(0x180D).Equal(MustParseUUID("180D")))
	assert.False(t, UUID16(0x180D).Equal(UUID16(0x180F)))
	assert.False(t, UUID16(0x180D).Equal(UUID32(0x0000180D)))
}
