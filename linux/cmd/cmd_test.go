package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent [][]byte
	rsp  []byte
}

func (s *fakeSender) Send(_ context.Context, b []byte) ([]byte, error) {
	s.sent = append(s.sent, append([]byte(nil), b...))
	return s.rsp, nil
}

func TestMarshalAdvertisingParameters(t *testing.T) {
	b := Marshal(LESetAdvertisingParameters{
		AdvertisingIntervalMin: 0x0800,
		AdvertisingIntervalMax: 0x0800,
		AdvertisingChannelMap:  0x07,
	})
	require.Len(t, b, 4+15)
	assert.Equal(t, []byte{0x01, 0x06, 0x20, 15}, b[:4])
	assert.Equal(t, []byte{0x00, 0x08, 0x00, 0x08}, b[4:8])
	assert.Equal(t, byte(0x07), b[17])
}

func TestMarshalAdvertisingData(t *testing.T) {
	c := LESetAdvertisingData{AdvertisingDataLength: 6}
	copy(c.AdvertisingData[:], []byte{0x02, 0x01, 0x06, 0x03, 0x01, 0xFE})
	b := Marshal(c)
	require.Len(t, b, 4+32)
	assert.Equal(t, []byte{0x01, 0x08, 0x20, 32}, b[:4])
	assert.Equal(t, byte(6), b[4])
	assert.Equal(t, []byte{0x02, 0x01, 0x06, 0x03, 0x01, 0xFE}, b[5:11])
}

func TestMarshalScanResponseData(t *testing.T) {
	c := LESetScanResponseData{ScanResponseDataLength: 8}
	b := Marshal(c)
	assert.Equal(t, []byte{0x01, 0x09, 0x20, 32}, b[:4])
}

func TestMarshalAdvertiseEnable(t *testing.T) {
	b := Marshal(LESetAdvertiseEnable{AdvertisingEnable: 1})
	assert.Equal(t, []byte{0x01, 0x0A, 0x20, 1, 1}, b)
}

func TestSendAndCheckResp(t *testing.T) {
	ctx := context.Background()

	dev := &fakeSender{rsp: []byte{0x00}}
	c := NewCmd(dev)
	require.NoError(t, c.SendAndCheckResp(ctx, LESetAdvertiseEnable{AdvertisingEnable: 1}, []byte{0x00}))
	require.Len(t, dev.sent, 1)

	dev.rsp = []byte{0x0C}
	assert.Error(t, c.SendAndCheckResp(ctx, LESetAdvertiseEnable{AdvertisingEnable: 1}, []byte{0x00}))

	// An empty expectation skips the status check.
	assert.NoError(t, c.SendAndCheckResp(ctx, LESetAdvertiseEnable{}, nil))
}
