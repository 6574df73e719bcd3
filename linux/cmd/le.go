package cmd

import "github.com/xaionaro-go/bleadv/linux/util"

const ogfLEController = 0x08

// LESetAdvertisingParameters implements LE Set Advertising Parameters
// (0x08|0x0006) [Vol 2, Part E, 7.8.5].
type LESetAdvertisingParameters struct {
	AdvertisingIntervalMin  uint16  // [0x0800]: 0.625 ms * 0x0800 = 1280.0 ms
	AdvertisingIntervalMax  uint16  // [0x0800]: 0.625 ms * 0x0800 = 1280.0 ms
	AdvertisingType         uint8   // [0x00]: ADV_IND, 0x01: DIRECT(HIGH), 0x02: SCAN, 0x03: NONCONN, 0x04: DIRECT(LOW)
	OwnAddressType          uint8   // [0x00]: public, 0x01: random
	DirectAddressType       uint8   // [0x00]: public, 0x01: random
	DirectAddress           [6]byte // Public or Random Address of the device to be connected
	AdvertisingChannelMap   uint8   // [0x07] 0x01: ch37, 0x02: ch38, 0x04: ch39
	AdvertisingFilterPolicy uint8
}

func (c LESetAdvertisingParameters) Opcode() int { return ogfLEController<<10 | 0x0006 }
func (c LESetAdvertisingParameters) Len() int    { return 15 }
func (c LESetAdvertisingParameters) Marshal(b []byte) {
	util.BinaryOrder.PutUint16(b[0:], c.AdvertisingIntervalMin)
	util.BinaryOrder.PutUint16(b[2:], c.AdvertisingIntervalMax)
	util.BinaryOrder.PutUint8(b[4:], c.AdvertisingType)
	util.BinaryOrder.PutUint8(b[5:], c.OwnAddressType)
	util.BinaryOrder.PutUint8(b[6:], c.DirectAddressType)
	copy(b[7:], c.DirectAddress[:])
	util.BinaryOrder.PutUint8(b[13:], c.AdvertisingChannelMap)
	util.BinaryOrder.PutUint8(b[14:], c.AdvertisingFilterPolicy)
}

// LESetAdvertisingData implements LE Set Advertising Data
// (0x08|0x0008) [Vol 2, Part E, 7.8.7].
type LESetAdvertisingData struct {
	AdvertisingDataLength uint8
	AdvertisingData       [31]byte
}

func (c LESetAdvertisingData) Opcode() int { return ogfLEController<<10 | 0x0008 }
func (c LESetAdvertisingData) Len() int    { return 32 }
func (c LESetAdvertisingData) Marshal(b []byte) {
	util.BinaryOrder.PutUint8(b[0:], c.AdvertisingDataLength)
	copy(b[1:], c.AdvertisingData[:])
}

// LESetScanResponseData implements LE Set Scan Response Data
// (0x08|0x0009) [Vol 2, Part E, 7.8.8].
type LESetScanResponseData struct {
	ScanResponseDataLength uint8
	ScanResponseData       [31]byte
}

func (c LESetScanResponseData) Opcode() int { return ogfLEController<<10 | 0x0009 }
func (c LESetScanResponseData) Len() int    { return 32 }
func (c LESetScanResponseData) Marshal(b []byte) {
	util.BinaryOrder.PutUint8(b[0:], c.ScanResponseDataLength)
	copy(b[1:], c.ScanResponseData[:])
}

// LESetAdvertiseEnable implements LE Set Advertising Enable
// (0x08|0x000A) [Vol 2, Part E, 7.8.9].
type LESetAdvertiseEnable struct {
	AdvertisingEnable uint8 // 0x00: disabled, 0x01: enabled
}

func (c LESetAdvertiseEnable) Opcode() int { return ogfLEController<<10 | 0x000A }
func (c LESetAdvertiseEnable) Len() int    { return 1 }
func (c LESetAdvertiseEnable) Marshal(b []byte) {
	util.BinaryOrder.PutUint8(b, c.AdvertisingEnable)
}
