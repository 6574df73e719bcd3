package bleadv

// AdvPacket is a utility to craft advertising packets: sequences of
// length/type/value AD structures with no outer framing.
// Refer to Supplement to Bluetooth Core Specification | CSSv6, Part A.
type AdvPacket struct {
	b []byte
}

// Bytes returns the bytes of the packet.
func (a *AdvPacket) Bytes() []byte { return a.b }

// Len returns the length of the packet.
func (a *AdvPacket) Len() int { return len(a.b) }

// AppendField appends a BLE advertising packet field.
// A field consists of length, type and value; the length byte counts the
// type byte but not itself.
func (a *AdvPacket) AppendField(typ byte, b []byte) *AdvPacket {
	a.b = append(a.b, byte(len(b)+1))
	a.b = append(a.b, typ)
	a.b = append(a.b, b...)
	return a
}

// AppendFlags appends a flags field to the packet.
func (a *AdvPacket) AppendFlags(f byte) *AdvPacket {
	return a.AppendField(typeFlags, []byte{f})
}

// AppendName appends a local name field to the packet,
// shortened if necessary.
func (a *AdvPacket) AppendName(name string) *AdvPacket {
	return a.appendNameBytes([]byte(name))
}

// appendNameBytes appends the name as a complete local name if it fits in
// maxDeviceNameLength bytes, and otherwise truncates it to the first
// maxDeviceNameLength bytes (with no regard for rune boundaries, which is
// what receivers expect) and appends it as a shortened local name.
func (a *AdvPacket) appendNameBytes(b []byte) *AdvPacket {
	typ := byte(typeCompleteName)
	if len(b) > maxDeviceNameLength {
		b = b[:maxDeviceNameLength]
		typ = typeShortName
	}
	return a.AppendField(typ, b)
}

// AppendManufacturerData appends a manufacturer data field to the packet.
// The value is the 2-byte little-endian company identifier followed by the
// payload, which may be empty.
func (a *AdvPacket) AppendManufacturerData(id uint16, b []byte) *AdvPacket {
	d := append([]byte{uint8(id), uint8(id >> 8)}, b...)
	return a.AppendField(typeManufacturerData, d)
}

// AppendTxPower appends a tx power level field to the packet.
func (a *AdvPacket) AppendTxPower(pwr int8) *AdvPacket {
	return a.AppendField(typeTxPower, []byte{byte(pwr)})
}

// AppendServiceData appends a service data field to the packet. The value
// is the UUID in wire order followed by the payload, which may be empty.
// The field type depends on the UUID width.
func (a *AdvPacket) AppendServiceData(u UUID, b []byte) *AdvPacket {
	var typ byte
	switch u.Len() {
	case 2:
		typ = typeServiceData16
	case 4:
		typ = typeServiceData32
	default:
		typ = typeServiceData128
	}
	return a.AppendField(typ, append(u.reverseBytes(), b...))
}

// AppendUUIDFit appends service UUID fields for as many of the given
// UUIDs as fit in MaxEIRPacketLength, one field per UUID, and reports
// whether all of them fit. The incomplete-list field types are used since
// the set of advertised services may be larger than what fits.
func (a *AdvPacket) AppendUUIDFit(uu []UUID) bool {
	fit := true
	for _, u := range uu {
		if len(a.b)+2+u.Len() > MaxEIRPacketLength {
			fit = false
			continue
		}
		switch u.Len() {
		case 2:
			a.AppendField(typeSomeUUID16, u.reverseBytes())
		case 4:
			a.AppendField(typeSomeUUID32, u.reverseBytes())
		case 16:
			a.AppendField(typeSomeUUID128, u.reverseBytes())
		}
	}
	return fit
}
