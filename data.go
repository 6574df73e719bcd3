package bleadv

// ManufacturerData is one manufacturer-specific payload, keyed by the
// company identifier assigned by the Bluetooth SIG.
type ManufacturerData struct {
	ID   uint16
	Data []byte
}

// ServiceData is a payload associated with a service UUID.
type ServiceData struct {
	UUID UUID
	Data []byte
}

// AdvertiseData describes what to put into an advertising packet.
// The encoder treats it as immutable for the duration of a call.
//
// ManufacturerData and ServiceData are slices rather than maps: their
// iteration order is visible on the wire, and a Go map would randomize it.
type AdvertiseData struct {
	// IncludeDeviceName requests a local name AD structure. The name
	// itself is supplied separately to AdvertiseDataBytes.
	IncludeDeviceName bool

	// ManufacturerData entries produce one AD structure each, in order.
	// Company identifiers are not deduplicated.
	ManufacturerData []ManufacturerData

	// IncludeTxPowerLevel requests a tx power level AD structure with a
	// zero placeholder value; the controller fills in the measured power.
	IncludeTxPowerLevel bool

	// ServiceUUIDs are advertised as complete UUID lists, one AD
	// structure per UUID width present among them.
	ServiceUUIDs []UUID

	// ServiceData entries produce one AD structure each, in order.
	ServiceData []ServiceData
}
