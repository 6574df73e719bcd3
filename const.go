package bleadv

// This file includes constants from the BLE spec.

// MaxEIRPacketLength is the maximum allowed AdvertisingPacket
// and ScanResponsePacket length.
const MaxEIRPacketLength = 31

// maxDeviceNameLength caps the payload of a local name AD structure.
// Longer names are truncated bytewise and advertised as a shortened
// local name instead.
const maxDeviceNameLength = 18

// Advertising data field types.
const (
	typeFlags            = 0x01 // Flags
	typeSomeUUID16       = 0x02 // Incomplete list of 16-bit service UUIDs
	typeAllUUID16        = 0x03 // Complete list of 16-bit service UUIDs
	typeSomeUUID32       = 0x04 // Incomplete list of 32-bit service UUIDs
	typeAllUUID32        = 0x05 // Complete list of 32-bit service UUIDs
	typeSomeUUID128      = 0x06 // Incomplete list of 128-bit service UUIDs
	typeAllUUID128       = 0x07 // Complete list of 128-bit service UUIDs
	typeShortName        = 0x08 // Shortened local name
	typeCompleteName     = 0x09 // Complete local name
	typeTxPower          = 0x0A // Tx power level
	typeServiceData16    = 0x16 // Service data - 16-bit UUID
	typeServiceData32    = 0x20 // Service data - 32-bit UUID
	typeServiceData128   = 0x21 // Service data - 128-bit UUID
	typeManufacturerData = 0xFF // Manufacturer specific data
)

// Advertising flags.
const (
	FlagLimitedDiscoverable = 0x01 // LE limited discoverable mode
	FlagGeneralDiscoverable = 0x02 // LE general discoverable mode
	FlagLEOnly              = 0x04 // BR/EDR not supported
	FlagBothController      = 0x08 // Simultaneous LE and BR/EDR (controller)
	FlagBothHost            = 0x10 // Simultaneous LE and BR/EDR (host)
)

// Stack-level tx power codes, as the controller counts them.
const (
	txPowerStackMin   = 0
	txPowerStackLow   = 1
	txPowerStackMid   = 2
	txPowerStackUpper = 3
	txPowerStackMax   = 4 // not reachable through AdvertiseSettings
)

// Stack-level advertising event properties. Connectable directed
// advertising is deliberately not representable here.
const (
	evtPropLegacyConnectable    = 0x13
	evtPropLegacyScannable      = 0x12
	evtPropLegacyNonConnectable = 0x10
)

// Advertising interval base, per advertise mode.
const (
	advIntervalLowPowerMillis   = 1000
	advIntervalBalancedMillis   = 250
	advIntervalLowLatencyMillis = 100
)
