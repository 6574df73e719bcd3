package bleadv

// TxPowerLevel is the transmit power tier requested for advertising.
type TxPowerLevel int

const (
	TxPowerUltraLow TxPowerLevel = iota
	TxPowerLow
	TxPowerMedium
	TxPowerHigh
)

// AdvertiseMode trades advertising latency against power consumption.
type AdvertiseMode int

const (
	AdvertiseModeLowPower AdvertiseMode = iota
	AdvertiseModeBalanced
	AdvertiseModeLowLatency
)

// AdvertiseSettings are the advertisement parameters, constructed and
// validated by the caller.
type AdvertiseSettings struct {
	TxPowerLevel TxPowerLevel
	Mode         AdvertiseMode
	Connectable  bool
}

// StackTxPowerLevel converts the settings tx power tier to the
// controller-stack tx power code.
func (s *AdvertiseSettings) StackTxPowerLevel() int {
	switch s.TxPowerLevel {
	case TxPowerUltraLow:
		return txPowerStackMin
	case TxPowerLow:
		return txPowerStackLow
	case TxPowerMedium:
		return txPowerStackMid
	case TxPowerHigh:
		return txPowerStackUpper
	default:
		// Shouldn't happen, just in case.
		return txPowerStackMid
	}
}

// EventProperties converts the settings to the stack advertising event
// properties. hasScanRsp reports whether a scan response payload is set
// alongside the advertisement.
func (s *AdvertiseSettings) EventProperties(hasScanRsp bool) uint8 {
	if s.Connectable {
		return evtPropLegacyConnectable
	}
	if hasScanRsp {
		return evtPropLegacyScannable
	}
	return evtPropLegacyNonConnectable
}

// IntervalUnits returns the advertising interval for the settings mode,
// in units of 0.625 ms as the controller counts intervals.
func (s *AdvertiseSettings) IntervalUnits() int64 {
	switch s.Mode {
	case AdvertiseModeLowPower:
		return millisToUnits(advIntervalLowPowerMillis)
	case AdvertiseModeBalanced:
		return millisToUnits(advIntervalBalancedMillis)
	case AdvertiseModeLowLatency:
		return millisToUnits(advIntervalLowLatencyMillis)
	default:
		// Shouldn't happen, just in case.
		return millisToUnits(advIntervalLowPowerMillis)
	}
}

// millisToUnits converts milliseconds to 0.625 ms protocol time units.
func millisToUnits(millis int64) int64 {
	return millis * 1000 / 625
}
