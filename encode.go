package bleadv

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/facebookincubator/go-belt/tool/logger"
)

// ErrInvalidName is returned by the name encoding step when the device
// name is not valid UTF-8.
var ErrInvalidName = errors.New("device name is not valid UTF-8")

// AdvertiseDataBytes serializes data into a sequence of AD structures:
// local name, manufacturer data, tx power placeholder, service UUID lists
// (bucketed by UUID width) and service data, in that order. A nil data
// yields an empty packet.
//
// It never fails: a name that cannot be encoded is left out (and logged),
// the rest of the payload is still produced. Total length is not checked
// here; the controller enforces wire-size limits.
func AdvertiseDataBytes(ctx context.Context, data *AdvertiseData, name string) []byte {
	if data == nil {
		return nil
	}

	// Flags are added by lower layers of the stack, only if needed;
	// no need to add them here.

	ret := &AdvPacket{}

	if data.IncludeDeviceName {
		if b, err := nameToBytes(name); err != nil {
			logger.Errorf(ctx, "can't include name %q - encoding error: %v", name, err)
		} else {
			ret.appendNameBytes(b)
		}
	}

	for _, m := range data.ManufacturerData {
		ret.AppendManufacturerData(m.ID, m.Data)
	}

	if data.IncludeTxPowerLevel {
		// The controller fills in the measured power downstream.
		ret.AppendTxPower(0)
	}

	if data.ServiceUUIDs != nil {
		var uuids16, uuids32, uuids128 []byte
		for _, u := range data.ServiceUUIDs {
			switch u.Len() {
			case 2:
				uuids16 = append(uuids16, u.reverseBytes()...)
			case 4:
				uuids32 = append(uuids32, u.reverseBytes()...)
			default:
				uuids128 = append(uuids128, u.reverseBytes()...)
			}
		}
		if len(uuids16) != 0 {
			ret.AppendField(typeAllUUID16, uuids16)
		}
		if len(uuids32) != 0 {
			ret.AppendField(typeAllUUID32, uuids32)
		}
		if len(uuids128) != 0 {
			ret.AppendField(typeAllUUID128, uuids128)
		}
	}

	for _, s := range data.ServiceData {
		ret.AppendServiceData(s.UUID, s.Data)
	}

	return ret.Bytes()
}

// nameToBytes converts the device name to its wire encoding.
// On failure the caller omits the name field instead of aborting.
func nameToBytes(name string) ([]byte, error) {
	if !utf8.ValidString(name) {
		return nil, ErrInvalidName
	}
	return []byte(name), nil
}
