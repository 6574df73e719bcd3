package bleadv

import (
	"context"
	"errors"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/ctxflow"

	"github.com/xaionaro-go/bleadv/linux/cmd"
	"github.com/xaionaro-go/bleadv/linux/consts"
)

// ErrEIRPacketTooLong is the error returned when an advertising or scan
// response payload exceeds the legacy 31-byte limit.
var ErrEIRPacketTooLong = errors.New("max packet length is 31")

// An Advertiser drives one advertisement: it encodes the payload
// description, translates the settings into controller codes and pushes
// the advertising command sequence to the controller transport.
//
// Name, Data, Settings and ScanResponse must be set, if at all, before
// Start.
type Advertiser struct {
	// Name is the local device name, advertised when
	// Data.IncludeDeviceName is set.
	Name string

	// Data describes the advertising payload.
	Data *AdvertiseData

	// Settings select power, latency and connectability.
	Settings AdvertiseSettings

	// ScanResponse is an optional payload returned to active scanners.
	ScanResponse *AdvPacket

	cmd     *cmd.Cmd
	serving ctxflow.StartStopper[ctxflow.StartStopperBackendFuncs]
}

// NewAdvertiser returns an Advertiser pushing its commands through dev.
func NewAdvertiser(dev cmd.Sender) *Advertiser {
	a := &Advertiser{
		cmd: cmd.NewCmd(dev),
	}
	a.serving = ctxflow.StartStopper[ctxflow.StartStopperBackendFuncs]{
		StartStopper: ctxflow.StartStopperBackendFuncs{
			StartFunc: a.doStart,
			StopFunc:  a.doStop,
		},
	}
	return a
}

// Start configures the controller with the current payload and settings
// and enables advertising.
func (a *Advertiser) Start(ctx context.Context) error {
	return a.serving.Start(ctx)
}

// Stop disables advertising.
func (a *Advertiser) Stop() error {
	return a.serving.Stop()
}

func (a *Advertiser) doStart(ctx context.Context, _ ...any) error {
	payload := AdvertiseDataBytes(ctx, a.Data, a.Name)
	if len(payload) > MaxEIRPacketLength {
		return ErrEIRPacketTooLong
	}
	if a.ScanResponse != nil && a.ScanResponse.Len() > MaxEIRPacketLength {
		return ErrEIRPacketTooLong
	}

	interval := a.Settings.IntervalUnits()
	props := a.Settings.EventProperties(a.ScanResponse != nil)
	logger.Debugf(ctx, "advertising: event properties 0x%02X, interval %d units, tx power code %d",
		props, interval, a.Settings.StackTxPowerLevel())

	if err := a.cmd.SendAndCheckResp(ctx, cmd.LESetAdvertisingParameters{
		AdvertisingIntervalMin: uint16(interval),
		AdvertisingIntervalMax: uint16(interval),
		AdvertisingType:        legacyPDUType(props),
		AdvertisingChannelMap:  0x7, // ch37 | ch38 | ch39
	}, []byte{0x00}); err != nil {
		return err
	}

	if a.ScanResponse != nil {
		d := cmd.LESetScanResponseData{
			ScanResponseDataLength: uint8(a.ScanResponse.Len()),
		}
		copy(d.ScanResponseData[:], a.ScanResponse.Bytes())
		if err := a.cmd.SendAndCheckResp(ctx, d, []byte{0x00}); err != nil {
			return err
		}
	}

	d := cmd.LESetAdvertisingData{
		AdvertisingDataLength: uint8(len(payload)),
	}
	copy(d.AdvertisingData[:], payload)
	if err := a.cmd.SendAndCheckResp(ctx, d, []byte{0x00}); err != nil {
		return err
	}

	return a.cmd.SendAndCheckResp(ctx, cmd.LESetAdvertiseEnable{AdvertisingEnable: 1}, []byte{0x00})
}

func (a *Advertiser) doStop(ctx context.Context) error {
	return a.cmd.SendAndCheckResp(ctx, cmd.LESetAdvertiseEnable{AdvertisingEnable: 0}, []byte{0x00})
}

// legacyPDUType maps advertising event properties to the PDU type field
// of the legacy advertising parameters command.
func legacyPDUType(props uint8) uint8 {
	switch props {
	case evtPropLegacyConnectable:
		return consts.AdvInd
	case evtPropLegacyScannable:
		return consts.AdvScanInd
	default:
		return consts.AdvNonconnInd
	}
}
