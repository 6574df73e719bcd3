package cmd

import (
	"bytes"
	"context"
	"fmt"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/bleadv/linux/consts"
	"github.com/xaionaro-go/bleadv/linux/util"
)

// CmdParam is the parameter block of an HCI command.
type CmdParam interface {
	Marshal([]byte)
	Opcode() int
	Len() int
}

// A Sender pushes a marshalled command packet to the controller transport
// and returns the status parameter(s) of the controller's response.
// The transport itself (HCI socket, UART, a proxy) is outside this
// package; implementations must be safe for concurrent use.
type Sender interface {
	Send(ctx context.Context, b []byte) ([]byte, error)
}

// Cmd marshals HCI commands onto a Sender.
type Cmd struct {
	dev Sender
}

func NewCmd(dev Sender) *Cmd {
	return &Cmd{dev: dev}
}

// Marshal frames cp as a full HCI command packet:
// packet type, opcode (little-endian), parameter length, parameters.
func Marshal(cp CmdParam) []byte {
	b := make([]byte, 1+2+1+cp.Len())
	util.BinaryOrder.PutUint8(b, uint8(consts.PacketTypeCommand))
	util.BinaryOrder.PutUint16(b[1:], uint16(cp.Opcode()))
	util.BinaryOrder.PutUint8(b[3:], uint8(cp.Len()))
	cp.Marshal(b[4:])
	return b
}

// Send marshals and sends a single command, returning the response status
// parameters as reported by the Sender.
func (c *Cmd) Send(ctx context.Context, cp CmdParam) ([]byte, error) {
	raw := Marshal(cp)
	logger.Tracef(ctx, "< HCI command: 0x%04X plen: %d [ % X ]", cp.Opcode(), cp.Len(), raw)
	return c.dev.Send(ctx, raw)
}

// SendAndCheckResp sends a command and checks that the first status byte
// of the response is one of the expected values. An empty exp skips the
// check.
func (c *Cmd) SendAndCheckResp(ctx context.Context, cp CmdParam, exp []byte) error {
	rsp, err := c.Send(ctx, cp)
	if err != nil {
		return err
	}
	// Don't care about the response.
	if len(exp) == 0 {
		return nil
	}
	if len(rsp) == 0 || !bytes.Contains(exp, rsp[0:1]) {
		return fmt.Errorf("HCI command 0x%04X returned [% X], expect [% X]", cp.Opcode(), rsp, exp)
	}
	return nil
}
