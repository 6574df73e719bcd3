package util

import "encoding/binary"

type binaryOrder struct{ binary.ByteOrder }

// BinaryOrder is the byte order of multi-byte values on the HCI command
// plane: little-endian, extended with single-byte accessors so command
// marshalling reads uniformly.
var BinaryOrder = binaryOrder{binary.LittleEndian}

func (o binaryOrder) Int8(b []byte) int8   { return int8(b[0]) }
func (o binaryOrder) Uint8(b []byte) uint8 { return b[0] }

func (o binaryOrder) PutInt8(b []byte, v int8)   { b[0] = byte(v) }
func (o binaryOrder) PutUint8(b []byte, v uint8) { b[0] = v }
