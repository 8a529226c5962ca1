package frozen

import "encoding/binary"

func readU16BE(b []byte) uint16 { return binary.BigEndian.Uint16(b) }
func readU32BE(b []byte) uint32 { return binary.BigEndian.Uint32(b) }

func writeU16BE(dst []byte, v uint16) { binary.BigEndian.PutUint16(dst, v) }
func writeU32BE(dst []byte, v uint32) { binary.BigEndian.PutUint32(dst, v) }
