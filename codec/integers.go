// Package codec implements the big-endian wire primitives shared by every
// PDU, item, and sub-item codec in the pdu package: integer packing, AE
// title encoding, UID encoding, and the text-decode fallback chain.
package codec

import "encoding/binary"

// PutUint8 writes a single byte to dst[0].
func PutUint8(dst []byte, v uint8) {
	dst[0] = v
}

// Uint8 reads a single byte from src[0].
func Uint8(src []byte) uint8 {
	return src[0]
}

// PutUint16 writes v as big-endian into dst[0:2].
func PutUint16(dst []byte, v uint16) {
	binary.BigEndian.PutUint16(dst, v)
}

// Uint16 reads a big-endian uint16 from src[0:2].
func Uint16(src []byte) uint16 {
	return binary.BigEndian.Uint16(src)
}

// PutUint32 writes v as big-endian into dst[0:4].
func PutUint32(dst []byte, v uint32) {
	binary.BigEndian.PutUint32(dst, v)
}

// Uint32 reads a big-endian uint32 from src[0:4].
func Uint32(src []byte) uint32 {
	return binary.BigEndian.Uint32(src)
}

// Reserved returns n zero bytes, used for the fixed reserved fields that
// PDU and item encoders must emit but decoders must not validate.
func Reserved(n int) []byte {
	return make([]byte, n)
}
