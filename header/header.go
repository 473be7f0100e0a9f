// Copyright 2026 The stego Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package header

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// Magic is "STEN" when read as a big-endian word.
	Magic   = 0x5354454E
	Version = 0x0001

	// NameCapacity is the size of the name buffer, including the
	// mandatory NUL terminator.
	NameCapacity = 256
	// MaxNameLen is the longest name that can be stored.
	MaxNameLen = NameCapacity - 1

	// Size is the packed length of a header: 4+2+4+2+256+4.
	Size = 4 + 2 + 4 + 2 + NameCapacity + 4

	magicOff       = 0
	versionOff     = 4
	payloadSizeOff = 6
	nameLenOff     = 10
	nameOff        = 12
	checksumOff    = nameOff + NameCapacity
)

// ErrShortBuffer is returned when a buffer can't hold a whole header.
var ErrShortBuffer = errors.New("buffer shorter than header")

// Header describes the payload appended after it.
type Header struct {
	Magic       uint32
	Version     uint16
	PayloadSize uint32
	NameLen     uint16
	Name        [NameCapacity]byte
	Checksum    uint32
}

// New returns a sealed header for a payload of the given size. Names
// longer than MaxNameLen are truncated.
func New(payloadSize uint32, name string) *Header {
	h := &Header{
		Magic:       Magic,
		Version:     Version,
		PayloadSize: payloadSize,
	}
	if len(name) > MaxNameLen {
		name = name[:MaxNameLen]
	}
	h.NameLen = uint16(copy(h.Name[:MaxNameLen], name))
	h.Checksum = h.ComputeChecksum()
	return h
}

// ComputeChecksum sums magic, version, payload size, name length and the
// first NameLen name bytes, wrapping at 32 bits.
func (h *Header) ComputeChecksum() uint32 {
	sum := h.Magic + uint32(h.Version) + h.PayloadSize + uint32(h.NameLen)
	n := int(h.NameLen)
	if n > NameCapacity {
		n = NameCapacity
	}
	for _, b := range h.Name[:n] {
		sum += uint32(b)
	}
	return sum
}

// Valid reports whether the magic matches and the stored checksum agrees
// with a freshly computed one.
func (h *Header) Valid() bool {
	return h.Magic == Magic && h.Checksum == h.ComputeChecksum()
}

// FileName returns the stored name: the first NameLen bytes of the name
// buffer, cut short at a NUL if one appears earlier.
func (h *Header) FileName() string {
	n := int(h.NameLen)
	if n > NameCapacity {
		n = NameCapacity
	}
	name := h.Name[:n]
	for i, b := range name {
		if b == 0 {
			return string(name[:i])
		}
	}
	return string(name)
}

// MarshalTo packs the header into the first Size bytes of buf.
func (h *Header) MarshalTo(buf []byte) error {
	if len(buf) < Size {
		return fmt.Errorf("MarshalTo: %w: %d < %d", ErrShortBuffer, len(buf), Size)
	}
	buf = buf[:Size]

	binary.LittleEndian.PutUint32(buf[magicOff:], h.Magic)
	binary.LittleEndian.PutUint16(buf[versionOff:], h.Version)
	binary.LittleEndian.PutUint32(buf[payloadSizeOff:], h.PayloadSize)
	binary.LittleEndian.PutUint16(buf[nameLenOff:], h.NameLen)
	copy(buf[nameOff:checksumOff], h.Name[:])
	binary.LittleEndian.PutUint32(buf[checksumOff:], h.Checksum)

	return nil
}

// MarshalBinary returns the packed encoding of h.
func (h *Header) MarshalBinary() ([]byte, error) {
	buf := make([]byte, Size)
	if err := h.MarshalTo(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// UnmarshalBytes unpacks the first Size bytes of headerBytes verbatim.
// No validation is done here; call Valid.
func (h *Header) UnmarshalBytes(headerBytes []byte) error {
	if len(headerBytes) < Size {
		return fmt.Errorf("UnmarshalBytes: %w: %d < %d", ErrShortBuffer, len(headerBytes), Size)
	}

	headerBytes = headerBytes[:Size]

	h.Magic = binary.LittleEndian.Uint32(headerBytes[magicOff:])
	h.Version = binary.LittleEndian.Uint16(headerBytes[versionOff:])
	h.PayloadSize = binary.LittleEndian.Uint32(headerBytes[payloadSizeOff:])
	h.NameLen = binary.LittleEndian.Uint16(headerBytes[nameLenOff:])
	copy(h.Name[:], headerBytes[nameOff:checksumOff])
	h.Checksum = binary.LittleEndian.Uint32(headerBytes[checksumOff:])

	return nil
}
