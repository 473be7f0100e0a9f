// Copyright 2026 The stego Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package stego

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/bpowers/stego/header"
)

// the magic as it appears on disk
var magicSig = binary.LittleEndian.AppendUint32(nil, header.Magic)

// Assemble returns host ++ h ++ payload.
func Assemble(host []byte, h *header.Header, payload []byte) ([]byte, error) {
	if uint64(len(payload)) != uint64(h.PayloadSize) {
		return nil, fmt.Errorf("header declares %d payload bytes, got %d", h.PayloadSize, len(payload))
	}

	out := make([]byte, len(host)+headerSize+len(payload))
	n := copy(out, host)
	if err := h.MarshalTo(out[n : n+headerSize]); err != nil {
		return nil, fmt.Errorf("h.MarshalTo: %w", err)
	}
	copy(out[n+headerSize:], payload)

	return out, nil
}

// Locate finds the header closest to the end of data.  Every offset from
// len(data)-header.Size down to 0 inclusive is a candidate; the first one
// holding a valid header wins, so a host that happens to contain
// header-like bytes can't shadow the real, appended header.
func Locate(data []byte) (int64, *header.Header, error) {
	if len(data) < headerSize {
		return 0, nil, &FormatError{Kind: ErrTooShort, Length: int64(len(data))}
	}
	start := len(data) - headerSize

	// A valid header starts with the magic, so jump between magic
	// occurrences instead of decoding at every offset.  LastIndex over
	// data[:end] only reports offsets <= end-len(magicSig).
	end := start + len(magicSig)
	for {
		i := bytes.LastIndex(data[:end], magicSig)
		if i < 0 {
			break
		}
		var h header.Header
		if err := h.UnmarshalBytes(data[i:]); err != nil {
			return 0, nil, fmt.Errorf("h.UnmarshalBytes(%d): %w", i, err)
		}
		if h.Valid() {
			return int64(i), &h, nil
		}
		end = i + len(magicSig) - 1
	}

	return 0, nil, &FormatError{Kind: ErrNoHiddenData, Offset: int64(start), Length: int64(len(data))}
}

// Unpacked is the result of Unpack.
type Unpacked struct {
	Header  *header.Header
	Offset  int64
	Payload []byte
}

// Unpack locates the header in data and returns the payload that follows
// it.  Payload aliases data.
func Unpack(data []byte) (*Unpacked, error) {
	off, h, err := Locate(data)
	if err != nil {
		return nil, err
	}

	// re-read from the located offset rather than trusting the scan
	var checked header.Header
	if err := checked.UnmarshalBytes(data[off:]); err != nil || !checked.Valid() || checked != *h {
		return nil, &FormatError{Kind: ErrCorruptHeader, Offset: off, Length: int64(len(data))}
	}

	// int64 can't overflow here: off and len(data) fit in int, the
	// declared size in 32 bits
	payloadStart := off + headerSize
	payloadEnd := payloadStart + int64(checked.PayloadSize)
	if payloadEnd > int64(len(data)) {
		return nil, &FormatError{
			Kind:     ErrSizeMismatch,
			Offset:   off,
			Length:   int64(len(data)),
			Declared: checked.PayloadSize,
		}
	}

	return &Unpacked{
		Header:  &checked,
		Offset:  off,
		Payload: data[payloadStart:payloadEnd],
	}, nil
}
