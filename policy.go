// Copyright 2026 The stego Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package stego

import (
	"math"

	"github.com/bpowers/stego/header"
)

const (
	// MinHostSize is the smallest host we'll embed into.
	MinHostSize = 10 * 1024
	// MaxPayloadRatio bounds header+payload as a fraction of the host size.
	MaxPayloadRatio = 0.85

	headerSize = header.Size
)

// MaxPayload checks a payload of payloadSize bytes against a host of
// hostSize bytes and returns the host's payload capacity.  The result is
// advisory; it isn't stored anywhere.
func MaxPayload(payloadSize, hostSize uint64) (uint64, error) {
	return maxPayload(payloadSize, hostSize, MinHostSize, MaxPayloadRatio)
}

func maxPayload(payloadSize, hostSize, minHost uint64, ratio float64) (uint64, error) {
	if hostSize < minHost {
		return 0, &SizeError{Kind: ErrHostTooSmall, HostSize: hostSize, Requested: payloadSize, Allowed: minHost}
	}

	// float64 multiply then truncate, to agree with existing containers'
	// capacity arithmetic to the byte
	capacity := uint64(float64(hostSize) * ratio)
	if capacity < headerSize {
		return 0, &SizeError{Kind: ErrHostTooSmallForHeader, HostSize: hostSize, Requested: payloadSize}
	}
	allowed := capacity - headerSize

	if payloadSize > allowed {
		return 0, &SizeError{Kind: ErrPayloadTooLarge, HostSize: hostSize, Requested: payloadSize, Allowed: allowed}
	}
	// the header stores the size in 32 bits
	if payloadSize > math.MaxUint32 {
		return 0, &SizeError{Kind: ErrPayloadTooLarge, HostSize: hostSize, Requested: payloadSize, Allowed: math.MaxUint32}
	}

	return allowed, nil
}
