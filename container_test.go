// Copyright 2026 The stego Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package stego

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpowers/stego/header"
)

func randomBytes(seed int64, n int) []byte {
	rng := rand.New(rand.NewSource(seed))
	b := make([]byte, n)
	_, _ = rng.Read(b)
	// keep the magic out of test data so scans only see headers we plant
	for i := 0; i+len(magicSig) <= len(b); i++ {
		if bytes.Equal(b[i:i+len(magicSig)], magicSig) {
			b[i] ^= 0xFF
		}
	}
	return b
}

func assemble(t *testing.T, host, payload []byte, name string) []byte {
	t.Helper()
	out, err := Assemble(host, header.New(uint32(len(payload)), name), payload)
	require.NoError(t, err)
	return out
}

func TestAssemble(t *testing.T) {
	host := randomBytes(1, 10240)
	payload := randomBytes(2, 100)

	out := assemble(t, host, payload, "secret.txt")
	require.Len(t, out, 10240+272+100)
	assert.Equal(t, host, out[:10240])
	assert.Equal(t, magicSig, out[10240:10244])
	assert.Equal(t, payload, out[10240+272:])

	_, err := Assemble(host, header.New(99, "secret.txt"), payload)
	assert.Error(t, err)
}

func TestUnpack_RoundTrip(t *testing.T) {
	for i, tc := range []struct {
		hostLen, payloadLen int
	}{
		{10240, 100},
		{10240, 0},
		{20000, 1},
		{50000, 40000},
	} {
		host := randomBytes(int64(i), tc.hostLen)
		payload := randomBytes(int64(i+100), tc.payloadLen)
		data := assemble(t, host, payload, "file.bin")

		u, err := Unpack(data)
		require.NoError(t, err)
		assert.Equal(t, int64(tc.hostLen), u.Offset)
		assert.Equal(t, "file.bin", u.Header.FileName())
		assert.Equal(t, payload, u.Payload)
	}
}

func TestUnpack_ZeroLengthHost(t *testing.T) {
	// the header starts at byte 0, the inclusive lower bound of the scan
	payload := []byte("tiny")
	data := assemble(t, nil, payload, "tiny.txt")

	u, err := Unpack(data)
	require.NoError(t, err)
	assert.Equal(t, int64(0), u.Offset)
	assert.Equal(t, payload, u.Payload)

	// and with nothing but the header
	data = assemble(t, nil, nil, "empty")
	require.Len(t, data, header.Size)
	u, err = Unpack(data)
	require.NoError(t, err)
	assert.Equal(t, int64(0), u.Offset)
	assert.Len(t, u.Payload, 0)
}

func TestLocate_TooShort(t *testing.T) {
	for _, n := range []int{0, 1, header.Size - 1} {
		_, _, err := Locate(make([]byte, n))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTooShort))

		var fe *FormatError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, int64(n), fe.Length)
	}
}

func TestLocate_NoHiddenData(t *testing.T) {
	for _, data := range [][]byte{
		make([]byte, header.Size),
		make([]byte, 10240),
		randomBytes(7, 30000),
	} {
		_, _, err := Locate(data)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNoHiddenData))

		var fe *FormatError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, int64(len(data)-header.Size), fe.Offset)
	}
}

func TestLocate_SkipsMagicWithBadChecksum(t *testing.T) {
	inner := assemble(t, randomBytes(3, 10240), []byte("payload"), "p.txt")

	// trailing junk that starts with the magic but isn't a valid header
	junk := make([]byte, header.Size)
	copy(junk, magicSig)
	data := append(bytes.Clone(inner), junk...)

	off, h, err := Locate(data)
	require.NoError(t, err)
	assert.Equal(t, int64(10240), off)
	assert.Equal(t, "p.txt", h.FileName())
}

func TestLocate_PrefersLastHeader(t *testing.T) {
	// a host that already contains a valid header-looking region
	decoy := assemble(t, randomBytes(4, 500), []byte("decoy"), "decoy.txt")
	host := append(decoy, randomBytes(5, 10240)...)
	data := assemble(t, host, []byte("real"), "real.txt")

	u, err := Unpack(data)
	require.NoError(t, err)
	assert.Equal(t, int64(len(host)), u.Offset)
	assert.Equal(t, "real.txt", u.Header.FileName())
	assert.Equal(t, []byte("real"), u.Payload)
}

func TestUnpack_SizeMismatch(t *testing.T) {
	data := assemble(t, randomBytes(6, 10240), randomBytes(8, 1000), "big.bin")

	// drop the tail of the payload, keeping the header in scan range
	truncated := data[:len(data)-800]
	_, err := Unpack(truncated)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSizeMismatch))

	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, int64(10240), fe.Offset)
	assert.Equal(t, uint32(1000), fe.Declared)
	assert.Contains(t, fe.Error(), "only 200 follow")
}

func TestUnpack_ChecksumSensitivity(t *testing.T) {
	const name = "secret.txt"
	data := assemble(t, make([]byte, 10240), randomBytes(9, 100), name)

	headerStart := 10240
	covered := func(off int) bool {
		// magic is excluded; name bytes past the stored length aren't summed
		return (off >= 4 && off < 12+len(name)) || off >= header.Size-4
	}
	for off := 0; off < header.Size; off++ {
		if !covered(off) {
			continue
		}
		for bit := 0; bit < 8; bit++ {
			corrupt := bytes.Clone(data)
			corrupt[headerStart+off] ^= 1 << bit
			_, err := Unpack(corrupt)
			require.Error(t, err, "flip at header byte %d bit %d", off, bit)
			var fe *FormatError
			assert.True(t, errors.As(err, &fe))
		}
	}
}

func TestUnpack_NameTruncation(t *testing.T) {
	long := strings.Repeat("x", 400) + ".txt"
	data := assemble(t, make([]byte, 10240), []byte("data"), long)

	u, err := Unpack(data)
	require.NoError(t, err)
	assert.Equal(t, uint16(header.MaxNameLen), u.Header.NameLen)
	assert.Equal(t, long[:header.MaxNameLen], u.Header.FileName())
	assert.Equal(t, byte(0), u.Header.Name[header.MaxNameLen])
}
