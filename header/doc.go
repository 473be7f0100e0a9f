// Copyright 2026 The stego Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package header encodes and decodes the fixed-size record that sits
// between the host bytes and the payload bytes of a container.
//
// A container looks like:
//
//	┌───────────────────┐
//	│ host bytes        │
//	│ (any length)      │
//	│                   │
//	├───────────────────┤
//	│ header (272 B)    │
//	├───────────────────┤
//	│ payload bytes     │
//	│                   │
//	└───────────────────┘
//
// The header is packed field-by-field, little-endian, with no padding:
//
//	 0    1    2    3    4    5    6    7
//	+----+----+----+----+----+----+----+----+
//	| magic             | ver     | size... |
//	+----+----+----+----+----+----+----+----+
//	| ...size | nlen    | name (256 bytes,  |
//	+----+----+----+----+----+----+----+----+
//	| NUL padded) ...                       |
//	+----+----+----+----+----+----+----+----+
//	| ...     | checksum          |
//	+----+----+----+----+----+----+
//
// The checksum is a wrapping 32-bit sum of the other fields and of the
// first nlen bytes of the name. It catches accidental corruption only:
// anyone can recompute it, and bytes of the name buffer past nlen are not
// covered at all.
package header
