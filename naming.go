// Copyright 2026 The stego Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package stego

import (
	"strings"
)

const extractedPrefix = "extracted_"

// baseName strips directory components, treating both '/' and '\' as
// separators so stored names don't depend on the embedding platform.
func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// hasExt reports whether the last '.' in path comes after the last separator.
func hasExt(path string) bool {
	dot := strings.LastIndexByte(path, '.')
	return dot >= 0 && dot > strings.LastIndexAny(path, `/\`)
}

// ext returns name's suffix from its last '.', lowercased, or "".
func ext(name string) string {
	dot := strings.LastIndexByte(name, '.')
	if dot < 0 {
		return ""
	}
	return strings.ToLower(name[dot:])
}

// OutputName completes a requested output path using original, the name
// of the file whose bytes are being written:
//
//   - no requested path: "extracted_" + original
//   - requested path with an extension: unchanged
//   - otherwise: requested + original's lowercased extension
func OutputName(requested, original string) string {
	if requested == "" {
		return extractedPrefix + original
	}
	if hasExt(requested) {
		return requested
	}
	return requested + ext(original)
}

// safeName reduces a name read from an untrusted container to a single
// path element.
func safeName(name string) string {
	name = baseName(name)
	switch name {
	case "", ".", "..":
		return "payload"
	}
	return name
}
