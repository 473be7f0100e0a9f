// Copyright 2026 The stego Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package stego appends a payload file to the end of a host file and
// later recovers it.
//
// Embedding produces host ++ header ++ payload.  Most host formats
// (images, audio, archives, documents) ignore trailing bytes, so the
// output still opens as the host did.  Nothing records where the host
// ends: Extract rediscovers the header by scanning backwards from the end
// of the file for the last offset that holds a structurally valid header.
// See package header for the record layout.
//
// The payload is neither hidden in the host's perceptual structure nor
// encrypted; anyone who knows the format can read it back.  Whole files
// are held in memory, so this is meant for modest sizes.
package stego
