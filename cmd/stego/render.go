// Copyright 2026 The stego Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/bpowers/stego"
)

func size(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}

func field(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s %s\n", LabelStyle.Render(label), value)
}

func renderEmbed(w io.Writer, r *stego.EmbedResult) {
	fmt.Fprintln(w, SuccessStyle.Render("✓ file embedded"))
	field(w, "output", r.OutputPath)
	field(w, "total size", size(r.TotalSize))
	field(w, "hidden file", fmt.Sprintf("%s (%s)", r.Name, size(r.PayloadSize)))
	field(w, "capacity", fmt.Sprintf("%.1f%% used, %s remaining", r.Utilization(), size(r.Remaining())))
	field(w, "fingerprint", fmt.Sprintf("%016x", r.Fingerprint))
}

func renderExtract(w io.Writer, r *stego.ExtractResult) {
	fmt.Fprintln(w, SuccessStyle.Render("✓ file extracted"))
	field(w, "output", r.OutputPath)
	field(w, "file size", size(r.Size))
	field(w, "original name", r.Name)
	field(w, "fingerprint", fmt.Sprintf("%016x", r.Fingerprint))
}

func renderInspect(w io.Writer, r *stego.ExtractResult) {
	fmt.Fprintln(w, SuccessStyle.Render("✓ hidden data located"))
	field(w, "original name", r.Name)
	field(w, "file size", size(r.Size))
	field(w, "header offset", fmt.Sprintf("%d", r.HeaderOffset))
	field(w, "fingerprint", fmt.Sprintf("%016x", r.Fingerprint))
}
