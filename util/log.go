// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package util

import (
	"bytes"
	"os"

	"golang.org/x/term"
)

var monitorOutput bytes.Buffer
var kernelOutput bytes.Buffer

const outputLimit = 1024
const flushChr = 0x0a // \n

// BufferedStdoutLog accumulates console bytes, line buffered, on standard
// output. The monitor flag separates security monitor output from hosted
// kernel output to avoid interleaved logs.
func BufferedStdoutLog(c byte, monitor bool) {
	var buf *bytes.Buffer

	if monitor {
		buf = &monitorOutput
	} else {
		buf = &kernelOutput
	}

	buf.WriteByte(c)

	if c == flushChr || buf.Len() > outputLimit {
		os.Stdout.Write(buf.Bytes())
		buf.Reset()
	}
}

// BufferedTermLog mirrors BufferedStdoutLog on a remote terminal, monitor
// and kernel output are colored differently.
func BufferedTermLog(c byte, monitor bool, t *term.Terminal) {
	var buf *bytes.Buffer
	var color []byte

	if monitor {
		buf = &monitorOutput
		color = t.Escape.Green
	} else {
		buf = &kernelOutput
		color = t.Escape.Red
	}

	buf.WriteByte(c)

	if c == flushChr || buf.Len() > outputLimit {
		t.Write(color)
		t.Write(buf.Bytes())
		t.Write(t.Escape.Reset)

		buf.Reset()
	}
}
