// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"fmt"

	"golang.org/x/term"

	"github.com/usbarmory/GoTEE-tegra/smc"
	sm "github.com/usbarmory/GoTEE-tegra/trusted_os_tegra/internal"
)

func init() {
	Add(Cmd{
		Name: "regs",
		Help: "show register blocks exposed to hosted kernels",
		Fn:   regsCmd,
	})
}

func regsCmd(_ *term.Terminal, _ []string) (res string, err error) {
	var buf bytes.Buffer

	blocks := []struct {
		name string
		id   uint32
	}{
		{"GICC", smc.RegGICC},
		{"GICD", smc.RegGICD},
	}

	buf.WriteString("| block | base       |\n")
	buf.WriteString("|-------|------------|\n")

	for _, block := range blocks {
		fmt.Fprintf(&buf, "| %s  | %#.8x |\n", block.name, sm.RegBase(block.id))
	}

	return buf.String(), nil
}
