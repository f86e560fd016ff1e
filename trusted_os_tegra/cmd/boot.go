// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package cmd

import (
	"golang.org/x/term"

	sm "github.com/usbarmory/GoTEE-tegra/trusted_os_tegra/internal"
)

func init() {
	Add(Cmd{
		Name: "boot",
		Help: "load and start the platform kernel",
		Fn:   bootCmd,
	})
}

func bootCmd(_ *term.Terminal, _ []string) (res string, err error) {
	os, err := sm.LoadKernel()

	if err != nil {
		return
	}

	go sm.Run(os, nil)

	return
}
