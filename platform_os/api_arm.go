// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package main

import (
	"github.com/usbarmory/GoTEE/syscall"

	"github.com/usbarmory/GoTEE-tegra/smc"
)

func write(c byte) {
	smc.Call(syscall.SYS_WRITE, uint64(c), 0, 0)
}

func exit() {
	smc.Call(syscall.SYS_EXIT, 0, 0, 0)
}
