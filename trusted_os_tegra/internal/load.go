// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package sm

import (
	"fmt"
	"log"

	"github.com/usbarmory/GoTEE/monitor"

	"github.com/usbarmory/armory-boot/exec"

	"github.com/usbarmory/GoTEE-tegra/mem"
	"github.com/usbarmory/GoTEE-tegra/util"
)

// OS is the embedded platform kernel image.
var OS []byte

// LoadKernel loads the platform kernel as Normal World OS.
func LoadKernel() (os *monitor.ExecCtx, err error) {
	image := &exec.ELFImage{
		Region: mem.KernelRegion,
		ELF:    OS,
	}

	if err = image.Load(); err != nil {
		return
	}

	if os, err = monitor.Load(image.Entry(), image.Region, false); err != nil {
		return nil, fmt.Errorf("SM could not load kernel, %v", err)
	}

	log.Printf("SM loaded kernel addr:%#x entry:%#x size:%d", os.Memory.Start(), os.R15, len(OS))

	if err = configureTrustZone(); err != nil {
		return nil, fmt.Errorf("SM could not configure TrustZone, %v", err)
	}

	// set kernel as ELF debugging target
	util.SetDebugTarget(image.ELF)

	// override default handler to answer register discovery calls and
	// improve logging
	os.Handler = Handler

	return
}
