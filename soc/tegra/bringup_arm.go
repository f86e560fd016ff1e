// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package tegra

import (
	"github.com/usbarmory/tamago/arm"
	"github.com/usbarmory/tamago/arm/gic"

	"github.com/usbarmory/GoTEE-tegra/platform"
	"github.com/usbarmory/GoTEE-tegra/smc"
)

// SoC drivers
var (
	// ARM core
	ARM = &arm.CPU{}

	// Generic Interrupt Controller
	GIC = &gic.GIC{
		Base: GIC_BASE_VIRT,
	}

	// Debug console
	UART = &DebugConsole{}
)

// Init performs base SoC initialization, it is meant to be invoked as early
// as possible by the runtime.
func Init() {
	ARM.Init()
	ARM.EnableVFP()

	// required to take advantage of data cache
	ARM.InitMMU()
	ARM.EnableCache()
}

// Bringup returns the platform boot context, wired to the SoC drivers and
// to the security monitor for register discovery. Invoking Boot on it runs
// the early bring-up sequence (see package platform).
func Bringup() *platform.Platform {
	return &platform.Platform{
		Mappings:  InitialMappings,
		RAM:       platform.Arena{Name: "ram", Base: MEMORY_BASE, Size: MEMORY_SIZE},
		DebugPort: DEFAULT_DEBUG_PORT,

		UARTBase:       UARTA_BASE,
		GICCBase:       GICC_BASE_VIRT,
		GICDBase:       GICD_BASE_VIRT,
		GICCSize:       GICC_SIZE,
		GICDSize:       GICD_SIZE,
		TimerInterrupt: TIMER_INT,

		Memory:  &RAMArena{},
		Space:   &Space{CPU: ARM},
		Monitor: smc.Monitor{},
		GIC:     &IntCtrl{GIC: GIC},
		Timer:   &SysTimer{CPU: ARM, GIC: GIC},
		Debug:   UART,
	}
}
