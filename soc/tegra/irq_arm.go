// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package tegra

import (
	"github.com/usbarmory/tamago/arm"
	"github.com/usbarmory/tamago/arm/gic"
)

// IntCtrl adapts the TamaGo GIC driver to the bring-up interface, operating
// on the fixed virtual register window the distributor and CPU interface are
// mapped at.
type IntCtrl struct {
	GIC *gic.GIC
}

// Init implements the platform.InterruptController interface.
func (c *IntCtrl) Init() {
	c.GIC.Init(true, false)
}

// SysTimer adapts the ARM generic timers to the bring-up interface.
type SysTimer struct {
	CPU *arm.CPU
	GIC *gic.GIC
}

// Init implements the platform.Timer interface, starting the generic timers
// and enabling the selected timer interrupt line. The flags argument is
// reserved and currently ignored by the driver.
func (t *SysTimer) Init(irq int, flags int) {
	t.CPU.InitGenericTimers(0, TIMER_FREQ)
	t.GIC.EnableInterrupt(irq, true)
}
