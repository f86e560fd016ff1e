// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package tegra

import (
	"fmt"

	"github.com/usbarmory/tamago/arm"
)

// Space maps device registers through the ARM core MMU.
type Space struct {
	CPU *arm.CPU
}

// MapDevice implements the platform.AddressSpace interface, mapping the
// given physical range at a fixed virtual address as uncached device memory.
// A zero virt requests placement in the flat kernel address space.
func (s *Space) MapDevice(name string, virt uint64, phys uint64, size int) error {
	if size <= 0 {
		return fmt.Errorf("invalid %s mapping size %d", name, size)
	}

	if phys == 0 {
		return fmt.Errorf("invalid %s physical address", name)
	}

	if virt == 0 {
		virt = phys
	}

	s.CPU.ConfigureMMU(uint32(virt), uint32(virt)+uint32(size), uint32(phys), arm.DeviceRegion|arm.TTE_AP_011<<10)

	return nil
}
