// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package tegra

import (
	"github.com/usbarmory/GoTEE-tegra/platform"
)

// InitialMappings is the static memory map table consumed by the earliest
// boot-time page table construction.
//
// The "ram" entry is dynamic, boot code overwrites its base and size with
// the detected DRAM geometry before virtual memory initialization, the
// bring-up resolver reconciles the RAM arena against it. TamaGo kernels run
// identity mapped, virtual addresses match physical ones.
var InitialMappings = []platform.InitialMapping{
	{
		Phys:  MEMORY_BASE,
		Virt:  MEMORY_BASE,
		Size:  MEMORY_SIZE,
		Flags: platform.MappingDynamic,
		Name:  "ram",
	},
	{
		Phys:  UARTA_BASE,
		Virt:  UARTA_BASE,
		Size:  UART_SIZE,
		Flags: platform.MappingDevice,
		Name:  "uart",
	},
	// sentinel
	{},
}
