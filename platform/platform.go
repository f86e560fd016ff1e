// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package platform

import (
	"github.com/usbarmory/GoTEE-tegra/smc"
)

// Allocator registers physical memory arenas for general allocation.
type Allocator interface {
	AddArena(a *Arena) error
}

// AddressSpace maps physical device register ranges in the kernel address
// space, uncached and non-executable. A zero virt lets the implementation
// place the mapping.
type AddressSpace interface {
	MapDevice(name string, virt uint64, phys uint64, size int) error
}

// InterruptController initializes the interrupt controller driver, assumed
// infallible once its register blocks are correctly mapped.
type InterruptController interface {
	Init()
}

// Timer initializes the system timer driver on the given interrupt line.
type Timer interface {
	Init(irq int, flags int)
}

// DebugPort selects the UART instance used for the earliest console output.
type DebugPort interface {
	InitPort(id int)
}

// Platform is the boot context carrying the memory map table, the RAM arena
// descriptor, the fixed device addresses and the hardware collaborators.
//
// Bring-up is strictly sequential boot-time code, running before any
// scheduler exists: every field has a single writer and no locking is used
// or required.
type Platform struct {
	// Mappings is the static memory map table, sentinel terminated.
	Mappings []InitialMapping
	// RAM is the kernel RAM arena descriptor, holding build-time defaults
	// until resolved against the memory map table.
	RAM Arena
	// DebugPort identifies the UART instance for early console output.
	DebugPort int

	// UARTBase is the debug UART physical register base.
	UARTBase uint64
	// GICCBase and GICDBase are the fixed virtual addresses the interrupt
	// controller CPU interface and distributor are mapped at.
	GICCBase uint64
	GICDBase uint64
	GICCSize int
	GICDSize int
	// TimerInterrupt is the system timer interrupt line.
	TimerInterrupt int

	// hardware collaborators
	Memory  Allocator
	Space   AddressSpace
	Monitor smc.Caller
	GIC     InterruptController
	Timer   Timer
	Debug   DebugPort

	booted bool
}
