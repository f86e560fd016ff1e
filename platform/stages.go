// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package platform

import (
	"errors"
	"fmt"
	"log"

	"github.com/usbarmory/GoTEE-tegra/smc"
)

// Policy selects how a bring-up operation failure is treated.
type Policy int

const (
	// Fatal halts the boot, the platform cannot run past the failure.
	Fatal Policy = iota
	// BestEffort logs a diagnostic and continues with the next step.
	BestEffort
)

// Initialization levels, one per bring-up milestone. Stages execute in
// non-decreasing level order, exactly once per boot.
const (
	// LevelEarly runs before memory management exists.
	LevelEarly = iota
	// LevelVM runs as virtual memory comes up, before any general purpose
	// allocation.
	LevelVM
	// LevelConsole runs right after virtual memory initialization.
	LevelConsole
	// LevelDevice runs one step after LevelConsole, once diagnostic
	// output is usable.
	LevelDevice
)

// Stage is a single bring-up phase.
type Stage struct {
	Name   string
	Level  int
	Policy Policy
	Fn     func() error
}

// Stages returns the bring-up stages in their total execution order.
//
// Console mapping must precede device bring-up, which may need to log
// failures, and device discovery must complete before interrupt controller
// initialization, which reads both mapped register blocks.
func (p *Platform) Stages() []Stage {
	return []Stage{
		{Name: "early", Level: LevelEarly, Policy: BestEffort, Fn: p.earlyInit},
		{Name: "ram", Level: LevelVM, Policy: Fatal, Fn: p.resolveRAM},
		{Name: "console", Level: LevelConsole, Policy: BestEffort, Fn: p.mapConsole},
		{Name: "device", Level: LevelDevice, Policy: BestEffort, Fn: p.initDevices},
	}
}

// Boot executes the bring-up stages exactly once, in their total order.
// There is no rollback and no retry, a failed BestEffort stage is logged
// and the boot proceeds, a failed Fatal stage panics as the platform cannot
// run past it.
func (p *Platform) Boot() error {
	if p.booted {
		return errors.New("platform already booted")
	}

	p.booted = true

	for _, s := range p.Stages() {
		err := s.Fn()

		if err == nil {
			continue
		}

		if s.Policy == Fatal {
			panic(fmt.Sprintf("%s bring-up failed, %v", s.Name, err))
		}

		log.Printf("%s bring-up failed, %v", s.Name, err)
	}

	return nil
}

// earlyInit selects the debug port for the earliest console output, it uses
// only statically known device addresses and has no dependency on memory
// management.
func (p *Platform) earlyInit() error {
	p.Debug.InitPort(p.DebugPort)
	return nil
}

// mapConsole maps the debug UART register page, uncached, making diagnostic
// output usable from the kernel address space.
func (p *Platform) mapConsole() error {
	return p.Space.MapDevice("uart", 0, p.UARTBase&^(PageSize-1), PageSize)
}

// initDevices discovers the interrupt controller register blocks through the
// secure monitor, maps them at their fixed virtual addresses and initializes
// the interrupt controller and system timer drivers.
func (p *Platform) initDevices() error {
	gicc := smc.RegBase(p.Monitor, smc.RegGICC)
	gicd := smc.RegBase(p.Monitor, smc.RegGICD)

	log.Printf("gicc %#x, gicd %#x", gicc, gicd)

	p.mapRegs("gicc", p.GICCBase, gicc, p.GICCSize, BestEffort)
	p.mapRegs("gicd", p.GICDBase, gicd, p.GICDSize, BestEffort)

	p.GIC.Init()
	p.Timer.Init(p.TimerInterrupt, 0)

	return nil
}

// mapRegs requests an uncached device register mapping at a fixed virtual
// address, applying the given failure policy.
func (p *Platform) mapRegs(name string, virt uint64, phys uint64, size int, policy Policy) {
	err := p.Space.MapDevice(name, virt, phys, size)

	if err == nil {
		return
	}

	if policy == Fatal {
		panic(fmt.Sprintf("could not map %s registers, %v", name, err))
	}

	log.Printf("could not map %s registers, %v", name, err)
}
