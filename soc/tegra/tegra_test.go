// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package tegra

import (
	"testing"

	"github.com/usbarmory/GoTEE-tegra/platform"
)

func TestInitialMappings(t *testing.T) {
	last := InitialMappings[len(InitialMappings)-1]

	if !last.IsZero() {
		t.Error("memory map table is not sentinel terminated")
	}

	m := platform.FindDynamic(InitialMappings, "ram")

	if m == nil {
		t.Fatal("memory map table carries no dynamic RAM entry")
	}

	if m.Phys != MEMORY_BASE || m.Size != MEMORY_SIZE {
		t.Errorf("dynamic RAM entry %+v does not match build-time defaults", m)
	}

	for i := range InitialMappings {
		e := &InitialMappings[i]

		if e.IsZero() {
			break
		}

		if e.Flags&platform.MappingDevice != 0 && e.Virt != e.Phys {
			t.Errorf("device entry %q is not identity mapped", e.Name)
		}
	}
}

func TestDebugPortSelection(t *testing.T) {
	c := &DebugConsole{}

	c.InitPort(3)

	if c.base != UARTD_BASE {
		t.Errorf("debug port 3 selected base %#x", c.base)
	}

	// invalid identifiers fall back to the default port
	c.InitPort(5)

	if c.base != UARTA_BASE {
		t.Errorf("invalid debug port selected base %#x", c.base)
	}
}
