// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package platform

import (
	"testing"
)

func TestFindDynamic(t *testing.T) {
	table := []InitialMapping{
		{Phys: 0x80000000, Virt: 0x80000000, Size: 0x40000000, Flags: MappingDynamic, Name: "ram"},
		{Phys: 0x70006000, Virt: 0x70006000, Size: 0x40, Flags: MappingDevice, Name: "uart"},
		{},
	}

	m := FindDynamic(table, "ram")

	if m == nil {
		t.Fatal("dynamic entry not found")
	}

	if m.Phys != 0x80000000 || m.Size != 0x40000000 {
		t.Errorf("unexpected entry %+v", m)
	}

	// device entries are not eligible even when named
	if m := FindDynamic(table, "uart"); m != nil {
		t.Errorf("non-dynamic entry matched: %+v", m)
	}
}

func TestFindDynamicSentinel(t *testing.T) {
	table := []InitialMapping{
		{Phys: 0x70006000, Virt: 0x70006000, Size: 0x40, Flags: MappingDevice, Name: "uart"},
		{},
		// unreachable, the sentinel terminates the walk
		{Phys: 0x80000000, Virt: 0x80000000, Size: 0x40000000, Flags: MappingDynamic, Name: "ram"},
	}

	if m := FindDynamic(table, "ram"); m != nil {
		t.Errorf("entry beyond the sentinel matched: %+v", m)
	}

	// the sentinel itself must never match, not even by empty name
	if m := FindDynamic(table, ""); m != nil {
		t.Errorf("sentinel matched: %+v", m)
	}
}

func TestFindDynamicUnnamed(t *testing.T) {
	table := []InitialMapping{
		{Phys: 0x80000000, Virt: 0x80000000, Size: 0x40000000, Flags: MappingDynamic},
		{},
	}

	if m := FindDynamic(table, "ram"); m != nil {
		t.Errorf("unnamed entry matched a real name: %+v", m)
	}

	if m := FindDynamic(table, ""); m != nil {
		t.Errorf("unnamed entry matched an empty name: %+v", m)
	}
}

func TestIsZero(t *testing.T) {
	var sentinel InitialMapping

	if !sentinel.IsZero() {
		t.Error("zero entry not detected as sentinel")
	}

	m := InitialMapping{Name: "ram"}

	if m.IsZero() {
		t.Error("named entry detected as sentinel")
	}
}
