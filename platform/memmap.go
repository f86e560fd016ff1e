// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package platform implements the early bring-up sequence of a Tegra
// platform kernel: resolution of the kernel RAM arena against the static
// memory map table, secure monitor discovery of SoC register bases, device
// register mapping and staged initialization of the interrupt controller
// and system timer.
//
// The package holds the sequencing and policy only, hardware collaborators
// (physical allocator, address space, interrupt controller, timer, debug
// port) are passed in as interfaces, see soc/tegra for their tamago-backed
// implementations.
package platform

// MMU page size of the kernel address space.
const PageSize = 0x1000

// Initial mapping flags.
const (
	// MappingDynamic marks an entry whose base and size may be updated,
	// exactly once and before virtual memory initialization, by boot code
	// detecting the actual RAM geometry.
	MappingDynamic = 1 << iota
	// MappingDevice marks an uncached, no-execute device mapping.
	MappingDevice
)

// InitialMapping is one row of the static memory map table consumed by the
// earliest boot-time page table construction. A table is terminated by an
// all-zero sentinel entry.
type InitialMapping struct {
	Phys  uint64
	Virt  uint64
	Size  int
	Flags int
	Name  string
}

// IsZero reports whether m is the table sentinel.
func (m *InitialMapping) IsZero() bool {
	return m.Phys == 0 && m.Virt == 0 && m.Size == 0 && m.Flags == 0 && m.Name == ""
}

// FindDynamic returns the first dynamic entry matching name, or nil. The
// search stops at the table sentinel, the sentinel and unnamed entries are
// never matched.
func FindDynamic(table []InitialMapping, name string) *InitialMapping {
	for i := range table {
		m := &table[i]

		if m.IsZero() {
			break
		}

		if m.Flags&MappingDynamic == 0 {
			continue
		}

		if m.Name != "" && m.Name == name {
			return m
		}
	}

	return nil
}
