// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package platform

// resolveRAM reconciles the RAM arena descriptor with the static memory map
// table and registers it with the physical memory allocator.
//
// Boot code may have overwritten the dynamic table entry with the detected
// RAM geometry, in that case the descriptor is updated from the entry and
// marked kernel-mapped, otherwise its build-time defaults stand. Either way
// the arena is registered exactly once, ownership transfers to the
// allocator and the descriptor is never mutated again.
//
// A registration failure is fatal, the platform cannot run without a RAM
// arena (see Stages).
func (p *Platform) resolveRAM() error {
	if m := FindDynamic(p.Mappings, p.RAM.Name); m != nil {
		p.RAM.Base = m.Phys
		p.RAM.Size = m.Size
		p.RAM.Flags = ArenaKernelMap
	}

	return p.Memory.AddArena(&p.RAM)
}
