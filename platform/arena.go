// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package platform

// Arena flags.
const (
	// ArenaKernelMap marks an arena already mapped in the kernel address
	// space.
	ArenaKernelMap = 1 << iota
)

// Arena describes a named, contiguous region of physical memory registered
// with the physical memory allocator for general allocation.
//
// The kernel RAM arena is default-initialized with build-time geometry and
// resolved against the static memory map table during early platform
// initialization, after registration it is owned by the allocator and never
// mutated again.
type Arena struct {
	Name  string
	Base  uint64
	Size  int
	Flags int
}
