// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package smc implements the client side of the secure monitor calling
// convention used by NVIDIA Tegra firmware, which follows the Trusty SMC
// fastcall encoding.
//
// The platform monitor owns the SoC register layout, kernels running below
// it query register base addresses at run time instead of hardcoding them.
package smc

// Fastcall encoding bits.
const (
	fastCall   = 0x80000000
	fastCall64 = 0x40000000

	entityPlatformMonitor = 61
)

// Platform monitor function identifiers, in the 32-bit and 64-bit calling
// convention namespaces. The two variants are identical in shape and differ
// only in width encoding, the one matching the build architecture is used by
// RegBase.
const (
	FuncGetRegBase   uint32 = fastCall | entityPlatformMonitor<<24
	FuncGetRegBase64 uint32 = fastCall | fastCall64 | entityPlatformMonitor<<24
)

// Register block identifiers for FuncGetRegBase queries.
const (
	RegGICC = iota
	RegGICD
)

// Caller issues secure monitor calls. On hardware this is backed by the SMC
// instruction (see Monitor), tests substitute their own implementation.
type Caller interface {
	Call(fn uint32, a0, a1, a2 uint64) uint64
}

// RegBase queries the secure monitor for the physical base address of a
// register block. Each invocation issues a fresh call, results are returned
// as received and not validated, the monitor is trusted.
//
// RegBase can only be used once the calling execution context is fully
// initialized, it is meant to be issued from post-VM bring-up stages.
func RegBase(c Caller, block uint32) uint64 {
	return c.Call(fidGetRegBase, uint64(block), 0, 0)
}
