// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build arm
// +build arm

package smc

// Monitor issues secure monitor calls through the SMC instruction.
type Monitor struct{}

// Call implements the Caller interface.
func (Monitor) Call(fn uint32, a0, a1, a2 uint64) uint64 {
	return Call(fn, a0, a1, a2)
}

// Call issues a secure monitor call, trapping to the monitor exception
// vector, and returns its result.
func Call(fn uint32, a0, a1, a2 uint64) uint64 {
	return vector(fn, uint32(a0), uint32(a1), uint32(a2))
}

// defined in smc_arm.s
func vector(fn uint32, a0 uint32, a1 uint32, a2 uint32) uint64
