// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mem

// This memory layout carves the Tegra DRAM between the security monitor and
// the platform kernel it hosts.
const (
	// Security Monitor
	SecureStart = 0x90000000
	SecureSize  = 0x05f00000 // 95MB

	// Security Monitor DMA (relocated to avoid conflicts with the hosted
	// kernel)
	SecureDMAStart = 0x95f00000
	SecureDMASize  = 0x00100000 // 1MB

	// Platform kernel
	KernelStart = 0x80000000
	KernelSize  = 0x10000000 // 256MB
)
