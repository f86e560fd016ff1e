// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package tegra provides support for the NVIDIA Tegra application
// processors, in the form of peripheral constants and bring-up collaborators
// for kernels hosted under the Tegra security monitor.
//
// The package is meant to be used with `GOOS=tamago GOARCH=arm` as supported
// by the TamaGo framework for bare metal Go.
package tegra

// Peripheral registers.
const (
	// Debug UART instances
	UARTA_BASE = 0x70006000
	UARTB_BASE = 0x70006040
	UARTC_BASE = 0x70006200
	UARTD_BASE = 0x70006300
	UARTE_BASE = 0x70006400
	UART_SIZE  = 0x40

	// Interrupt controller kernel mappings, the physical bases are
	// resolved through the security monitor at run time.
	GIC_BASE_VIRT  = 0x50040000
	GICD_BASE_VIRT = GIC_BASE_VIRT + 0x1000
	GICC_BASE_VIRT = GIC_BASE_VIRT + 0x2000
	GICD_SIZE      = 0x1000
	GICC_SIZE      = 0x2000
)

// Build-time RAM geometry defaults, boot code overwrites the dynamic memory
// map entry when it detects the actual DRAM configuration.
const (
	MEMORY_BASE = 0x80000000
	MEMORY_SIZE = 0x08000000 // 128MB
)

// DEFAULT_DEBUG_PORT selects UARTA for the earliest console output.
const DEFAULT_DEBUG_PORT = 0

// TIMER_FREQ is the system oscillator frequency driving the ARM generic
// timers (19.2 MHz).
const TIMER_FREQ = 19200000
