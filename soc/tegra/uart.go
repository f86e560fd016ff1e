// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package tegra

import (
	"sync/atomic"
	"unsafe"
)

// 8250 UART registers (32-bit stride)
const (
	UART_THR = 0x00
	UART_LSR = 0x14

	LSR_THRE = 1 << 5
)

// uartBase indexes the debug UART instances by port identifier.
var uartBase = [...]uint32{
	UARTA_BASE,
	UARTB_BASE,
	UARTC_BASE,
	UARTD_BASE,
	UARTE_BASE,
}

// DebugConsole drives the 8250 debug UART selected as debug port, the port
// itself is expected to be clocked and configured by earlier firmware.
type DebugConsole struct {
	base uint32
}

// InitPort selects the UART instance used for console output, invalid
// identifiers fall back to UARTA. Configuration is fire-and-forget, it uses
// only statically known device addresses.
func (c *DebugConsole) InitPort(id int) {
	if id < 0 || id >= len(uartBase) {
		id = DEFAULT_DEBUG_PORT
	}

	c.base = uartBase[id]
}

// Tx transmits a single character to the serial port.
func (c *DebugConsole) Tx(b byte) {
	if c.base == 0 {
		return
	}

	for atomic.LoadUint32(reg(c.base+UART_LSR))&LSR_THRE == 0 {
		// wait for transmitter hold register to empty out
	}

	atomic.StoreUint32(reg(c.base+UART_THR), uint32(b))
}

func reg(addr uint32) *uint32 {
	return (*uint32)(unsafe.Pointer(uintptr(addr)))
}
