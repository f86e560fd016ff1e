// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package tegra

// ARM generic timer interrupt lines.
const (
	TIMER_INT_CNTV  = 27 // virtual timer
	TIMER_INT_CNTPS = 29 // secure physical timer
	TIMER_INT_CNTP  = 30 // non-secure physical timer
)
