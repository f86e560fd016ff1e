// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build !timer_cntps && !timer_cntp
// +build !timer_cntps,!timer_cntp

package tegra

// TIMER_INT is the system timer interrupt line (virtual timer by default,
// build with `timer_cntps` or `timer_cntp` to select a physical timer).
const TIMER_INT = TIMER_INT_CNTV
