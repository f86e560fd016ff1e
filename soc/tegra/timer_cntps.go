// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build timer_cntps
// +build timer_cntps

package tegra

// TIMER_INT is the system timer interrupt line (secure physical timer).
const TIMER_INT = TIMER_INT_CNTPS
