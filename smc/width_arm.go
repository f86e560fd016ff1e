// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build arm
// +build arm

package smc

// 32-bit callers use the SMC32 function identifier namespace.
const fidGetRegBase = FuncGetRegBase
