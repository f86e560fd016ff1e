// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build !arm
// +build !arm

package smc

// 64-bit callers use the SMC64 function identifier namespace.
const fidGetRegBase = FuncGetRegBase64
