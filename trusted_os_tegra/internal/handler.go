// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package sm

import (
	"errors"
	"fmt"
	"log"

	"github.com/usbarmory/tamago/arm"

	"github.com/usbarmory/GoTEE/monitor"
	"github.com/usbarmory/GoTEE/syscall"

	"github.com/usbarmory/GoTEE-tegra/smc"
	"github.com/usbarmory/GoTEE-tegra/util"
)

// Console is the optional remote terminal mirroring kernel output.
var Console *util.Console

// Handler services monitor calls issued by the hosted kernel, it extends the
// GoTEE default handlers with register discovery and buffered logging.
func Handler(ctx *monitor.ExecCtx) (err error) {
	if ctx.ExceptionVector == arm.DATA_ABORT && ctx.NonSecure() {
		log.Printf("SM trapped Non-secure data abort pc:%#.8x", ctx.R15-8)

		log.Print(ctx)
		ctx.Stop()

		return
	}

	if ctx.ExceptionVector != arm.SUPERVISOR {
		return fmt.Errorf("exception %x", ctx.ExceptionVector)
	}

	switch ctx.A0() {
	case syscall.SYS_WRITE:
		// Override write syscall to avoid interleaved logs and to log
		// simultaneously to remote terminal and serial console.
		if Console != nil {
			util.BufferedTermLog(byte(ctx.A1()), !ctx.NonSecure(), Console.Term)
		} else {
			util.BufferedStdoutLog(byte(ctx.A1()), !ctx.NonSecure())
		}
	case syscall.SYS_EXIT:
		// support exit syscall on both security states
		ctx.Stop()
	case smc.FuncGetRegBase, smc.FuncGetRegBase64:
		// 64-bit results are split across the first two return
		// registers in both fastcall namespaces.
		base := RegBase(uint32(ctx.A1()))

		ctx.R0 = uint32(base)
		ctx.R1 = uint32(base >> 32)
	default:
		if ctx.NonSecure() {
			log.Print(ctx)
			return errors.New("unexpected monitor call")
		} else {
			return monitor.SecureHandler(ctx)
		}
	}

	return
}
