// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package sm

import (
	"github.com/usbarmory/tamago/soc/nxp/imx6ul"

	"github.com/usbarmory/GoTEE-tegra/smc"
)

// Tegra interrupt controller register blocks, as exposed to hosted kernels
// through register discovery calls.
const (
	GICC_BASE = 0x50041000
	GICD_BASE = 0x50051000
)

// RegBase resolves a register block identifier to its physical base address,
// it backs the monitor side of register discovery calls.
//
// On i.MX6UL development boards the GIC blocks of the SoC running the monitor
// are returned, elsewhere the Tegra layout applies. Unknown identifiers
// resolve to zero, hosted kernels treat such blocks as absent.
func RegBase(block uint32) uint64 {
	native := imx6ul.Native

	switch block {
	case smc.RegGICC:
		if native {
			return uint64(imx6ul.GIC_BASE + 0x2000)
		}

		return GICC_BASE
	case smc.RegGICD:
		if native {
			return uint64(imx6ul.GIC_BASE + 0x1000)
		}

		return GICD_BASE
	}

	return 0
}
