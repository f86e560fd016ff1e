// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mem

import (
	"github.com/usbarmory/tamago/dma"
)

// KernelRegion is the memory reservation the platform kernel image is
// loaded and executed in.
var KernelRegion *dma.Region

func Init() {
	KernelRegion, _ = dma.NewRegion(KernelStart, KernelSize, false)
	KernelRegion.Reserve(KernelSize, 0)
}
