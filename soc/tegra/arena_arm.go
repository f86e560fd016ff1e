// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package tegra

import (
	"errors"

	"github.com/usbarmory/tamago/dma"

	"github.com/usbarmory/GoTEE-tegra/platform"
)

// RAMArena registers the kernel RAM arena with the TamaGo DMA allocator,
// backing general purpose device buffer allocation.
type RAMArena struct {
	Region *dma.Region
}

// AddArena implements the platform.Allocator interface. It accepts a single
// arena per boot, registration of an empty arena is rejected as the platform
// cannot run without general purpose memory.
func (r *RAMArena) AddArena(a *platform.Arena) (err error) {
	if a.Size == 0 {
		return errors.New("empty arena")
	}

	if r.Region != nil {
		return errors.New("arena already registered")
	}

	r.Region, err = dma.NewRegion(uint(a.Base), a.Size, false)

	return
}
