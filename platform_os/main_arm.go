// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// The platform_os kernel runs as Normal World OS under the tegra security
// monitor, it performs the early platform bring-up sequence before yielding
// back.
package main

import (
	"log"
	"os"
	"runtime"
	_ "unsafe"

	"github.com/usbarmory/GoTEE-tegra/mem"
	"github.com/usbarmory/GoTEE-tegra/soc/tegra"
)

//go:linkname ramStart runtime.ramStart
var ramStart uint32 = mem.KernelStart

//go:linkname ramSize runtime.ramSize
var ramSize uint32 = mem.KernelSize

//go:linkname hwinit runtime.hwinit
func hwinit() {
	tegra.Init()
}

//go:linkname printk runtime.printk
func printk(c byte) {
	write(c)
}

func init() {
	log.SetFlags(log.Ltime)
	log.SetOutput(os.Stdout)
}

func main() {
	log.Printf("%s/%s (%s) • platform kernel (Non-secure)", runtime.GOOS, runtime.GOARCH, runtime.Version())

	p := tegra.Bringup()

	if err := p.Boot(); err != nil {
		log.Printf("kernel bring-up error, %v", err)
	}

	log.Printf("kernel RAM arena %#.8x-%#.8x", p.RAM.Base, p.RAM.Base+uint64(p.RAM.Size))

	// yield back to secure monitor
	log.Printf("kernel is about to yield back")
	exit()

	// this should be unreachable
	log.Printf("kernel says goodbye")
}
