// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// The tegra security monitor hosts the platform kernel as Normal World OS,
// loading it in DRAM and answering its register discovery monitor calls.
//
// When running on an i.MX6UL development board an SSH console is exposed over
// USB Ethernet for interactive control, under emulation the kernel is booted
// right away.
package main

import (
	_ "embed"
	"fmt"
	"log"
	"os"
	"runtime"
	"sync"
	_ "unsafe"

	usbarmory "github.com/usbarmory/tamago/board/usbarmory/mk2"
	"github.com/usbarmory/tamago/dma"
	"github.com/usbarmory/tamago/soc/nxp/imx6ul"

	"github.com/usbarmory/imx-usbnet"

	"golang.org/x/term"

	"github.com/usbarmory/GoTEE-tegra/mem"
	"github.com/usbarmory/GoTEE-tegra/trusted_os_tegra/cmd"
	sm "github.com/usbarmory/GoTEE-tegra/trusted_os_tegra/internal"
	"github.com/usbarmory/GoTEE-tegra/util"
)

const (
	sshPort = 22
	IP      = "10.0.0.1"
	MAC     = "1a:55:89:a2:69:41"
	hostMAC = "1a:55:89:a2:69:42"
)

//go:linkname ramStart runtime.ramStart
var ramStart uint32 = mem.SecureStart

//go:linkname ramSize runtime.ramSize
var ramSize uint32 = mem.SecureSize

//go:embed assets/platform_os.elf
var osELF []byte

func init() {
	log.SetFlags(log.Ltime)
	log.SetOutput(os.Stdout)

	// Move DMA region to prevent NonSecure access.
	dma.Init(mem.SecureDMAStart, mem.SecureDMASize)

	// Reserve the DRAM carveout the platform kernel is hosted in.
	mem.Init()

	sm.OS = osELF

	log.Printf("%s/%s (%s) • platform security monitor (Secure World system/monitor)", runtime.GOOS, runtime.GOARCH, runtime.Version())
}

func boot() (err error) {
	var wg sync.WaitGroup

	os, err := sm.LoadKernel()

	if err != nil {
		return
	}

	wg.Add(1)
	go sm.Run(os, &wg)

	log.Printf("SM waiting for kernel")
	wg.Wait()

	return
}

func console(term *term.Terminal, line string) (err error) {
	return cmd.Handle(term, line)
}

func main() {
	defer log.Printf("SM says goodbye")

	if !imx6ul.Native {
		if err := boot(); err != nil {
			log.Fatal(err)
		}

		return
	}

	iface, err := usbnet.Init(IP, MAC, hostMAC, 1)

	if err != nil {
		log.Fatalf("SM could not initialize USB networking, %v", err)
	}

	iface.EnableICMP()

	listener, err := iface.ListenerTCP4(sshPort)

	if err != nil {
		log.Fatalf("SM could not initialize SSH listener, %v", err)
	}

	sm.Console = &util.Console{
		Banner:   fmt.Sprintf("%s/%s (%s) • platform security monitor (Secure World system/monitor)", runtime.GOOS, runtime.GOARCH, runtime.Version()),
		Help:     "type `help` for a list of commands",
		Handler:  console,
		Listener: listener,
	}

	if err = sm.Console.Start(); err != nil {
		log.Fatalf("SM could not initialize SSH server, %v", err)
	}

	usbarmory.USB1.Init()
	usbarmory.USB1.DeviceMode()
	usbarmory.USB1.Reset()

	// never returns
	usbarmory.USB1.Start(iface.NIC.Device)
}
