// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package platform

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/usbarmory/GoTEE-tegra/smc"
)

// harness substitutes all hardware collaborators, recording their
// invocations in a single ordered event log.
type harness struct {
	events []string

	arenas   []Arena
	arenaErr error

	maps    []mapCall
	mapFail map[string]error

	regs map[uint64]uint64
}

type mapCall struct {
	name string
	virt uint64
	phys uint64
	size int
}

func (h *harness) record(format string, args ...interface{}) {
	h.events = append(h.events, fmt.Sprintf(format, args...))
}

func (h *harness) index(event string) int {
	for i, e := range h.events {
		if e == event {
			return i
		}
	}

	return -1
}

func (h *harness) AddArena(a *Arena) error {
	h.record("arena:%s", a.Name)

	if h.arenaErr != nil {
		return h.arenaErr
	}

	h.arenas = append(h.arenas, *a)

	return nil
}

func (h *harness) MapDevice(name string, virt uint64, phys uint64, size int) error {
	h.record("map:%s", name)
	h.maps = append(h.maps, mapCall{name, virt, phys, size})

	return h.mapFail[name]
}

func (h *harness) Call(fn uint32, a0, a1, a2 uint64) uint64 {
	h.record("smc:%d", a0)
	return h.regs[a0]
}

func (h *harness) Init() {
	h.record("gic:init")
}

type harnessTimer struct {
	h *harness
}

func (t *harnessTimer) Init(irq int, flags int) {
	t.h.record("timer:%d:%d", irq, flags)
}

type harnessDebug struct {
	h *harness
}

func (d *harnessDebug) InitPort(id int) {
	d.h.record("debug:%d", id)
}

func testPlatform(h *harness) *Platform {
	if h.regs == nil {
		h.regs = map[uint64]uint64{
			smc.RegGICC: 0x50041000,
			smc.RegGICD: 0x50051000,
		}
	}

	return &Platform{
		Mappings: []InitialMapping{
			{Phys: 0x80000000, Virt: 0x80000000, Size: 0x40000000, Flags: MappingDynamic, Name: "ram"},
			{Phys: 0x70006000, Virt: 0x70006000, Size: 0x40, Flags: MappingDevice, Name: "uart"},
			{},
		},
		RAM:            Arena{Name: "ram", Base: 0x0, Size: 0x08000000},
		DebugPort:      0,
		UARTBase:       0x70006000,
		GICCBase:       0x50042000,
		GICDBase:       0x50041000,
		GICCSize:       0x2000,
		GICDSize:       0x1000,
		TimerInterrupt: 27,

		Memory:  h,
		Space:   h,
		Monitor: h,
		GIC:     h,
		Timer:   &harnessTimer{h},
		Debug:   &harnessDebug{h},
	}
}

func TestResolveDynamicEntry(t *testing.T) {
	h := &harness{}
	p := testPlatform(h)

	if err := p.Boot(); err != nil {
		t.Fatal(err)
	}

	if p.RAM.Base != 0x80000000 || p.RAM.Size != 0x40000000 {
		t.Errorf("descriptor not updated from dynamic entry: %+v", p.RAM)
	}

	if p.RAM.Flags != ArenaKernelMap {
		t.Errorf("kernel-mapped flag not set: %#x", p.RAM.Flags)
	}

	if len(h.arenas) != 1 {
		t.Fatalf("arena registered %d times", len(h.arenas))
	}

	if a := h.arenas[0]; a != p.RAM {
		t.Errorf("registered arena %+v differs from descriptor %+v", a, p.RAM)
	}
}

func TestResolveDefaults(t *testing.T) {
	h := &harness{}
	p := testPlatform(h)

	// no entry matches the descriptor by name
	p.Mappings[0].Name = "sdram"

	if err := p.Boot(); err != nil {
		t.Fatal(err)
	}

	if p.RAM.Base != 0x0 || p.RAM.Size != 0x08000000 {
		t.Errorf("build-time defaults not retained: %+v", p.RAM)
	}

	if len(h.arenas) != 1 {
		t.Errorf("arena registered %d times", len(h.arenas))
	}
}

func TestResolveNoDynamicEntries(t *testing.T) {
	h := &harness{}
	p := testPlatform(h)

	p.Mappings[0].Flags = 0

	if err := p.Boot(); err != nil {
		t.Fatal(err)
	}

	if p.RAM.Base != 0x0 || p.RAM.Size != 0x08000000 {
		t.Errorf("build-time defaults not retained: %+v", p.RAM)
	}

	// registration happens regardless of resolution outcome
	if len(h.arenas) != 1 {
		t.Errorf("arena registered %d times", len(h.arenas))
	}
}

func TestArenaRegistrationFatal(t *testing.T) {
	h := &harness{arenaErr: errors.New("zero size")}
	p := testPlatform(h)

	defer func() {
		if recover() == nil {
			t.Error("arena registration failure did not halt the boot")
		}
	}()

	p.Boot()
}

func TestStageOrder(t *testing.T) {
	h := &harness{}
	p := testPlatform(h)

	if err := p.Boot(); err != nil {
		t.Fatal(err)
	}

	order := []string{
		"debug:0",
		"arena:ram",
		"map:uart",
		fmt.Sprintf("smc:%d", smc.RegGICC),
		fmt.Sprintf("smc:%d", smc.RegGICD),
		"map:gicc",
		"map:gicd",
		"gic:init",
		"timer:27:0",
	}

	prev := -1

	for _, event := range order {
		i := h.index(event)

		if i < 0 {
			t.Fatalf("event %q missing (events: %v)", event, h.events)
		}

		if i < prev {
			t.Errorf("event %q out of order (events: %v)", event, h.events)
		}

		prev = i
	}
}

func TestStageLevels(t *testing.T) {
	p := testPlatform(&harness{})

	prev := -1

	for _, s := range p.Stages() {
		if s.Level < prev {
			t.Errorf("stage %q breaks the level total order", s.Name)
		}

		prev = s.Level
	}
}

func TestStagePolicies(t *testing.T) {
	p := testPlatform(&harness{})

	for _, s := range p.Stages() {
		fatal := s.Policy == Fatal

		if (s.Name == "ram") != fatal {
			t.Errorf("stage %q carries policy %v", s.Name, s.Policy)
		}
	}
}

func TestDeviceDiscovery(t *testing.T) {
	h := &harness{}
	p := testPlatform(h)

	if err := p.Boot(); err != nil {
		t.Fatal(err)
	}

	expected := []mapCall{
		{"uart", 0, 0x70006000, PageSize},
		{"gicc", 0x50042000, 0x50041000, 0x2000},
		{"gicd", 0x50041000, 0x50051000, 0x1000},
	}

	if len(h.maps) != len(expected) {
		t.Fatalf("%d device mappings requested, expected %d", len(h.maps), len(expected))
	}

	for i, m := range expected {
		if h.maps[i] != m {
			t.Errorf("mapping %d is %+v, expected %+v", i, h.maps[i], m)
		}
	}
}

func TestConsolePageAlignment(t *testing.T) {
	h := &harness{}
	p := testPlatform(h)

	p.UARTBase = 0x70006040

	if err := p.Boot(); err != nil {
		t.Fatal(err)
	}

	if m := h.maps[0]; m.phys != 0x70006000 || m.size != PageSize {
		t.Errorf("console mapping not page aligned: %+v", m)
	}
}

func TestDegradeAndContinue(t *testing.T) {
	h := &harness{mapFail: map[string]error{"gicc": errors.New("no free aspace")}}
	p := testPlatform(h)

	var buf bytes.Buffer

	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	if err := p.Boot(); err != nil {
		t.Fatal(err)
	}

	// the distributor mapping and driver initialization still run
	for _, event := range []string{"map:gicd", "gic:init", "timer:27:0"} {
		if h.index(event) < 0 {
			t.Errorf("event %q missing after gicc mapping failure", event)
		}
	}

	if !strings.Contains(buf.String(), "gicc") {
		t.Error("no diagnostic recorded for the gicc mapping failure")
	}
}

func TestBootOnce(t *testing.T) {
	h := &harness{}
	p := testPlatform(h)

	if err := p.Boot(); err != nil {
		t.Fatal(err)
	}

	n := len(h.events)

	if err := p.Boot(); err == nil {
		t.Error("re-entered boot sequence")
	}

	if len(h.events) != n {
		t.Errorf("second boot attempt ran stages: %v", h.events[n:])
	}
}
