// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package smc

import (
	"runtime"
	"testing"
)

type call struct {
	fn         uint32
	a0, a1, a2 uint64
}

type mockCaller struct {
	calls []call
	ret   map[uint64]uint64
}

func (m *mockCaller) Call(fn uint32, a0, a1, a2 uint64) uint64 {
	m.calls = append(m.calls, call{fn, a0, a1, a2})
	return m.ret[a0]
}

func TestRegBaseWidth(t *testing.T) {
	m := &mockCaller{ret: map[uint64]uint64{RegGICC: 0x50041000}}

	if got := RegBase(m, RegGICC); got != 0x50041000 {
		t.Errorf("RegBase returned %#x, expected 0x50041000", got)
	}

	expected := FuncGetRegBase64

	if runtime.GOARCH == "arm" {
		expected = FuncGetRegBase
	}

	if fn := m.calls[0].fn; fn != expected {
		t.Errorf("RegBase issued function id %#x, expected %#x", fn, expected)
	}

	if a := m.calls[0]; a.a1 != 0 || a.a2 != 0 {
		t.Errorf("RegBase issued non-zero trailing arguments %#x %#x", a.a1, a.a2)
	}
}

func TestRegBaseNoCaching(t *testing.T) {
	m := &mockCaller{ret: map[uint64]uint64{RegGICD: 0x50051000}}

	for i := 0; i < 3; i++ {
		if got := RegBase(m, RegGICD); got != 0x50051000 {
			t.Errorf("RegBase returned %#x, expected 0x50051000", got)
		}
	}

	// every invocation must reach the monitor
	if len(m.calls) != 3 {
		t.Errorf("3 invocations issued %d calls", len(m.calls))
	}
}

func TestNamespaces(t *testing.T) {
	if FuncGetRegBase64 != FuncGetRegBase|fastCall64 {
		t.Errorf("SMC64 namespace does not mirror SMC32 (%#x vs %#x)", FuncGetRegBase64, FuncGetRegBase)
	}
}
