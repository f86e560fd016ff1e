// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package util

import (
	"bytes"
	"debug/elf"
	"debug/gosym"
	"errors"
	"fmt"
)

// debugTarget is the ELF image symbol lookups and stack trace resolution
// operate on (see SetDebugTarget).
var debugTarget []byte

// SetDebugTarget sets the hosted kernel image used for post-mortem symbol
// resolution.
func SetDebugTarget(buf []byte) {
	debugTarget = buf
}

// LookupSym resolves a symbol from the debug target image.
func LookupSym(name string) (*elf.Symbol, error) {
	if len(debugTarget) == 0 {
		return nil, errors.New("no debug target")
	}

	exe, err := elf.NewFile(bytes.NewReader(debugTarget))

	if err != nil {
		return nil, err
	}

	syms, err := exe.Symbols()

	if err != nil {
		return nil, err
	}

	for _, sym := range syms {
		if sym.Name == name {
			return &sym, nil
		}
	}

	return nil, errors.New("symbol not found")
}

func goSymTable() (symTable *gosym.Table, err error) {
	exe, err := elf.NewFile(bytes.NewReader(debugTarget))

	if err != nil {
		return
	}

	addr := exe.Section(".text").Addr

	lineTableData, err := exe.Section(".gopclntab").Data()

	if err != nil {
		return
	}

	lineTable := gosym.NewLineTable(lineTableData, addr)

	symTableData, err := exe.Section(".gosymtab").Data()

	if err != nil {
		return
	}

	return gosym.NewTable(symTableData, lineTable)
}

// PCToLine resolves a program counter within the debug target to its source
// file and line.
func PCToLine(pc uint64) (s string, err error) {
	if len(debugTarget) == 0 {
		return "", errors.New("no debug target")
	}

	symTable, err := goSymTable()

	if err != nil {
		return
	}

	file, line, _ := symTable.PCToLine(pc)

	return fmt.Sprintf("%s:%d", file, line), nil
}
