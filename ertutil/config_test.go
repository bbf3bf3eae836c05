/*
   Copyright (C) 2011  Statoil ASA, Norway.

   The file 'config_test.go' is part of ERT - Ensemble based Reservoir Tool.

   ERT is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   ERT is distributed in the hope that it will be useful, but WITHOUT ANY
   WARRANTY; without even the implied warranty of MERCHANTABILITY or
   FITNESS FOR A PARTICULAR PURPOSE.

   See the GNU General Public License at <http://www.gnu.org/licenses/gpl.html>
   for more details.
*/

package ertutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ert.toml")
	const text = `
GridFile = "${ERT_TEST_DIR}/NORNE.EGRID"
FillValue = -999.0
DisableTaint = true
LogLevel = "debug"
`
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	os.Setenv("ERT_TEST_DIR", "/data/cases")
	defer os.Unsetenv("ERT_TEST_DIR")

	config, err := ReadConfigFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.GridFile != "/data/cases/NORNE.EGRID" {
		t.Errorf("GridFile = %q, environment not expanded", config.GridFile)
	}
	if config.FillValue != -999 {
		t.Errorf("FillValue = %g, want -999", config.FillValue)
	}
	if !config.DisableTaint {
		t.Error("DisableTaint = false, want true")
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", config.LogLevel)
	}
}

func TestReadConfigFileMissing(t *testing.T) {
	config, err := ReadConfigFile(filepath.Join(t.TempDir(), "nosuch.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if config.LogLevel != "info" {
		t.Errorf("default LogLevel = %q, want info", config.LogLevel)
	}
}

func TestReadConfigFileBroken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ert.toml")
	if err := os.WriteFile(path, []byte("GridFile = ["), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadConfigFile(path); err == nil {
		t.Error("expected error for broken configuration")
	}
}
