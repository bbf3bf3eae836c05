/*
   Copyright (C) 2011  Statoil ASA, Norway.

   The file 'config.go' is part of ERT - Ensemble based Reservoir Tool.

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
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ConfigData holds the configuration for the ert command line tool.
type ConfigData struct {
	// GridFile is the default ECLIPSE case or grid file used when a
	// command is invoked without one. The path can include
	// environment variables.
	GridFile string

	// FillValue is written into the entries of inactive cells when
	// exporting solution vectors which only cover active cells.
	FillValue float64

	// DisableTaint turns off the heuristic which flags cells with
	// collapsed geometry; use it for synthetic grids placed at the
	// map origin.
	DisableTaint bool

	// LogFile is the path the log is written to; the log goes to
	// standard error when the path is empty. The path can include
	// environment variables.
	LogFile string

	// LogLevel sets the log verbosity: debug, info, warning or
	// error.
	LogLevel string
}

// ReadConfigFile reads and parses a TOML configuration file. A
// missing file is not an error; the zero configuration is returned
// instead, so the tool works without any configuration present.
func ReadConfigFile(filename string) (*ConfigData, error) {
	config := &ConfigData{
		FillValue: 0,
		LogLevel:  "info",
	}

	data, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("problem reading configuration file: %v", err)
	}
	if _, err := toml.Decode(string(data), config); err != nil {
		return nil, fmt.Errorf("there has been an error parsing the configuration file: %v", err)
	}

	config.GridFile = os.ExpandEnv(config.GridFile)
	config.LogFile = os.ExpandEnv(config.LogFile)
	return config, nil
}
