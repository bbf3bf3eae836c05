/*
   Copyright (C) 2011  Statoil ASA, Norway.

   The file 'cmd.go' is part of ERT - Ensemble based Reservoir Tool.

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

// Package ertutil holds the command line interface of the ert grid
// inspection tool.
package ertutil

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/myrseth/ert"
	"github.com/myrseth/ert/keyword"
)

var (
	configFile string

	// Config holds the global configuration data.
	Config *ConfigData

	log = logrus.New()
)

// RootCmd is the main command.
var RootCmd = &cobra.Command{
	Use:   "ert",
	Short: "Inspect ECLIPSE reservoir grid files.",
	Long: `ert loads ECLIPSE corner point grids from EGRID and GRID files,
including any local grid refinements, and answers index, geometry and
property queries against them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return Startup(configFile)
	},
}

// Startup reads the configuration file and configures the logger.
func Startup(configFile string) error {
	var err error
	Config, err = ReadConfigFile(configFile)
	if err != nil {
		return err
	}

	level, err := logrus.ParseLevel(Config.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %v", Config.LogLevel, err)
	}
	log.SetLevel(level)
	if Config.LogFile != "" {
		f, err := os.OpenFile(Config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("problem opening log file: %v", err)
		}
		log.SetOutput(f)
	}
	return nil
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "./ert.toml", "configuration file location")
	RootCmd.AddCommand(versionCmd)
	RootCmd.AddCommand(summaryCmd)
	RootCmd.AddCommand(lgrsCmd)
	RootCmd.AddCommand(locateCmd)
	RootCmd.AddCommand(exportCmd)

	exportCmd.Flags().Float64Var(&exportFill, "fill", 0, "value written for inactive cells; overrides FillValue from the configuration")
	locateCmd.Flags().IntVar(&locateHint, "hint", -1, "global index of a cell believed to be close to the point")
}

// caseArg resolves the grid file to operate on from the command line
// arguments, falling back to the configuration file.
func caseArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if Config.GridFile != "" {
		return Config.GridFile, nil
	}
	return "", fmt.Errorf("no case given on the command line and no GridFile in the configuration")
}

func loadCase(args []string) (*ert.Grid, error) {
	caseInput, err := caseArg(args)
	if err != nil {
		return nil, err
	}
	var opts []ert.Option
	if Config.DisableTaint {
		opts = append(opts, ert.WithTaintFunc(func(x, y, z float64) bool { return false }))
	}
	log.WithFields(logrus.Fields{"case": caseInput}).Info("loading grid")
	g, err := ert.LoadCase(caseInput, opts...)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"cells":       g.Size(),
		"active":      g.ActiveSize(),
		"refinements": g.LGRCount(),
	}).Info("grid loaded")
	return g, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ert",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ert v%s\n", ert.Version)
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary [case]",
	Short: "Summarize a grid and its refinements",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadCase(args)
		if err != nil {
			return err
		}
		fmt.Print(g.Summary())
		return nil
	},
}

var lgrsCmd = &cobra.Command{
	Use:   "lgrs [case]",
	Short: "List the local grid refinements of a grid",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadCase(args)
		if err != nil {
			return err
		}
		for _, name := range g.LGRNames() {
			lgr, err := g.LGR(name)
			if err != nil {
				return err
			}
			nx, ny, nz := lgr.Dims()
			fmt.Printf("%-10s %3dx%3dx%3d  host:%s\n", name, nx, ny, nz, lgr.Parent().Name())
		}
		return nil
	},
}

var locateHint int

var locateCmd = &cobra.Command{
	Use:   "locate case x y z",
	Short: "Find the cell containing a point",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadCase(args[:1])
		if err != nil {
			return err
		}
		var p [3]float64
		for n := 0; n < 3; n++ {
			if p[n], err = cast.ToFloat64E(args[n+1]); err != nil {
				return fmt.Errorf("invalid coordinate %q: %v", args[n+1], err)
			}
		}

		globalIndex := g.GlobalIndexFromXYZ(p[0], p[1], p[2], locateHint)
		if globalIndex < 0 {
			return fmt.Errorf("no cell contains (%g, %g, %g)", p[0], p[1], p[2])
		}
		i, j, k := g.IJK(globalIndex)
		fmt.Printf("cell:    (%d, %d, %d)\n", i, j, k)
		fmt.Printf("global:  %d\n", globalIndex)
		fmt.Printf("active:  %d\n", g.ActiveIndex(globalIndex))
		fmt.Printf("volume:  %g\n", g.CellVolume(globalIndex))
		return nil
	},
}

var exportFill float64

var exportCmd = &cobra.Command{
	Use:   "export case propertyfile keyword",
	Short: "Export a grid property to GRDECL text",
	Long: `export reads a keyword from an ECLIPSE result file, for example PORO
from an INIT file or PRESSURE from a restart file, and writes it to
standard output in GRDECL text form. Solution vectors covering only
the active cells are scattered onto the full grid first.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadCase(args[:1])
		if err != nil {
			return err
		}
		f, err := keyword.Load(args[1])
		if err != nil {
			return err
		}
		kw, err := f.Named(args[2], 0)
		if err != nil {
			return err
		}

		fill := Config.FillValue
		if cmd.Flags().Changed("fill") {
			fill = exportFill
		}
		return g.ExportGRDECL(kw, os.Stdout, fill)
	},
}
