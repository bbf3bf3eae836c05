/*
   Copyright (C) 2011  Statoil ASA, Norway.

   The file 'load.go' is part of ERT - Ensemble based Reservoir Tool.

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

package keyword

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Formatted reports whether the file name denotes a formatted (text)
// member of the ECLIPSE file family. The convention is that formatted
// extensions carry an F prefix, as in .FEGRID and .FGRID.
func Formatted(path string) bool {
	ext := strings.ToUpper(filepath.Ext(path))
	return strings.HasPrefix(ext, ".F")
}

// Load reads every keyword record from the file at path, choosing the
// formatted or unformatted reader from the file name.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("keyword: %v", err)
	}
	defer fh.Close()

	r := bufio.NewReaderSize(fh, 1<<20)
	if Formatted(path) {
		return ReadFormatted(r)
	}
	return ReadUnformatted(r)
}
