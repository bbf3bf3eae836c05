/*
   Copyright (C) 2011  Statoil ASA, Norway.

   The file 'keyword.go' is part of ERT - Ensemble based Reservoir Tool.

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

// Package keyword reads the sequential keyword records used by the
// ECLIPSE reservoir simulator file family. A file in this family is an
// ordered sequence of records, where each record is a named, typed,
// fixed-size array; the same name can occur several times, and the
// occurrence number is significant (for instance one GRIDHEAD record
// per grid in an EGRID file).
package keyword

import (
	"fmt"
	"io"
	"strings"
)

// Type enumerates the element types a keyword record can carry.
type Type int

const (
	Int Type = iota // INTE
	Float           // REAL
	Double          // DOUB
	Char            // CHAR, 8-character strings
	Bool            // LOGI
	Message         // MESS, zero-size marker records
)

func (t Type) String() string {
	switch t {
	case Int:
		return "INTE"
	case Float:
		return "REAL"
	case Double:
		return "DOUB"
	case Char:
		return "CHAR"
	case Bool:
		return "LOGI"
	case Message:
		return "MESS"
	}
	return "????"
}

func typeFromString(s string) (Type, error) {
	switch s {
	case "INTE":
		return Int, nil
	case "REAL":
		return Float, nil
	case "DOUB":
		return Double, nil
	case "CHAR":
		return Char, nil
	case "LOGI":
		return Bool, nil
	case "MESS":
		return Message, nil
	}
	return 0, fmt.Errorf("keyword: unknown element type %q", s)
}

// A Keyword is one named, typed record. The element storage depends on
// the type: Int and Bool keywords store ints, Float and Double keywords
// store float64, Char keywords store strings.
type Keyword struct {
	Name string
	typ  Type

	ints   []int
	floats []float64
	chars  []string
}

// NewInt creates an INTE keyword wrapping data.
func NewInt(name string, data []int) *Keyword {
	return &Keyword{Name: name, typ: Int, ints: data}
}

// NewFloat creates a REAL keyword wrapping data.
func NewFloat(name string, data []float64) *Keyword {
	return &Keyword{Name: name, typ: Float, floats: data}
}

// NewDouble creates a DOUB keyword wrapping data.
func NewDouble(name string, data []float64) *Keyword {
	return &Keyword{Name: name, typ: Double, floats: data}
}

// NewChar creates a CHAR keyword wrapping data.
func NewChar(name string, data []string) *Keyword {
	return &Keyword{Name: name, typ: Char, chars: data}
}

// Type returns the element type of the keyword.
func (kw *Keyword) Type() Type { return kw.typ }

// Size returns the number of elements in the keyword.
func (kw *Keyword) Size() int {
	switch kw.typ {
	case Int, Bool:
		return len(kw.ints)
	case Float, Double:
		return len(kw.floats)
	case Char:
		return len(kw.chars)
	}
	return 0
}

// Numeric reports whether the keyword elements can be converted to
// float64 without loss of meaning.
func (kw *Keyword) Numeric() bool {
	return kw.typ == Int || kw.typ == Float || kw.typ == Double
}

// IntAt returns element i of an INTE keyword.
func (kw *Keyword) IntAt(i int) int { return kw.ints[i] }

// FloatAt returns element i of a numeric keyword as a float64.
// It panics for non-numeric keywords.
func (kw *Keyword) FloatAt(i int) float64 {
	switch kw.typ {
	case Float, Double:
		return kw.floats[i]
	case Int:
		return float64(kw.ints[i])
	}
	panic(fmt.Sprintf("keyword: %s keyword %s has no numeric elements", kw.typ, kw.Name))
}

// StringAt returns element i of a CHAR keyword with the surrounding
// whitespace padding stripped.
func (kw *Keyword) StringAt(i int) string { return strings.TrimSpace(kw.chars[i]) }

// Ints returns the backing int slice of an INTE or LOGI keyword.
func (kw *Keyword) Ints() []int { return kw.ints }

// Floats returns the backing float64 slice of a REAL or DOUB keyword.
func (kw *Keyword) Floats() []float64 { return kw.floats }

// File is the ordered collection of keyword records read from one
// container file. Records are addressed by name and occurrence number.
type File struct {
	kws   []*Keyword
	index map[string][]int
}

// NewFile returns an empty record collection.
func NewFile() *File {
	return &File{index: make(map[string][]int)}
}

// Append adds kw as the next record in the file.
func (f *File) Append(kw *Keyword) {
	f.index[kw.Name] = append(f.index[kw.Name], len(f.kws))
	f.kws = append(f.kws, kw)
}

// Len returns the total number of records in the file.
func (f *File) Len() int { return len(f.kws) }

// Num returns the number of occurrences of the named keyword.
func (f *File) Num(name string) int { return len(f.index[name]) }

// Has reports whether at least one record with the given name exists.
func (f *File) Has(name string) bool { return len(f.index[name]) > 0 }

// Named returns occurrence number occ (zero offset) of the named
// keyword.
func (f *File) Named(name string, occ int) (*Keyword, error) {
	occs := f.index[name]
	if occ < 0 || occ >= len(occs) {
		return nil, fmt.Errorf("keyword: file has %d occurrences of %s - occurrence %d requested", len(occs), name, occ)
	}
	return f.kws[occs[occ]], nil
}

// At returns record number i in file order.
func (f *File) At(i int) *Keyword { return f.kws[i] }

// WriteGRDECL writes the keyword in the whitespace-separated GRDECL
// text format: the keyword name on its own line, the elements wrapped
// at a fixed column count, and a terminating slash.
func (kw *Keyword) WriteGRDECL(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s\n", kw.Name); err != nil {
		return err
	}
	const perLine = 6
	n := kw.Size()
	for i := 0; i < n; i++ {
		var err error
		switch kw.typ {
		case Int, Bool:
			_, err = fmt.Fprintf(w, " %12d", kw.ints[i])
		case Float, Double:
			_, err = fmt.Fprintf(w, " %14.7g", kw.floats[i])
		case Char:
			_, err = fmt.Fprintf(w, " '%-8s'", kw.chars[i])
		}
		if err != nil {
			return err
		}
		if (i+1)%perLine == 0 || i == n-1 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, "/")
	return err
}
