/*
   Copyright (C) 2011  Statoil ASA, Norway.

   The file 'unformatted.go' is part of ERT - Ensemble based Reservoir Tool.

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
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"
)

// The unformatted files are written by Fortran sequential unformatted
// I/O: every record is bracketed by a 4-byte big-endian byte count.
// Each keyword starts with a 16-byte header record (8-byte name,
// 4-byte element count, 4-byte type mnemonic), followed by the element
// data split into blocks of at most blockSize elements, each block a
// separate Fortran record.
const (
	blockSize     = 1000 // elements per data record for numeric types
	charBlockSize = 105  // elements per data record for CHAR
	charWidth     = 8
	boolTrue      = -1 // Fortran .true. as stored by ECLIPSE
)

type recordReader struct {
	r io.Reader
}

// next reads one Fortran record and verifies the trailing length
// marker. It returns io.EOF cleanly at end of input.
func (rr *recordReader) next() ([]byte, error) {
	var head int32
	if err := binary.Read(rr.r, binary.BigEndian, &head); err != nil {
		return nil, err
	}
	if head < 0 {
		return nil, fmt.Errorf("keyword: negative record length %d", head)
	}
	buf := make([]byte, head)
	if _, err := io.ReadFull(rr.r, buf); err != nil {
		return nil, fmt.Errorf("keyword: truncated record of length %d: %v", head, err)
	}
	var tail int32
	if err := binary.Read(rr.r, binary.BigEndian, &tail); err != nil {
		return nil, fmt.Errorf("keyword: missing trailing record marker: %v", err)
	}
	if tail != head {
		return nil, fmt.Errorf("keyword: record marker mismatch: %d != %d", head, tail)
	}
	return buf, nil
}

func elementSize(t Type) int {
	switch t {
	case Int, Float, Bool:
		return 4
	case Double, Char:
		return 8
	}
	return 0
}

// ReadUnformatted reads all keyword records from a binary unformatted
// file.
func ReadUnformatted(r io.Reader) (*File, error) {
	rr := &recordReader{r: r}
	f := NewFile()
	for {
		kw, err := readUnformattedKeyword(rr)
		if err == io.EOF {
			return f, nil
		}
		if err != nil {
			return nil, err
		}
		f.Append(kw)
	}
}

func readUnformattedKeyword(rr *recordReader) (*Keyword, error) {
	header, err := rr.next()
	if err != nil {
		return nil, err
	}
	if len(header) != 16 {
		return nil, fmt.Errorf("keyword: header record has %d bytes - expected 16", len(header))
	}
	name := strings.TrimSpace(string(header[0:8]))
	count := int(int32(binary.BigEndian.Uint32(header[8:12])))
	typ, err := typeFromString(string(header[12:16]))
	if err != nil {
		return nil, fmt.Errorf("keyword: reading %s: %v", name, err)
	}
	if count < 0 {
		return nil, fmt.Errorf("keyword: %s has negative element count %d", name, count)
	}

	kw := &Keyword{Name: name, typ: typ}
	switch typ {
	case Int, Bool:
		kw.ints = make([]int, 0, count)
	case Float, Double:
		kw.floats = make([]float64, 0, count)
	case Char:
		kw.chars = make([]string, 0, count)
	case Message:
		return kw, nil
	}

	block := blockSize
	if typ == Char {
		block = charBlockSize
	}
	esize := elementSize(typ)
	for read := 0; read < count; {
		want := count - read
		if want > block {
			want = block
		}
		data, err := rr.next()
		if err != nil {
			return nil, fmt.Errorf("keyword: reading data for %s: %v", name, err)
		}
		if len(data) != want*esize {
			return nil, fmt.Errorf("keyword: %s data record has %d bytes - expected %d", name, len(data), want*esize)
		}
		for i := 0; i < want; i++ {
			switch typ {
			case Int:
				kw.ints = append(kw.ints, int(int32(binary.BigEndian.Uint32(data[4*i:]))))
			case Bool:
				v := int32(binary.BigEndian.Uint32(data[4*i:]))
				if v == boolTrue {
					kw.ints = append(kw.ints, 1)
				} else {
					kw.ints = append(kw.ints, 0)
				}
			case Float:
				bits := binary.BigEndian.Uint32(data[4*i:])
				kw.floats = append(kw.floats, float64(math.Float32frombits(bits)))
			case Double:
				bits := binary.BigEndian.Uint64(data[8*i:])
				kw.floats = append(kw.floats, math.Float64frombits(bits))
			case Char:
				kw.chars = append(kw.chars, string(data[charWidth*i:charWidth*(i+1)]))
			}
		}
		read += want
	}
	return kw, nil
}

// WriteUnformatted writes every record of f in the binary unformatted
// layout read by ReadUnformatted.
func WriteUnformatted(w io.Writer, f *File) error {
	for i := 0; i < f.Len(); i++ {
		if err := writeUnformattedKeyword(w, f.At(i)); err != nil {
			return err
		}
	}
	return nil
}

func writeRecord(w io.Writer, payload []byte) error {
	head := int32(len(payload))
	if err := binary.Write(w, binary.BigEndian, head); err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}
	return binary.Write(w, binary.BigEndian, head)
}

func writeUnformattedKeyword(w io.Writer, kw *Keyword) error {
	header := make([]byte, 16)
	copy(header, fmt.Sprintf("%-8s", kw.Name))
	binary.BigEndian.PutUint32(header[8:12], uint32(int32(kw.Size())))
	copy(header[12:16], kw.typ.String())
	if err := writeRecord(w, header); err != nil {
		return err
	}

	block := blockSize
	if kw.typ == Char {
		block = charBlockSize
	}
	esize := elementSize(kw.typ)
	n := kw.Size()
	for written := 0; written < n; {
		want := n - written
		if want > block {
			want = block
		}
		payload := make([]byte, want*esize)
		for i := 0; i < want; i++ {
			switch kw.typ {
			case Int:
				binary.BigEndian.PutUint32(payload[4*i:], uint32(int32(kw.ints[written+i])))
			case Bool:
				v := int32(0)
				if kw.ints[written+i] != 0 {
					v = boolTrue
				}
				binary.BigEndian.PutUint32(payload[4*i:], uint32(v))
			case Float:
				binary.BigEndian.PutUint32(payload[4*i:], math.Float32bits(float32(kw.floats[written+i])))
			case Double:
				binary.BigEndian.PutUint64(payload[8*i:], math.Float64bits(kw.floats[written+i]))
			case Char:
				copy(payload[charWidth*i:], fmt.Sprintf("%-8s", kw.chars[written+i]))
			}
		}
		if err := writeRecord(w, payload); err != nil {
			return err
		}
		written += want
	}
	return nil
}
