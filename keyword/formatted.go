/*
   Copyright (C) 2011  Statoil ASA, Norway.

   The file 'formatted.go' is part of ERT - Ensemble based Reservoir Tool.

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
	"io"
	"strconv"
	"strings"
)

// The formatted variant of the file family is plain text: each keyword
// starts with a header line
//
//	'KEYWORD '          24 'REAL'
//
// followed by whitespace-separated element values. Repeated values can
// be compressed as N*value, doubles use the Fortran 'D' exponent
// marker, logicals are T/F, and strings are quoted.

type tokenReader struct {
	s *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 4*1024*1024)
	s.Split(scanQuotedWords)
	return &tokenReader{s: s}
}

func (tr *tokenReader) next() (string, error) {
	if tr.s.Scan() {
		return tr.s.Text(), nil
	}
	if err := tr.s.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// scanQuotedWords behaves like bufio.ScanWords except that a token
// starting with a single quote extends to the closing quote, so that
// padded CHAR elements keep their internal spaces.
func scanQuotedWords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isSpace(data[start]) {
		start++
	}
	if start == len(data) {
		if atEOF {
			return len(data), nil, nil
		}
		return start, nil, nil
	}
	if data[start] == '\'' {
		for i := start + 1; i < len(data); i++ {
			if data[i] == '\'' {
				return i + 1, data[start : i+1], nil
			}
		}
		if atEOF {
			return len(data), nil, fmt.Errorf("keyword: unterminated quoted token")
		}
		return start, nil, nil
	}
	for i := start; i < len(data); i++ {
		if isSpace(data[i]) {
			return i, data[start:i], nil
		}
	}
	if atEOF {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func unquote(tok string) (string, bool) {
	if len(tok) >= 2 && tok[0] == '\'' && tok[len(tok)-1] == '\'' {
		return tok[1 : len(tok)-1], true
	}
	return tok, false
}

// ReadFormatted reads all keyword records from a formatted (text) file.
func ReadFormatted(r io.Reader) (*File, error) {
	tr := newTokenReader(r)
	f := NewFile()
	for {
		kw, err := readFormattedKeyword(tr)
		if err == io.EOF {
			return f, nil
		}
		if err != nil {
			return nil, err
		}
		f.Append(kw)
	}
}

func readFormattedKeyword(tr *tokenReader) (*Keyword, error) {
	tok, err := tr.next()
	if err != nil {
		return nil, err
	}
	name, quoted := unquote(tok)
	if !quoted {
		return nil, fmt.Errorf("keyword: expected quoted keyword name - got %q", tok)
	}
	name = strings.TrimSpace(name)

	tok, err = tr.next()
	if err != nil {
		return nil, fmt.Errorf("keyword: missing element count for %s", name)
	}
	count, err := strconv.Atoi(tok)
	if err != nil {
		return nil, fmt.Errorf("keyword: invalid element count %q for %s", tok, name)
	}

	tok, err = tr.next()
	if err != nil {
		return nil, fmt.Errorf("keyword: missing type for %s", name)
	}
	typeName, quoted := unquote(tok)
	if !quoted {
		return nil, fmt.Errorf("keyword: expected quoted type for %s - got %q", name, tok)
	}
	typ, err := typeFromString(strings.TrimSpace(typeName))
	if err != nil {
		return nil, err
	}

	kw := &Keyword{Name: name, typ: typ}
	for n := 0; n < count; {
		tok, err := tr.next()
		if err != nil {
			return nil, fmt.Errorf("keyword: %s has %d of %d elements: %v", name, n, count, err)
		}
		repeat := 1
		if star := strings.IndexByte(tok, '*'); star > 0 && typ != Char {
			r, err := strconv.Atoi(tok[:star])
			if err != nil {
				return nil, fmt.Errorf("keyword: bad repeat count in %q", tok)
			}
			repeat = r
			tok = tok[star+1:]
		}
		if n+repeat > count {
			return nil, fmt.Errorf("keyword: %s has more than %d elements", name, count)
		}
		if err := kw.appendFormatted(tok, repeat); err != nil {
			return nil, fmt.Errorf("keyword: %s: %v", name, err)
		}
		n += repeat
	}
	return kw, nil
}

func (kw *Keyword) appendFormatted(tok string, repeat int) error {
	switch kw.typ {
	case Int:
		v, err := strconv.Atoi(tok)
		if err != nil {
			return fmt.Errorf("invalid integer %q", tok)
		}
		for r := 0; r < repeat; r++ {
			kw.ints = append(kw.ints, v)
		}
	case Float, Double:
		// Fortran doubles use D as the exponent marker.
		v, err := strconv.ParseFloat(strings.Replace(tok, "D", "E", 1), 64)
		if err != nil {
			return fmt.Errorf("invalid number %q", tok)
		}
		for r := 0; r < repeat; r++ {
			kw.floats = append(kw.floats, v)
		}
	case Bool:
		var v int
		switch tok {
		case "T":
			v = 1
		case "F":
			v = 0
		default:
			return fmt.Errorf("invalid logical %q", tok)
		}
		for r := 0; r < repeat; r++ {
			kw.ints = append(kw.ints, v)
		}
	case Char:
		s, _ := unquote(tok)
		for r := 0; r < repeat; r++ {
			kw.chars = append(kw.chars, s)
		}
	case Message:
	}
	return nil
}
