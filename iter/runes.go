// © 2026 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package iter

import (
	"bufio"
	"context"
	"io"
	"unicode/utf8"

	"gopkg.microglot.org/types.go/optional"
)

// NewRunes converts a reader into an iterator of runes. Invalid UTF-8
// sequences are yielded as utf8.RuneError, one per byte. Close closes the
// reader when it implements io.Closer and reports any scan error.
func NewRunes(r io.Reader) Iterator[rune] {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanRunes)
	closer, _ := r.(io.Closer)
	return &runes{scanner: scanner, closer: closer}
}

type runes struct {
	scanner *bufio.Scanner
	closer  io.Closer
}

func (it *runes) Next(ctx context.Context) optional.Optional[rune] {
	if !it.scanner.Scan() {
		return optional.None[rune]()
	}
	r, _ := utf8.DecodeRune(it.scanner.Bytes())
	return optional.Some(r)
}

func (it *runes) Close(ctx context.Context) error {
	if it.closer != nil {
		_ = it.closer.Close()
	}
	return it.scanner.Err()
}
