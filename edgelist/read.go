// SPDX-License-Identifier: MIT

package edgelist

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"math"

	"github.com/TheRadDani/graphlib/core"
)

const (
	initialBuffer = 64 << 10
	maxLineBytes  = 1 << 20
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Read parses an edge list from r into a new graph built with the options
// given by WithGraphOptions. An explicit WithCompression codec is applied to r;
// CodecAuto reads r as plain text.
//
// Errors:
//   - *ParseError for the first malformed line (unless WithLenient), or
//     ErrLineTooLong for a line over 1 MiB.
//   - ErrIO (wrapped) if r fails or the codec cannot be initialized.
func Read(r io.Reader, opts ...Option) (*core.Graph, error) {
	cfg := newConfig(opts...)
	g := core.NewGraph(cfg.graphOpts...)
	if err := decodeInto(g, r, cfg.codec.resolve(""), cfg); err != nil {
		return nil, err
	}

	return g, nil
}

// decodeInto decompresses r with codec and parses it into g.
func decodeInto(g *core.Graph, r io.Reader, codec Codec, cfg config) error {
	rc, err := codec.decompress(r)
	if err != nil {
		return ioError("open "+codec.String(), err)
	}
	defer rc.Close()

	return parse(g, rc, cfg)
}

// parse applies every line of r to g, stopping at the first error unless lenient.
func parse(g *core.Graph, r io.Reader, cfg config) error {
	rep := cfg.report
	*rep = Report{}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initialBuffer), maxLineBytes)

	var toks [3][]byte
	for sc.Scan() {
		rep.Lines++
		line := sc.Bytes()
		if rep.Lines == 1 {
			line = bytes.TrimPrefix(line, utf8BOM)
		}

		n := splitFields(line, &toks)
		if n == 0 {
			continue
		}
		if toks[0][0] == '#' {
			rep.Comments++
			continue
		}

		if err := applyLine(g, &toks, n, cfg); err != nil {
			pe := newParseError(rep.Lines, line, err)
			if !cfg.lenient {
				return pe
			}
			rep.skip(pe)
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			// Not recoverable even when lenient: the scanner stops here.
			return newParseError(rep.Lines+1, nil, ErrLineTooLong)
		}
		return ioError("read", err)
	}

	return nil
}

// applyLine inserts the edge or isolated node described by the first n tokens.
func applyLine(g *core.Graph, toks *[3][]byte, n int, cfg config) error {
	switch {
	case n == 2:
		a, err := parseID(toks[0])
		if err != nil {
			return err
		}
		b, err := parseID(toks[1])
		if err != nil {
			return err
		}
		if a == b && !cfg.strict && !g.Looped() {
			cfg.report.Loops++
			return nil
		}
		if err = g.AddEdge(a, b); err != nil {
			return err
		}
		cfg.report.Edges++
	case n == 1 && cfg.isolated:
		id, err := parseID(toks[0])
		if err != nil {
			return err
		}
		if err = g.AddNode(id); err != nil {
			return err
		}
		cfg.report.Isolated++
	default:
		return ErrTokenCount
	}

	return nil
}

// splitFields stores up to len(dst) blank-separated tokens of line in dst and
// returns the total token count, which may exceed len(dst).
func splitFields(line []byte, dst *[3][]byte) int {
	n := 0
	for i := 0; i < len(line); {
		for i < len(line) && isBlank(line[i]) {
			i++
		}
		if i == len(line) {
			break
		}
		j := i
		for j < len(line) && !isBlank(line[j]) {
			j++
		}
		if n < len(dst) {
			dst[n] = line[i:j]
		}
		n++
		i = j
	}

	return n
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f'
}

// parseID decodes a non-empty run of ASCII digits as a uint64.
func parseID(tok []byte) (uint64, error) {
	var v uint64
	for _, c := range tok {
		if c < '0' || c > '9' {
			return 0, ErrBadID
		}
		d := uint64(c - '0')
		if v > (math.MaxUint64-d)/10 {
			return 0, ErrBadID
		}
		v = v*10 + d
	}

	return v, nil
}
