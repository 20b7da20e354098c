// SPDX-License-Identifier: MIT

package edgelist

import (
	"bufio"
	"io"
	"strconv"

	"github.com/TheRadDani/graphlib/core"
)

// Write serializes g to w: one "a b" line per undirected edge with a <= b,
// edges in ascending order, parallel edges repeated and loops written as "a a".
// With WithIsolated, nodes without neighbors follow as single-token lines.
// An explicit WithCompression codec is applied to w.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrIO (wrapped) if w fails.
func Write(w io.Writer, g *core.Graph, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	cfg := newConfig(opts...)

	return encode(w, g, cfg.codec.resolve(""), cfg)
}

// encode writes g through codec and closes the codec stream, not w.
func encode(w io.Writer, g *core.Graph, codec Codec, cfg config) error {
	cw, err := codec.compress(w)
	if err != nil {
		return ioError("open "+codec.String(), err)
	}

	if cfg.isolated {
		// Edges and isolated nodes must come from one state.
		g = g.Clone()
	}

	bw := bufio.NewWriterSize(cw, initialBuffer)
	buf := make([]byte, 0, 2*20+2)
	for _, e := range g.Edges() {
		buf = strconv.AppendUint(buf[:0], e.A, 10)
		buf = append(buf, ' ')
		buf = strconv.AppendUint(buf, e.B, 10)
		buf = append(buf, '\n')
		_, _ = bw.Write(buf) // errors are sticky; surfaced by Flush
	}
	if cfg.isolated {
		for _, id := range g.IsolatedNodes() {
			buf = strconv.AppendUint(buf[:0], id, 10)
			buf = append(buf, '\n')
			_, _ = bw.Write(buf)
		}
	}

	if err = bw.Flush(); err != nil {
		_ = cw.Close()
		return ioError("write", err)
	}
	if err = cw.Close(); err != nil {
		return ioError("close "+codec.String(), err)
	}

	return nil
}
