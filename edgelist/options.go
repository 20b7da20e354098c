// SPDX-License-Identifier: MIT

package edgelist

import "github.com/TheRadDani/graphlib/core"

// maxReported caps Report.Errors; Skipped keeps counting past it.
const maxReported = 100

// Report summarizes a parse. Fill one by passing WithReport.
type Report struct {
	Lines    int // lines read, including blanks and comments
	Edges    int // edge lines applied
	Isolated int // single-token lines applied (WithIsolated)
	Loops    int // "a a" lines dropped because the graph rejects self-loops
	Comments int
	Skipped  int           // malformed lines skipped in lenient mode
	Errors   []*ParseError // first maxReported skipped lines
}

func (r *Report) skip(pe *ParseError) {
	r.Skipped++
	if len(r.Errors) < maxReported {
		r.Errors = append(r.Errors, pe)
	}
}

// Option configures Read, Write, Load and Save.
type Option func(*config)

type config struct {
	lenient   bool
	strict    bool
	isolated  bool
	report    *Report
	graphOpts []core.GraphOption
	codec     Codec
}

// WithLenient skips malformed lines instead of failing. Skipped lines are
// counted in the Report given by WithReport. A line longer than 1 MiB still
// aborts the parse: the scanner cannot resume after it.
func WithLenient() Option {
	return func(c *config) { c.lenient = true }
}

// WithStrictLoops turns "a a" lines read into a graph without core.WithLoops
// into *ParseError (wrapping core.ErrLoopNotAllowed). By default such lines are
// dropped and counted in Report.Loops, as edge-list tools that emit loops expect.
func WithStrictLoops() Option {
	return func(c *config) { c.strict = true }
}

// WithReport fills r with parse statistics. Panics on nil.
func WithReport(r *Report) Option {
	if r == nil {
		panic("edgelist: WithReport(nil)")
	}
	return func(c *config) { c.report = r }
}

// WithIsolated writes isolated nodes as single-token lines and accepts such
// lines on read. Without it isolated nodes are dropped on write and
// single-token lines are errors on read.
func WithIsolated() Option {
	return func(c *config) { c.isolated = true }
}

// WithGraphOptions configures the graph created by Read and ReadFile.
// Load ignores it: the target graph keeps its own policy.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(c *config) { c.graphOpts = append(c.graphOpts, opts...) }
}

// WithCompression forces a codec instead of choosing one by file extension.
func WithCompression(codec Codec) Option {
	return func(c *config) { c.codec = codec }
}

func newConfig(opts ...Option) config {
	c := config{codec: CodecAuto}
	for _, opt := range opts {
		opt(&c)
	}
	if c.report == nil {
		c.report = &Report{}
	}

	return c
}
