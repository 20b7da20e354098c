// SPDX-License-Identifier: MIT

// Package edgelist reads and writes core.Graph values as plain-text edge lists.
//
// Format:
//   - One undirected edge per line: two base-10 unsigned integers separated by
//     spaces or tabs ("1 2").
//   - Blank lines are ignored; lines whose first non-blank byte is '#' are comments.
//   - With WithIsolated, a single-token line declares an isolated node.
//   - A self-loop "a a" read into a graph without core.WithLoops is dropped and
//     counted in Report.Loops, or rejected under WithStrictLoops.
//   - Anything else (extra tokens, signs, non-digits, overflow) is a *ParseError
//     carrying the 1-based line number. Lines longer than 1 MiB fail with
//     ErrLineTooLong.
//
// Writing emits each undirected edge once as "a b" with a <= b, in ascending
// order, repeating parallel edges. Reading such output reproduces the edge set.
//
// Files may be compressed. The codec is chosen from the file extension
// (.gz, .zst, .lz4) or forced with WithCompression.
//
// Atomicity:
//   - Load parses into a clone and swaps it in only on success.
//   - Save writes a temporary file next to the destination and renames it.
package edgelist
