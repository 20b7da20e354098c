// SPDX-License-Identifier: MIT

package edgelist

import (
	"os"
	"path/filepath"

	"github.com/TheRadDani/graphlib/core"
)

// ReadFile parses the edge list at path into a new graph.
// The codec follows the file extension unless WithCompression is given.
func ReadFile(path string, opts ...Option) (*core.Graph, error) {
	cfg := newConfig(opts...)
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError("open", err)
	}
	defer f.Close()

	g := core.NewGraph(cfg.graphOpts...)
	if err = decodeInto(g, f, cfg.codec.resolve(path), cfg); err != nil {
		return nil, err
	}

	return g, nil
}

// Load adds the edges listed at path to g. Existing nodes and edges are kept.
//
// Behavior highlights:
//   - All-or-nothing: the file is parsed into a clone of g which replaces
//     g's contents only on success. On error g is unchanged.
//   - g keeps its own loop and multi-edge policy; WithGraphOptions is ignored.
//   - Mutations of g made by other goroutines while Load runs are discarded.
//
// Errors:
//   - ErrGraphNil, *ParseError, ErrIO (wrapped; errors.Is(err, fs.ErrNotExist)
//     holds for a missing file).
func Load(g *core.Graph, path string, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	cfg := newConfig(opts...)
	f, err := os.Open(path)
	if err != nil {
		return ioError("open", err)
	}
	defer f.Close()

	staged := g.Clone()
	if err = decodeInto(staged, f, cfg.codec.resolve(path), cfg); err != nil {
		return err
	}
	g.Replace(staged)

	return nil
}

// Save writes g to path, replacing any existing file.
//
// The edge list is written to a temporary file in the same directory, synced,
// and renamed over path, so a failed Save leaves the previous file intact.
// The codec follows the file extension unless WithCompression is given.
func Save(g *core.Graph, path string, opts ...Option) (err error) {
	if g == nil {
		return ErrGraphNil
	}
	cfg := newConfig(opts...)

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return ioError("create", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = encode(tmp, g, cfg.codec.resolve(path), cfg); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return ioError("chmod", err)
	}
	if err = tmp.Sync(); err != nil {
		return ioError("sync", err)
	}
	if err = tmp.Close(); err != nil {
		return ioError("close", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return ioError("rename", err)
	}

	return nil
}
