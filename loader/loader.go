// SPDX-License-Identifier: MIT
//
// File: loader.go
// Role: Build a core.Graph from edge-list text or a YAML graph document.
// AI-HINT (file):
//   - Edge-list lines follow core.ParseEdgeEntry; a malformed line is counted
//     in Stats.Skipped and never aborts the load.
//   - Adjacency listings are NOT symmetrized: "a: [b]" and "b: [a]" together
//     give two parallel a—b edges.

package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mincut/core"
)

// Sentinel errors.
var (
	// ErrNilReader indicates a nil io.Reader.
	ErrNilReader = fmt.Errorf("%w: loader: reader is nil", core.ErrInvalidArgument)

	// ErrBadDocument indicates a YAML document that could not be decoded or
	// holds an entry that is not an edge.
	ErrBadDocument = errors.New("loader: malformed graph document")
)

// commentPrefix starts a comment line in edge-list text.
const commentPrefix = "#"

// Stats describes one edge-list load.
type Stats struct {
	// Lines is the number of lines read.
	Lines int
	// Edges is the number of edges added.
	Edges int
	// Skipped counts non-blank, non-comment lines that were not edges.
	Skipped int
}

// Document is the YAML graph format:
//
//	edges:
//	  - "a -- b"
//	  - "b -- c"
//	adjacency:
//	  a: [c, d]
type Document struct {
	Edges     []string            `yaml:"edges"`
	Adjacency map[string][]string `yaml:"adjacency"`
}

// ReadEdgeList reads one "A -- B" entry per line.
// Blank lines and lines starting with "#" are ignored.
func ReadEdgeList(r io.Reader) (*core.Graph, Stats, error) {
	var st Stats
	if r == nil {
		return nil, st, ErrNilReader
	}

	g := core.NewGraph()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		st.Lines++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		a, b, ok := core.ParseEdgeEntry(line)
		if !ok {
			st.Skipped++
			continue
		}
		if err := g.AddEdgeLabels(a, b); err != nil {
			st.Skipped++
			continue
		}
		st.Edges++
	}
	if err := sc.Err(); err != nil {
		return nil, st, fmt.Errorf("loader: read edge list: %w", err)
	}

	return g, st, nil
}

// ReadYAML decodes a Document from r and builds its graph. Edge entries are
// added first, then adjacency entries in sorted key order.
//
// Unlike the text format, a malformed edge entry is an error: a YAML document
// is structured input and a bad entry means a bad document.
func ReadYAML(r io.Reader) (*core.Graph, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrBadDocument, err)
	}

	return doc.Graph()
}

// Graph builds the graph described by d.
func (d Document) Graph() (*core.Graph, error) {
	g := core.NewGraph()
	for i, entry := range d.Edges {
		a, b, ok := core.ParseEdgeEntry(entry)
		if !ok {
			return nil, fmt.Errorf("%w: edges[%d] = %q", ErrBadDocument, i, entry)
		}
		if err := g.AddEdgeLabels(a, b); err != nil {
			return nil, fmt.Errorf("%w: edges[%d]: %w", ErrBadDocument, i, err)
		}
	}

	keys := make([]string, 0, len(d.Adjacency))
	for k := range d.Adjacency {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, from := range keys {
		for _, to := range d.Adjacency[from] {
			if err := g.AddEdgeLabels(from, to); err != nil {
				return nil, fmt.Errorf("%w: adjacency[%s]: %w", ErrBadDocument, from, err)
			}
		}
	}

	return g, nil
}

// LoadFile reads path as YAML when its extension is .yaml or .yml and as an
// edge list otherwise. Stats is only filled for edge lists.
func LoadFile(path string) (*core.Graph, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		g, err := ReadYAML(f)
		if err != nil {
			return nil, Stats{}, fmt.Errorf("loader: %s: %w", path, err)
		}
		st := g.Stats()

		return g, Stats{Edges: st.EdgeCount}, nil
	default:
		return ReadEdgeList(f)
	}
}
