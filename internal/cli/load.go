package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/apsp/core"
	"github.com/katalvlaran/apsp/floydwarshall"
)

// parseEdgeList reads "<from> <to> <weight>" lines from r into a new
// undirected weighted graph. Blank lines and '#' comments are skipped.
// Duplicate edges keep the smaller weight, matching core.Graph.AddEdge.
func parseEdgeList(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph(core.WithWeighted())

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("cli: line %d: want \"from to weight\", got %q", line, text)
		}
		w, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cli: line %d: bad weight %q: %w", line, fields[2], err)
		}
		if err := g.AddEdge(fields[0], fields[1], w); err != nil {
			return nil, fmt.Errorf("cli: line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cli: reading edge list: %w", err)
	}

	return g, nil
}

// loadView reads the edge-list file at path and adapts it for the engine.
func loadView(path string) (*floydwarshall.CoreView, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cli: open edge list: %w", err)
	}
	defer f.Close()

	g, err := parseEdgeList(f)
	if err != nil {
		return nil, err
	}

	return floydwarshall.FromCore(g)
}
