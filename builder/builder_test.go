package builder_test

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/katalvlaran/apsp/builder"
	"github.com/katalvlaran/apsp/core"
)

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func TestBuildGraph_Validation(t *testing.T) {
	cases := []struct {
		name string
		bopt []builder.Option
		cons builder.Constructor
		err  error
	}{
		{"NilConstructor", nil, nil, builder.ErrConstructFailed},
		{"CompleteTooSmall", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"PathTooSmall", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"CycleTooSmall", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"BadProbabilityLow", nil, builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"BadProbabilityHigh", nil, builder.RandomSparse(3, 1.1), builder.ErrInvalidProbability},
		{"MissingRNG", nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.bopt, tc.cons)
			if !errors.Is(err, tc.err) {
				t.Errorf("BuildGraph error = %v; want %v", err, tc.err)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Topologies
//----------------------------------------------------------------------------//

func TestComplete_Shape(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(5))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	if got := g.VertexCount(); got != 5 {
		t.Errorf("VertexCount = %d; want 5", got)
	}
	if got := g.EdgeCount(); got != 10 { // C(5,2)
		t.Errorf("EdgeCount = %d; want 10", got)
	}
}

func TestPath_Shape(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	if got := g.EdgeCount(); got != 3 {
		t.Errorf("EdgeCount = %d; want 3", got)
	}
	want := []string{"0", "1", "2", "3"}
	if got := g.Vertices(); !reflect.DeepEqual(got, want) {
		t.Errorf("Vertices = %v; want %v", got, want)
	}
}

func TestCycle_Shape(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(6))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	if got := g.EdgeCount(); got != 6 {
		t.Errorf("EdgeCount = %d; want 6", got)
	}
}

func TestRandomSparse_DeterministicForSeed(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithWeighted()},
			[]builder.Option{
				builder.WithSeed(42),
				builder.WithWeightFn(func(r *rand.Rand) int64 { return int64(r.Intn(100)) }),
			},
			builder.RandomSparse(10, 0.3),
		)
		if err != nil {
			t.Fatalf("BuildGraph: %v", err)
		}
		return g
	}
	a, b := build(), build()
	if !reflect.DeepEqual(a.Edges(), b.Edges()) {
		t.Error("same seed produced different edge sets")
	}
}

func TestRandomSparse_ProbabilityExtremes(t *testing.T) {
	// p=0 → no edges; p=1 → complete graph. Neither requires an RNG.
	empty, err := builder.BuildGraph(nil, nil, builder.RandomSparse(4, 0))
	if err != nil {
		t.Fatalf("BuildGraph(p=0): %v", err)
	}
	if got := empty.EdgeCount(); got != 0 {
		t.Errorf("p=0 EdgeCount = %d; want 0", got)
	}

	full, err := builder.BuildGraph(nil, nil, builder.RandomSparse(4, 1))
	if err != nil {
		t.Fatalf("BuildGraph(p=1): %v", err)
	}
	if got := full.EdgeCount(); got != 6 {
		t.Errorf("p=1 EdgeCount = %d; want 6", got)
	}
}

func TestWithIDScheme(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.Option{builder.WithIDScheme(func(i int) string { return string(rune('a' + i)) })},
		builder.Path(3),
	)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	want := []string{"a", "b", "c"}
	if got := g.Vertices(); !reflect.DeepEqual(got, want) {
		t.Errorf("Vertices = %v; want %v", got, want)
	}
}
