package floydwarshall_test

import (
	"testing"

	fw "github.com/katalvlaran/apsp/floydwarshall"
)

func TestPath_ZeroValueMeansNoPath(t *testing.T) {
	var p fw.Path[int]
	if p.Exists() {
		t.Error("zero-value Path must not exist")
	}
	if got := p.Seq(); got != nil {
		t.Errorf("zero-value Seq = %v; want nil", got)
	}
}

func TestPath_LenPanicsWithoutPath(t *testing.T) {
	var p fw.Path[int]
	defer func() {
		if recover() == nil {
			t.Error("Len on non-existent path must panic")
		}
	}()
	_ = p.Len()
}

// TestPath_IterRestartable ranges twice over the same iterator to pin the
// restartable contract, and once partially to pin early stop.
func TestPath_IterRestartable(t *testing.T) {
	g := lineGraph(t, 4) // 0—1—2—3, unit weights
	view, err := fw.FromCore(g)
	if err != nil {
		t.Fatalf("FromCore: %v", err)
	}
	pm, err := fw.FloydWarshallPaths(view)
	if err != nil {
		t.Fatalf("FloydWarshallPaths: %v", err)
	}

	it := pm.PathIter(0, 3)
	want := []int{1, 2}
	for round := 0; round < 2; round++ {
		var got []int
		for v := range it {
			got = append(got, v)
		}
		if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
			t.Fatalf("round %d: iter yielded %v; want %v", round, got, want)
		}
	}

	// Early break must not disturb later restarts.
	for range it {
		break
	}
	count := 0
	for range it {
		count++
	}
	if count != len(want) {
		t.Errorf("after early break: %d items; want %d", count, len(want))
	}
}

func TestPath_SeqReturnsCopy(t *testing.T) {
	g := lineGraph(t, 3)
	view, err := fw.FromCore(g)
	if err != nil {
		t.Fatalf("FromCore: %v", err)
	}
	pm, err := fw.FloydWarshallPaths(view)
	if err != nil {
		t.Fatalf("FloydWarshallPaths: %v", err)
	}

	seq := pm.PathSeq(0, 2)
	if len(seq) != 1 || seq[0] != 1 {
		t.Fatalf("PathSeq(0,2) = %v; want [1]", seq)
	}
	seq[0] = 99 // mutate the copy
	if again := pm.PathSeq(0, 2); again[0] != 1 {
		t.Error("mutating the returned slice leaked into the matrix")
	}
}
