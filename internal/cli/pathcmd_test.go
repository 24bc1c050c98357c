package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEdgeList(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "edges.txt")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}

func runPathCmd(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newPathCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())

	return out.String()
}

func TestPathCmd_ForwardRoute(t *testing.T) {
	file := writeEdgeList(t, "a b 1\nb c 1\nc d 1\n")
	out := runPathCmd(t, file, "a", "d")
	assert.Contains(t, out, "a → b → c → d")
	assert.Contains(t, out, "cost 3")
}

// TestPathCmd_ReverseRoute queries from the larger-indexed endpoint: the
// stored canonical sequence must be reversed before printing, so the hops
// read d → c → b → a rather than d → b → c → a.
func TestPathCmd_ReverseRoute(t *testing.T) {
	file := writeEdgeList(t, "a b 1\nb c 1\nc d 1\n")
	out := runPathCmd(t, file, "d", "a")
	assert.Contains(t, out, "d → c → b → a")
	assert.Contains(t, out, "cost 3")
}

func TestPathCmd_Unreachable(t *testing.T) {
	file := writeEdgeList(t, "a b 1\nx y 1\n")
	out := runPathCmd(t, file, "a", "x")
	assert.Contains(t, out, "unreachable")
}

func TestPathCmd_UnknownVertex(t *testing.T) {
	file := writeEdgeList(t, "a b 1\n")
	cmd := newPathCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{file, "a", "nope"})
	require.Error(t, cmd.Execute())
}
