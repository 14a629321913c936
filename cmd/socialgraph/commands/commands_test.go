package commands_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/socialgraph/cmd/socialgraph/commands"
	"github.com/katalvlaran/socialgraph/core"
)

const tenVertexFile = `G
1,2,3,4,5,6,7,8,9,10
(1,2)
(1,3)
(2,4)
(2,6)
(2,5)
`

type levelsOutput struct {
	Source  string         `json:"source" yaml:"source"`
	Target  string         `json:"target" yaml:"target"`
	Found   *bool          `json:"found" yaml:"found"`
	Levels  map[string]int `json:"levels" yaml:"levels"`
	Visited int            `json:"visited" yaml:"visited"`
}

// run executes the CLI with an isolated HOME and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	cmd := commands.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--color=false"}, args...))
	err := cmd.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func decodeJSON(t *testing.T, s string) levelsOutput {
	t.Helper()
	var got levelsOutput
	require.NoError(t, json.Unmarshal([]byte(s), &got), s)

	return got
}

func TestPathStopsEarly(t *testing.T) {
	file := writeFile(t, "ten.txt", tenVertexFile)

	out, err := run(t, "-o", "json", "path", file, "1", "6")
	require.NoError(t, err)

	got := decodeJSON(t, out)
	assert.Equal(t, map[string]int{"1": 0, "2": 1, "3": 1, "6": 2}, got.Levels)
	assert.Equal(t, "6", got.Target)
	require.NotNil(t, got.Found)
	assert.True(t, *got.Found)
	assert.Equal(t, 4, got.Visited)
}

func TestBFSText(t *testing.T) {
	file := writeFile(t, "star.txt", "G\nC,A,B,D\n(C,A)\n(C,B)\n(C,D)\n")

	out, err := run(t, "bfs", file, "C")
	require.NoError(t, err)
	assert.Equal(t, "Levels from C\n  C 0\n  A 1\n  B 1\n  D 1\n4 vertices discovered\n", out)

	out, err = run(t, "bfs", file, "A")
	require.NoError(t, err)
	assert.Contains(t, out, "1 vertices discovered")
}

func TestBFSMaxDepthYAML(t *testing.T) {
	file := writeFile(t, "ten.txt", tenVertexFile)

	out, err := run(t, "--format", "yaml", "bfs", "--max-depth", "1", file, "1")
	require.NoError(t, err)

	var got levelsOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]int{"1": 0, "2": 1, "3": 1}, got.Levels)
	assert.Nil(t, got.Found)
}

func TestPathUnreachable(t *testing.T) {
	file := writeFile(t, "pair.txt", "G\nX,Y\n")

	out, err := run(t, "path", file, "X", "Y")
	require.NoError(t, err)
	assert.Contains(t, out, "target not reachable")
}

func TestUnknownVertex(t *testing.T) {
	file := writeFile(t, "ten.txt", tenVertexFile)

	_, err := run(t, "bfs", file, "42")
	require.ErrorIs(t, err, core.ErrKeyNotFound)

	_, err = run(t, "path", file, "1", "42")
	require.ErrorIs(t, err, core.ErrKeyNotFound)
}

func TestEdgesListing(t *testing.T) {
	file := writeFile(t, "star.txt", "G\nC,A,B\n(C,A,3)\n(C,B)\n")

	out, err := run(t, "edges", file)
	require.NoError(t, err)
	assert.Equal(t, "# Vertices: 3\n# Edges:  2\n\nEdge List:\n(C ,A, 3)\n(C ,B, 0)\n", out)
}

func TestDemo(t *testing.T) {
	out, err := run(t, "-o", "json", "demo")
	require.NoError(t, err)
	got := decodeJSON(t, out)
	assert.Equal(t, "William", got.Source)
	assert.Equal(t, 12, got.Visited)
	assert.Equal(t, 3, got.Levels["Kyle"])
	assert.Equal(t, 2, got.Levels["Ciara"])

	out, err = run(t, "-o", "json", "demo", "Dacio", "Kyle")
	require.NoError(t, err)
	assert.Equal(t, 4, decodeJSON(t, out).Levels["Kyle"])

	out, err = run(t, "-o", "json", "demo", "Karen")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Karen": 0}, decodeJSON(t, out).Levels)
}

func TestConfigSources(t *testing.T) {
	file := writeFile(t, "ten.txt", tenVertexFile)

	cfg := writeFile(t, "cfg.yaml", "format: json\nlog-level: debug\n")
	out, err := run(t, "--config", cfg, "bfs", file, "2")
	require.NoError(t, err)
	assert.Equal(t, 4, decodeJSON(t, out).Visited)

	t.Setenv("SOCIALGRAPH_FORMAT", "json")
	out, err = run(t, "bfs", file, "3")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"3": 0}, decodeJSON(t, out).Levels)
}

func TestConfigRejectsBadValues(t *testing.T) {
	file := writeFile(t, "ten.txt", tenVertexFile)

	_, err := run(t, "--format", "xml", "bfs", file, "1")
	require.ErrorContains(t, err, "unknown format")

	_, err = run(t, "--log-level", "loud", "bfs", file, "1")
	require.ErrorContains(t, err, "log-level")
}

func TestMalformedFile(t *testing.T) {
	file := writeFile(t, "bad.txt", "H\n1,2\n")

	_, err := run(t, "edges", file)
	require.Error(t, err)
}
