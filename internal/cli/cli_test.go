package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/figconv"
)

// Commands install the process-wide slog default, so these tests run
// sequentially.

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "figconv.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("view: plain\n"), 0o644))

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", cfg}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestShowPlain(t *testing.T) {
	path := writeFile(t, "shape.txt", "Square\n10\n10\n")

	out, _, err := run(t, "show", path)
	require.NoError(t, err)
	assert.Equal(t, "Name: Square\nWidth: 10\nHeight: 10\n", out)
}

func TestShowViewFlag(t *testing.T) {
	path := writeFile(t, "shape.json", `{"Name":"Square","Width":3,"Height":4}`)

	out, _, err := run(t, "show", "--view", "go-template={{.Name}} {{.Width}}x{{.Height}}", path)
	require.NoError(t, err)
	assert.Equal(t, "Square 3x4\n", out)
}

func TestShowTableBorderFlag(t *testing.T) {
	path := writeFile(t, "shape.txt", "Sq\n1\n2\n")

	out, _, err := run(t, "show", "--view", "table", "--border", "ascii", path)
	require.NoError(t, err)
	want := "" +
		"+--------+----+\n" +
		"| Name   | Sq |\n" +
		"| Width  |  1 |\n" +
		"| Height |  2 |\n" +
		"+--------+----+\n"
	assert.Equal(t, want, out)
}

func TestShowErrors(t *testing.T) {
	tests := map[string]struct {
		path string
		want error
	}{
		"unsupported extension": {path: "shape.csv", want: figconv.ErrUnsupportedFormat},
		"missing file":          {path: filepath.Join(t.TempDir(), "none.txt"), want: figconv.ErrIO},
		"malformed":             {path: writeFile(t, "bad.txt", "Square\nten\n10\n"), want: figconv.ErrMalformedData},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			_, stderr, err := run(t, "show", tt.path)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, stderr, "Error:")
			assert.NotContains(t, stderr, "Usage:")
		})
	}
}

func TestShowRequiresPath(t *testing.T) {
	_, _, err := run(t, "show")
	assert.Error(t, err)
}

func TestSaveRewritesInPlace(t *testing.T) {
	path := writeFile(t, "shape.json", `{"Width":10,"Name":"Square","Height":10,"Color":"red"}`)

	out, stderr, err := run(t, "save", path)
	require.NoError(t, err)
	assert.Equal(t, "Name: Square\nWidth: 10\nHeight: 10\n", out)
	assert.Contains(t, stderr, "File saved.")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"Name\": \"Square\",\n  \"Width\": 10,\n  \"Height\": 10\n}\n", string(data))
}

func TestSaveQuiet(t *testing.T) {
	path := writeFile(t, "shape.txt", "Square\n10\n10\n")

	out, _, err := run(t, "save", "-q", path)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestConvert(t *testing.T) {
	src := writeFile(t, "shape.txt", "Square\n10\n20\n")
	dst := filepath.Join(t.TempDir(), "shape.xml")

	_, _, err := run(t, "convert", src, dst)
	require.NoError(t, err)

	fig, err := figconv.Read(dst)
	require.NoError(t, err)
	assert.Equal(t, figconv.Figure{Name: "Square", Width: 10, Height: 20}, fig)
}

func TestConvertUnsupportedDestination(t *testing.T) {
	src := writeFile(t, "shape.txt", "Square\n10\n20\n")
	dst := filepath.Join(t.TempDir(), "shape.yaml")

	_, _, err := run(t, "convert", src, dst)
	assert.ErrorIs(t, err, figconv.ErrUnsupportedFormat)
	assert.NoFileExists(t, dst)
}

func TestFormats(t *testing.T) {
	out, _, err := run(t, "formats")
	require.NoError(t, err)
	assert.Equal(t, "text  .txt\njson  .json\nxml   .xml\n", out)
}

func TestInvalidViewFlag(t *testing.T) {
	_, _, err := run(t, "formats", "--view", "fancy")
	assert.Error(t, err)
}
