package testhelper

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
)

func TestParseLine(t *testing.T) {
	type testCase struct {
		input    string
		expected LineDirection
	}
	for _, tc := range []testCase{
		{"a/b/", LineDirection{LineKind: LineKindMkdir, Path: "a/b"}},
		{"a/f: foo", LineDirection{LineKind: LineKindWriteFile, Path: "a/f", Content: []byte("foo")}},
		{`a/f: "foo bar\n"`, LineDirection{LineKind: LineKindWriteFile, Path: "a/f", Content: []byte("foo bar\n")}},
		{"a/l -> ../b", LineDirection{LineKind: LineKindSymlink, Path: "a/l", TargetPath: "../b"}},
		{"l -> /abs: path", LineDirection{LineKind: LineKindSymlink, Path: "l", TargetPath: "/abs: path"}},
		{`a/f: "broken`, LineDirection{}},
		{"plain", LineDirection{}},
	} {
		assert.DeepEqual(t, ParseLine(tc.input), tc.expected)
	}
}

func TestExecuteLines(t *testing.T) {
	tempDir := t.TempDir()
	MustExecuteLines(
		t,
		tempDir,
		"a/b/",
		"a/f: foo",
		"x/l -> ../a/f",
	)

	info, err := os.Stat(filepath.Join(tempDir, "a", "b"))
	assert.NilError(t, err)
	assert.Assert(t, info.IsDir())

	target, err := os.Readlink(filepath.Join(tempDir, "x", "l"))
	assert.NilError(t, err)
	assert.Equal(t, target, "../a/f")

	content, err := os.ReadFile(filepath.Join(tempDir, "x", "l"))
	assert.NilError(t, err)
	assert.Equal(t, string(content), "foo")

	assert.ErrorContains(t, ExecuteLines(tempDir, "plain"), "unknown line")
}

func TestDir(t *testing.T) {
	assert.Equal(t, dir("a"), ".")
	assert.Equal(t, dir("/a"), "/")
	assert.Equal(t, dir("a/b/c"), "a/b")
}
