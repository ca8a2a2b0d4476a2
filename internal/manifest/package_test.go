package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDescriptor(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadFields(t *testing.T) {
	path := writeDescriptor(t, t.TempDir(), `{
	// generated
	"name": "demo",
	"version": "1.0.0",
	"private": true,
}`)

	p, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", p.Name)
	assert.Equal(t, "1.0.0", p.Version)
	assert.Equal(t, path, p.Path)
}

func TestReadRejectsNonObject(t *testing.T) {
	for _, content := range []string{"[]", "not json", `"name"`} {
		path := writeDescriptor(t, t.TempDir(), content)
		_, err := Read(path)
		assert.ErrorIs(t, err, ErrInvalid, "content=%q", content)
	}
}

func TestReadMissing(t *testing.T) {
	_, err := ReadDir(t.TempDir())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSetPreservesOrderAndUnknownFields(t *testing.T) {
	p, err := Parse([]byte(`{"version":"1.0.0","name":"old","scripts":{"build":"vue-cli-service build"},"x-custom":1}`))
	require.NoError(t, err)

	require.NoError(t, p.SetName("new"))
	require.NoError(t, p.SetVersion("1.1.0"))

	out := string(p.Bytes(IndentSpaces))
	assert.Equal(t, "new", p.Name)
	assert.Equal(t, "1.1.0", p.Version)
	assert.Less(t, strings.Index(out, `"version"`), strings.Index(out, `"name"`))
	assert.Contains(t, out, `"x-custom": 1`)
	assert.Contains(t, out, `"build": "vue-cli-service build"`)
}

func TestSetAppendsMissingField(t *testing.T) {
	p, err := Parse([]byte(`{}`))
	require.NoError(t, err)
	require.NoError(t, p.SetName("foo"))
	assert.Equal(t, "foo", p.Get("name"))
}

func TestBytesIndentation(t *testing.T) {
	p, err := Parse([]byte(`{"name":"a","version":"1.0.0"}`))
	require.NoError(t, err)

	assert.Equal(t, "{\n\t\"name\": \"a\",\n\t\"version\": \"1.0.0\"\n}\n", string(p.Bytes(IndentTab)))
	assert.Equal(t, "{\n  \"name\": \"a\",\n  \"version\": \"1.0.0\"\n}\n", string(p.Bytes(IndentSpaces)))
}

func TestWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeDescriptor(t, dir, `{"name":"a"}`)

	p, err := Read(path)
	require.NoError(t, err)
	require.NoError(t, p.SetName("b"))
	require.NoError(t, p.Write(IndentTab))

	again, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "b", again.Name)
}

func TestEnsureFile(t *testing.T) {
	dir := t.TempDir()
	path, err := EnsureFile(dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	require.NoError(t, os.WriteFile(path, []byte(`{"name":"keep"}`), 0644))
	_, err = EnsureFile(dir)
	require.NoError(t, err)
	p, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "keep", p.Name)
}
