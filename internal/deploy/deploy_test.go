package deploy

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func writeManifest(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("kind: Old\n"), 0644))
}

func TestTemplateDocuments(t *testing.T) {
	dec := yaml.NewDecoder(bytes.NewReader(Template()))
	var kinds []string
	for {
		var doc struct {
			Kind     string `yaml:"kind"`
			Metadata struct {
				Name string `yaml:"name"`
			} `yaml:"metadata"`
		}
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		assert.Equal(t, "!PROJECT_NAME", doc.Metadata.Name)
		kinds = append(kinds, doc.Kind)
	}
	assert.Equal(t, []string{"Deployment", "Service"}, kinds)
	assert.Contains(t, string(Template()), "registry-in.dustess.com:9000/!DOCKER_IMAGE_NAME:!IMAGE_TAG")
}

func TestUpdateUnsupported(t *testing.T) {
	_, err := Update(t.TempDir(), "values.yaml", false)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestUpdateShallow(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, filepath.Join(dir, ManifestFile))
	writeManifest(t, filepath.Join(dir, "sub", ManifestFile))

	got, err := Update(dir, ManifestFile, false)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, ManifestFile)}, got)

	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	require.NoError(t, err)
	assert.Equal(t, Template(), data)

	untouched, err := os.ReadFile(filepath.Join(dir, "sub", ManifestFile))
	require.NoError(t, err)
	assert.Equal(t, "kind: Old\n", string(untouched))
}

func TestUpdateShallowMissing(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, filepath.Join(dir, "sub", ManifestFile))
	_, err := Update(dir, ManifestFile, false)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestUpdateDeep(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		filepath.Join(dir, "apps", "a", ManifestFile),
		filepath.Join(dir, "apps", "b", ManifestFile),
		filepath.Join(dir, ManifestFile),
	}
	for _, p := range paths {
		writeManifest(t, p)
	}
	vendored := filepath.Join(dir, "node_modules", "x", ManifestFile)
	writeManifest(t, vendored)

	got, err := Update(dir, ManifestFile, true)
	require.NoError(t, err)
	assert.Equal(t, paths, got)

	for _, p := range paths {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, Template(), data)
	}
	data, err := os.ReadFile(vendored)
	require.NoError(t, err)
	assert.Equal(t, "kind: Old\n", string(data))
}

func TestUpdateDeepNoMatch(t *testing.T) {
	_, err := Update(t.TempDir(), ManifestFile, true)
	assert.ErrorIs(t, err, ErrNoMatch)
}
