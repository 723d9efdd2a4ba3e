// Package testutil provides test helper utilities for memepicker tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/jumpinjune/memepicker/internal/catalog"
)

// TempProject creates a temporary directory with the given files and returns its path.
// Files is a map of relative path -> content. Directories are created as needed.
// The directory is automatically cleaned up when the test finishes.
func TempProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	for relPath, content := range files {
		absPath := filepath.Join(dir, relPath)
		if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
			t.Fatalf("creating directory for %s: %v", relPath, err)
		}
		if err := os.WriteFile(absPath, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", relPath, err)
		}
	}

	return dir
}

// TempCatalog writes entries as a YAML catalog file and returns its path.
func TempCatalog(t *testing.T, name string, entries []catalog.Entry) string {
	t.Helper()
	data, err := yaml.Marshal(catalog.Catalog{Name: name, Entries: entries})
	if err != nil {
		t.Fatalf("marshalling catalog: %v", err)
	}
	dir := TempProject(t, map[string]string{"catalog.yaml": string(data)})
	return filepath.Join(dir, "catalog.yaml")
}

// ScenarioEntries returns a three-entry dataset: a still "happy" image, an
// animated "happy" image and a still "sad" image, in that order.
func ScenarioEntries() []catalog.Entry {
	return []catalog.Entry{
		{AssetPath: "happy.jpeg", AltText: "A happy cat", IsAnimated: false, MoodTags: []string{"happy"}},
		{AssetPath: "happy.gif", AltText: "A happy cat dancing", IsAnimated: true, MoodTags: []string{"happy"}},
		{AssetPath: "sad.jpeg", AltText: "A sad cat", IsAnimated: false, MoodTags: []string{"sad"}},
	}
}

// CorruptCatalogYAML returns a catalog whose second entry has no image.
func CorruptCatalogYAML() string {
	return `name: corrupt
entries:
  - image: ok.jpeg
    alt: fine
    moods: [happy]
  - alt: missing image
    moods: [happy]
`
}
