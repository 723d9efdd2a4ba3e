package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEntryValidate(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  error
	}{
		{"valid", Entry{AssetPath: "a.png", AltText: "a", MoodTags: []string{"happy"}}, nil},
		{"no image", Entry{AltText: "a", MoodTags: []string{"happy"}}, ErrMissingAsset},
		{"no alt", Entry{AssetPath: "a.png", MoodTags: []string{"happy"}}, ErrMissingAlt},
		{"no moods", Entry{AssetPath: "a.png", AltText: "a"}, ErrNoMoods},
		{"empty mood", Entry{AssetPath: "a.png", AltText: "a", MoodTags: []string{"happy", ""}}, ErrEmptyMood},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEntryHasMoodIsCaseSensitive(t *testing.T) {
	e := Entry{MoodTags: []string{"happy", "Sad"}}
	if !e.HasMood("happy") {
		t.Error("HasMood(happy) = false, want true")
	}
	if e.HasMood("Happy") {
		t.Error("HasMood(Happy) = true, want false")
	}
	if e.HasMood("sad") {
		t.Error("HasMood(sad) = true, want false")
	}
}

func TestParseReportsEveryBadEntry(t *testing.T) {
	data := `name: broken
entries:
  - image: ok.png
    alt: fine
    moods: [happy]
  - alt: no image
    moods: [sad]
  - image: nomoods.png
    alt: no moods
`
	_, err := Parse([]byte(data))
	if err == nil {
		t.Fatal("Parse() error = nil, want validation error")
	}
	if !errors.Is(err, ErrMissingAsset) {
		t.Errorf("error does not wrap ErrMissingAsset: %v", err)
	}
	if !errors.Is(err, ErrNoMoods) {
		t.Errorf("error does not wrap ErrNoMoods: %v", err)
	}
	if !strings.Contains(err.Error(), "entry 1") || !strings.Contains(err.Error(), "entry 2") {
		t.Errorf("error should name both bad indices: %v", err)
	}
}

func TestParseMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("entries: [unterminated")); err == nil {
		t.Fatal("Parse() error = nil, want YAML error")
	}
}

func TestParseEmptyCatalog(t *testing.T) {
	c, err := Parse([]byte("name: empty\nentries: []\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(c.Entries) != 0 {
		t.Errorf("len(Entries) = %d, want 0", len(c.Entries))
	}
}

func TestLoadDefaultsNameToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memes.yaml")
	data := "entries:\n  - image: a.gif\n    alt: a\n    animated: true\n    moods: [happy]\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("writing catalog: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Name != path {
		t.Errorf("Name = %q, want %q", c.Name, path)
	}
	if len(c.Entries) != 1 || !c.Entries[0].IsAnimated {
		t.Errorf("unexpected entries: %+v", c.Entries)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load() error = nil, want error for missing file")
	}
}

func TestDefaultCatalogIsValid(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if len(c.Entries) == 0 {
		t.Fatal("default catalog is empty")
	}
	animated := 0
	for _, e := range c.Entries {
		if e.IsAnimated {
			animated++
		}
	}
	if animated == 0 || animated == len(c.Entries) {
		t.Errorf("default catalog should mix still and animated entries, got %d/%d animated", animated, len(c.Entries))
	}
}

func TestOpenEmptyPathUsesDefault(t *testing.T) {
	c, err := Open("")
	if err != nil {
		t.Fatalf("Open(\"\") error = %v", err)
	}
	if c.Name != "cats" {
		t.Errorf("Name = %q, want cats", c.Name)
	}
}
