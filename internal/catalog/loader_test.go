package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
id: grit
name: Grit Scale
kind: rating
scale_max: 5
dimensions:
  - id: perseverance
    label: Perseverance
    description: Sticking with long-term goals.
questions:
  - id: gr-01
    kind: rating
    dimension: perseverance
    text: Setbacks don't discourage me.
  - id: gr-02
    kind: rating
    dimension: perseverance
    reverse_scored: true
    text: I often set a goal but later choose to pursue a different one.
`

func TestParse_Valid(t *testing.T) {
	a, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if a.ID != "grit" || a.ScaleMax != 5 {
		t.Errorf("parsed %q scale %d, want grit/5", a.ID, a.ScaleMax)
	}
	if len(a.Questions) != 2 || !a.Questions[1].ReverseScored {
		t.Errorf("questions not decoded as expected: %+v", a.Questions)
	}
}

func TestParse_InvalidFailsValidation(t *testing.T) {
	bad := `
id: broken
kind: rating
scale_max: 5
questions:
  - id: q1
    kind: rating
    dimension: nowhere
`
	if _, err := Parse([]byte(bad)); err == nil {
		t.Error("expected validation error for unknown dimension reference")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grit.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	a, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if a.Name != "Grit Scale" {
		t.Errorf("name = %q, want Grit Scale", a.Name)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
