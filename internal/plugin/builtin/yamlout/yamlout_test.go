package yamlout

import (
	"context"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/huecam/huecam/pkg/plugin"
)

func TestGenerateProducesParsableYAML(t *testing.T) {
	p := New()
	scheme := plugin.SchemeData{
		System:  "base24",
		Name:    "gruvbox-dark",
		Author:  "test",
		Variant: "dark",
		Palette: map[string]string{"base00": "1d2021", "base08": "fb4934"},
	}

	files, err := p.Generate(context.Background(), scheme)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	data, ok := files["gruvbox-dark.yaml"]
	if !ok {
		t.Fatalf("expected file gruvbox-dark.yaml, got keys %v", keys(files))
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if doc.System != "base24" || doc.Variant != "dark" {
		t.Errorf("decoded doc = %+v, want system=base24 variant=dark", doc)
	}
	if doc.Palette["base00"] != "1d2021" {
		t.Errorf("decoded base00 = %q, want 1d2021", doc.Palette["base00"])
	}
}

func TestGenerateFallsBackToDefaultFilename(t *testing.T) {
	p := New()
	files, err := p.Generate(context.Background(), plugin.SchemeData{Palette: map[string]string{}})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, ok := files["scheme.yaml"]; !ok {
		t.Errorf("expected fallback filename scheme.yaml, got keys %v", keys(files))
	}
}

func TestPreExecuteNeverSkips(t *testing.T) {
	p := New()
	skip, _, err := p.PreExecute(context.Background())
	if err != nil || skip {
		t.Errorf("PreExecute() = (%v, _, %v), want (false, _, nil)", skip, err)
	}
}

func keys(m map[string][]byte) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
