package manager

import (
	"context"
	"testing"

	"github.com/huecam/huecam/pkg/plugin"
)

func TestNewRegistersBuiltins(t *testing.T) {
	m := New(false)
	if _, ok := m.InputPlugin("cssparse"); !ok {
		t.Error("expected cssparse to be registered")
	}
	names := m.OutputPluginNames()
	if len(names) != 2 {
		t.Errorf("OutputPluginNames() = %v, want 2 built-ins", names)
	}
}

func TestGenerateOutputDispatchesToBuiltin(t *testing.T) {
	m := New(false)
	files, err := m.GenerateOutput(context.Background(), "json", plugin.SchemeData{
		Name:    "test",
		Palette: map[string]string{"base00": "000000"},
	})
	if err != nil {
		t.Fatalf("GenerateOutput failed: %v", err)
	}
	if _, ok := files["test.json"]; !ok {
		t.Errorf("expected test.json in output, got %v", files)
	}
}

func TestGenerateOutputRejectsUnknownPlugin(t *testing.T) {
	m := New(false)
	if _, err := m.GenerateOutput(context.Background(), "does-not-exist", plugin.SchemeData{}); err == nil {
		t.Error("expected an error for an unknown output plugin")
	}
}

func TestPreExecuteOutputDefaultsToNoSkip(t *testing.T) {
	m := New(false)
	skip, _, err := m.PreExecuteOutput(context.Background(), "yaml")
	if err != nil || skip {
		t.Errorf("PreExecuteOutput(yaml) = (%v, _, %v), want (false, _, nil)", skip, err)
	}
}
