// Package yamlout is the built-in Base24 output plugin that serializes a
// generated scheme to a single YAML file matching the Base24 spec's
// mapping shape.
package yamlout

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/huecam/huecam/pkg/plugin"
)

const (
	pluginName    = "yaml"
	pluginVersion = "0.1.0"
)

// document mirrors the Base24 output contract's key order via explicit
// yaml tags rather than relying on map key sort order.
type document struct {
	System  string            `yaml:"system"`
	Name    string            `yaml:"name"`
	Author  string            `yaml:"author,omitempty"`
	Variant string            `yaml:"variant"`
	Palette map[string]string `yaml:"palette"`
}

// Plugin implements plugin.OutputSchemePlugin.
type Plugin struct{}

// New constructs the built-in YAML scheme-file output plugin.
func New() *Plugin { return &Plugin{} }

// Generate renders scheme as a single "<name>.yaml" file.
func (p *Plugin) Generate(_ context.Context, scheme plugin.SchemeData) (map[string][]byte, error) {
	doc := document{
		System:  scheme.System,
		Name:    scheme.Name,
		Author:  scheme.Author,
		Variant: scheme.Variant,
		Palette: scheme.Palette,
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling scheme to YAML: %w", err)
	}

	filename := scheme.Name
	if filename == "" {
		filename = "scheme"
	}
	return map[string][]byte{filename + ".yaml": data}, nil
}

// PreExecute has no gating logic for the YAML output plugin: it never
// skips.
func (p *Plugin) PreExecute(_ context.Context) (bool, string, error) {
	return false, "", nil
}

// PostExecute has nothing to do once files are written.
func (p *Plugin) PostExecute(_ context.Context, _ []string) error {
	return nil
}

// GetMetadata reports this plugin's identity for the plugin protocol.
func (p *Plugin) GetMetadata() plugin.PluginInfo {
	return plugin.PluginInfo{
		Name:            pluginName,
		Type:            "output",
		Version:         pluginVersion,
		ProtocolVersion: "0.0.1",
		Description:     "Writes the generated Base24 scheme as a YAML file",
		PluginProtocol:  "go-plugin",
	}
}

// GetFlagHelp reports this plugin's CLI flags; yamlout takes none.
func (p *Plugin) GetFlagHelp() []plugin.FlagHelp { return nil }
