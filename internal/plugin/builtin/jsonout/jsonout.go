// Package jsonout is the built-in Base24 output plugin that serializes a
// generated scheme as a single indented JSON file, for tooling that
// consumes Base24 palettes directly rather than through a terminal
// emulator's own config format.
package jsonout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huecam/huecam/pkg/plugin"
)

const (
	pluginName    = "json"
	pluginVersion = "0.1.0"
)

// Plugin implements plugin.OutputSchemePlugin.
type Plugin struct{}

// New constructs the built-in JSON scheme-file output plugin.
func New() *Plugin { return &Plugin{} }

// Generate renders scheme as a single "<name>.json" file.
func (p *Plugin) Generate(_ context.Context, scheme plugin.SchemeData) (map[string][]byte, error) {
	data, err := json.MarshalIndent(scheme, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling scheme to JSON: %w", err)
	}
	filename := scheme.Name
	if filename == "" {
		filename = "scheme"
	}
	return map[string][]byte{filename + ".json": data}, nil
}

// PreExecute has no gating logic for the JSON output plugin.
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
		Description:     "Writes the generated Base24 scheme as an indented JSON file",
		PluginProtocol:  "go-plugin",
	}
}

// GetFlagHelp reports this plugin's CLI flags; jsonout takes none.
func (p *Plugin) GetFlagHelp() []plugin.FlagHelp { return nil }
