// Package plugin provides the public API for huecam plugins.
// External plugins should import this package instead of internal packages.
package plugin

// ParseOptions holds options passed to an input color plugin.
type ParseOptions struct {
	Verbose    bool           `json:"verbose"`
	DryRun     bool           `json:"dry_run"`
	PluginArgs map[string]any `json:"plugin_args,omitempty"`
}

// RGBColor is an 8-bit sRGB color, transferable over RPC.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// SchemeData is the Base24 palette handed to an output plugin. Palette keys
// are the slot names "base00".."base17"; values are 6 lowercase hex digits
// ("rrggbb") without a leading '#'.
type SchemeData struct {
	System     string            `json:"system"`
	Name       string            `json:"name"`
	Author     string            `json:"author"`
	Variant    string            `json:"variant"`
	Palette    map[string]string `json:"palette"`
	PluginArgs map[string]any    `json:"plugin_args,omitempty"`
	DryRun     bool              `json:"dry_run"`
}

// FlagHelp represents help information for a single plugin flag.
// This type is part of the plugin protocol and is used by both internal and external plugins.
type FlagHelp struct {
	Name        string `json:"name"`
	Shorthand   string `json:"shorthand"`
	Type        string `json:"type"`
	Default     string `json:"default"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// PluginInfo contains metadata about a plugin.
type PluginInfo struct {
	Name            string `json:"name"`
	Type            string `json:"type"` // "input" or "output"
	Version         string `json:"version"`
	ProtocolVersion string `json:"protocol_version"`
	Description     string `json:"description"`
	PluginProtocol  string `json:"plugin_protocol"` // "json-stdio" or "go-plugin"
}
