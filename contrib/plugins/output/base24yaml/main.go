// base24yaml is a demonstration external output plugin: it writes the
// same "<name>.yaml" file as the built-in yaml output plugin, but runs
// as its own subprocess speaking the go-plugin RPC protocol instead of
// being registered in-process. It exists to show what an out-of-tree
// output plugin looks like end to end, including the --plugin-info
// handshake huecam uses to autodetect a binary's protocol before
// spawning it for real.
//
// Build:
//
//	go build -o base24yaml main.go
//
// Usage:
//
//	huecam generate --background '#1d2021' --foreground '#ebdbb2' \
//	    --outputs /path/to/base24yaml
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	hcplugin "github.com/hashicorp/go-plugin"
	"gopkg.in/yaml.v3"

	"github.com/huecam/huecam/pkg/plugin"
)

// yamlPlugin writes the palette as YAML, mirroring the built-in yaml
// output plugin's file shape so either can be dropped in for the other.
type yamlPlugin struct{}

func (p *yamlPlugin) Generate(_ context.Context, scheme plugin.SchemeData) (map[string][]byte, error) {
	doc := struct {
		System  string            `yaml:"system"`
		Name    string            `yaml:"name"`
		Author  string            `yaml:"author,omitempty"`
		Variant string            `yaml:"variant"`
		Palette map[string]string `yaml:"palette"`
	}{scheme.System, scheme.Name, scheme.Author, scheme.Variant, scheme.Palette}
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

func (p *yamlPlugin) PreExecute(_ context.Context) (bool, string, error) {
	return false, "", nil
}

func (p *yamlPlugin) PostExecute(_ context.Context, writtenFiles []string) error {
	return nil
}

func (p *yamlPlugin) GetMetadata() plugin.PluginInfo {
	return plugin.PluginInfo{
		Name:            "base24yaml",
		Type:            "output",
		Version:         "0.1.0",
		ProtocolVersion: plugin.ProtocolVersion,
		Description:     "Writes the generated Base24 scheme as YAML, out of process",
		PluginProtocol:  "go-plugin",
	}
}

func (p *yamlPlugin) GetFlagHelp() []plugin.FlagHelp { return nil }

func main() {
	// huecam probes every external plugin path with --plugin-info before
	// spawning it as a long-lived subprocess, to decide which protocol
	// to speak to it.
	if len(os.Args) > 1 && os.Args[1] == "--plugin-info" {
		info := (&yamlPlugin{}).GetMetadata()
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(info); err != nil {
			fmt.Fprintf(os.Stderr, "encoding plugin info: %v\n", err)
			os.Exit(1)
		}
		return
	}

	hcplugin.Serve(&hcplugin.ServeConfig{
		HandshakeConfig: plugin.Handshake,
		Plugins: map[string]hcplugin.Plugin{
			"output": &plugin.OutputSchemePluginRPC{Impl: &yamlPlugin{}},
		},
	})
}
