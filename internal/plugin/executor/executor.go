// Package executor runs an output scheme plugin binary out-of-process,
// speaking either the go-plugin RPC protocol or a JSON-over-stdio
// fallback, chosen by autodetection.
package executor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os/exec"
	"time"

	"github.com/hashicorp/go-hclog"
	hcplugin "github.com/hashicorp/go-plugin"

	"github.com/huecam/huecam/internal/plugin/protocol"
	"github.com/huecam/huecam/pkg/plugin"
)

// Executor runs a single output scheme plugin binary, hiding whether it
// speaks go-plugin RPC or JSON-over-stdio behind one interface.
type Executor struct {
	path         string
	protocolType plugin.PluginType
	client       *hcplugin.Client
	rpcClient    *plugin.OutputSchemePluginRPCClient
	verbose      bool
}

// New detects pluginPath's protocol and returns an Executor for it.
func New(pluginPath string, verbose bool) (*Executor, error) {
	result, err := protocol.DetectProtocol(pluginPath)
	if err != nil {
		return nil, fmt.Errorf("detecting plugin protocol: %w", err)
	}
	return &Executor{path: pluginPath, protocolType: result.Type, verbose: verbose}, nil
}

// Generate runs the plugin's Generate step.
func (e *Executor) Generate(ctx context.Context, scheme plugin.SchemeData) (map[string][]byte, error) {
	switch e.protocolType {
	case plugin.PluginTypeGoPlugin:
		client, err := e.rpc()
		if err != nil {
			return nil, err
		}
		return client.Generate(ctx, scheme)
	default:
		return e.generateJSON(ctx, scheme)
	}
}

// PreExecute runs the plugin's pre-execution gate, if it speaks
// go-plugin; JSON-stdio plugins have no equivalent hook and always
// proceed.
func (e *Executor) PreExecute(ctx context.Context) (skip bool, reason string, err error) {
	if e.protocolType != plugin.PluginTypeGoPlugin {
		return false, "", nil
	}
	client, err := e.rpc()
	if err != nil {
		return false, "", err
	}
	return client.PreExecute(ctx)
}

// PostExecute runs the plugin's post-execution hook, if it speaks
// go-plugin.
func (e *Executor) PostExecute(ctx context.Context, writtenFiles []string) error {
	if e.protocolType != plugin.PluginTypeGoPlugin {
		return nil
	}
	client, err := e.rpc()
	if err != nil {
		return err
	}
	return client.PostExecute(ctx, writtenFiles)
}

// Close terminates any subprocess started for this executor.
func (e *Executor) Close() {
	if e.client != nil {
		e.client.Kill()
		e.client = nil
		e.rpcClient = nil
	}
}

func (e *Executor) rpc() (*plugin.OutputSchemePluginRPCClient, error) {
	if e.rpcClient != nil {
		return e.rpcClient, nil
	}

	var logger hclog.Logger
	if e.verbose {
		logger = hclog.New(&hclog.LoggerOptions{Name: "plugin", Output: log.Writer(), Level: hclog.Debug})
	} else {
		logger = hclog.New(&hclog.LoggerOptions{Name: "plugin", Output: io.Discard, Level: hclog.Off})
	}

	e.client = hcplugin.NewClient(&hcplugin.ClientConfig{
		HandshakeConfig:  plugin.Handshake,
		Plugins:          map[string]hcplugin.Plugin{"output": &plugin.OutputSchemePluginRPC{}},
		Cmd:              exec.Command(e.path),
		AllowedProtocols: []hcplugin.Protocol{hcplugin.ProtocolNetRPC},
		Logger:           logger,
	})

	rpcClient, err := e.client.Client()
	if err != nil {
		e.client.Kill()
		return nil, fmt.Errorf("connecting to plugin RPC: %w", err)
	}

	raw, err := rpcClient.Dispense("output")
	if err != nil {
		e.client.Kill()
		return nil, fmt.Errorf("dispensing output plugin: %w", err)
	}

	client, ok := raw.(*plugin.OutputSchemePluginRPCClient)
	if !ok {
		e.client.Kill()
		return nil, fmt.Errorf("plugin %s did not return an OutputSchemePluginRPCClient", e.path)
	}

	e.rpcClient = client
	return client, nil
}

// generateJSON runs the plugin binary with the scheme piped as JSON on
// stdin, expecting a JSON object of filename -> file content on stdout.
func (e *Executor) generateJSON(ctx context.Context, scheme plugin.SchemeData) (map[string][]byte, error) {
	payload, err := json.Marshal(scheme)
	if err != nil {
		return nil, fmt.Errorf("marshaling scheme: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cmd := exec.CommandContext(runCtx, e.path)
	cmd.Stdin = bytes.NewReader(payload)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("plugin execution failed: %w\nstderr: %s", err, stderr.String())
	}

	var files map[string][]byte
	if err := json.Unmarshal(stdout.Bytes(), &files); err != nil {
		return nil, fmt.Errorf("plugin produced unparsable output: %w", err)
	}
	return files, nil
}
