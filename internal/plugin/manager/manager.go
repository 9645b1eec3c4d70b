// Package manager registers the built-in input/output plugins and any
// external plugin binaries discovered by path, and dispenses them to
// the CLI by name.
package manager

import (
	"context"
	"fmt"
	"sort"

	"github.com/huecam/huecam/internal/plugin/builtin/cssparse"
	"github.com/huecam/huecam/internal/plugin/builtin/jsonout"
	"github.com/huecam/huecam/internal/plugin/builtin/yamlout"
	"github.com/huecam/huecam/internal/plugin/executor"
	"github.com/huecam/huecam/pkg/plugin"
)

// Manager owns the set of input and output plugins available to a CLI
// invocation: built-ins registered in-process, external ones dispensed
// through an out-of-process executor.
type Manager struct {
	input          map[string]plugin.InputColorPlugin
	output         map[string]plugin.OutputSchemePlugin
	externalOutput map[string]*executor.Executor
	verbose        bool
}

// New builds a Manager with the built-in plugins registered.
func New(verbose bool) *Manager {
	m := &Manager{
		input:          make(map[string]plugin.InputColorPlugin),
		output:         make(map[string]plugin.OutputSchemePlugin),
		externalOutput: make(map[string]*executor.Executor),
		verbose:        verbose,
	}
	m.input["cssparse"] = cssparse.New()
	m.output["yaml"] = yamlout.New()
	m.output["json"] = jsonout.New()
	return m
}

// RegisterExternalOutput adds an out-of-process output plugin binary
// under name, autodetecting its protocol.
func (m *Manager) RegisterExternalOutput(name, path string) error {
	exec, err := executor.New(path, m.verbose)
	if err != nil {
		return fmt.Errorf("registering external plugin %s: %w", name, err)
	}
	m.externalOutput[name] = exec
	return nil
}

// InputPlugin returns the named input color plugin.
func (m *Manager) InputPlugin(name string) (plugin.InputColorPlugin, bool) {
	p, ok := m.input[name]
	return p, ok
}

// OutputPluginNames lists every registered output plugin name, built-in
// and external, sorted for deterministic CLI listings.
func (m *Manager) OutputPluginNames() []string {
	names := make([]string, 0, len(m.output)+len(m.externalOutput))
	for name := range m.output {
		names = append(names, name)
	}
	for name := range m.externalOutput {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GenerateOutput dispatches Generate to the named output plugin,
// whether built-in or external.
func (m *Manager) GenerateOutput(ctx context.Context, name string, scheme plugin.SchemeData) (map[string][]byte, error) {
	if p, ok := m.output[name]; ok {
		return p.Generate(ctx, scheme)
	}
	if e, ok := m.externalOutput[name]; ok {
		return e.Generate(ctx, scheme)
	}
	return nil, fmt.Errorf("unknown output plugin: %s", name)
}

// PreExecuteOutput runs the named output plugin's pre-execution gate.
func (m *Manager) PreExecuteOutput(ctx context.Context, name string) (skip bool, reason string, err error) {
	if p, ok := m.output[name]; ok {
		return p.PreExecute(ctx)
	}
	if e, ok := m.externalOutput[name]; ok {
		return e.PreExecute(ctx)
	}
	return false, "", fmt.Errorf("unknown output plugin: %s", name)
}

// PostExecuteOutput runs the named output plugin's post-execution hook.
func (m *Manager) PostExecuteOutput(ctx context.Context, name string, writtenFiles []string) error {
	if p, ok := m.output[name]; ok {
		return p.PostExecute(ctx, writtenFiles)
	}
	if e, ok := m.externalOutput[name]; ok {
		return e.PostExecute(ctx, writtenFiles)
	}
	return fmt.Errorf("unknown output plugin: %s", name)
}

// Close releases any subprocesses started for external plugins.
func (m *Manager) Close() {
	for _, e := range m.externalOutput {
		e.Close()
	}
}
