package plugin

import (
	"context"
	"net/rpc"

	"github.com/hashicorp/go-plugin"
)

// InputColorPluginRPC implements the go-plugin Plugin interface for input color plugins.
type InputColorPluginRPC struct {
	plugin.Plugin
	Impl InputColorPlugin
}

// Server returns an RPC server for this plugin.
func (p *InputColorPluginRPC) Server(*plugin.MuxBroker) (any, error) {
	return &InputColorPluginRPCServer{Impl: p.Impl}, nil
}

// Client returns an RPC client for this plugin.
func (p *InputColorPluginRPC) Client(_ *plugin.MuxBroker, c *rpc.Client) (any, error) {
	return &InputColorPluginRPCClient{client: c}, nil
}

// InputColorPluginRPCServer is the RPC server implementation for input color plugins.
type InputColorPluginRPCServer struct {
	Impl InputColorPlugin
}

// ParseArgs bundles the RPC arguments for Parse.
type ParseArgs struct {
	Spec string
	Opts ParseOptions
}

// Parse implements the RPC method for color resolution.
func (s *InputColorPluginRPCServer) Parse(args ParseArgs, resp *RGBColor) error {
	color, err := s.Impl.Parse(context.Background(), args.Spec, args.Opts)
	if err != nil {
		return err
	}
	*resp = color
	return nil
}

// GetMetadata implements the RPC method for fetching plugin metadata.
func (s *InputColorPluginRPCServer) GetMetadata(_ any, resp *PluginInfo) error {
	*resp = s.Impl.GetMetadata()
	return nil
}

// GetFlagHelp implements the RPC method for fetching flag help.
func (s *InputColorPluginRPCServer) GetFlagHelp(_ any, resp *[]FlagHelp) error {
	*resp = s.Impl.GetFlagHelp()
	return nil
}

// InputColorPluginRPCClient is the RPC client implementation for input color plugins.
type InputColorPluginRPCClient struct {
	client *rpc.Client
}

// Parse calls the remote Parse method.
func (c *InputColorPluginRPCClient) Parse(_ context.Context, spec string, opts ParseOptions) (RGBColor, error) {
	var resp RGBColor
	err := c.client.Call("Plugin.Parse", ParseArgs{Spec: spec, Opts: opts}, &resp)
	return resp, err
}

// GetMetadata calls the remote GetMetadata method.
func (c *InputColorPluginRPCClient) GetMetadata() (PluginInfo, error) {
	var info PluginInfo
	err := c.client.Call("Plugin.GetMetadata", new(any), &info)
	return info, err
}

// GetFlagHelp calls the remote GetFlagHelp method.
func (c *InputColorPluginRPCClient) GetFlagHelp() []FlagHelp {
	var help []FlagHelp
	err := c.client.Call("Plugin.GetFlagHelp", new(any), &help)
	if err != nil {
		return []FlagHelp{}
	}
	return help
}

// OutputSchemePluginRPC implements the go-plugin Plugin interface for output plugins.
type OutputSchemePluginRPC struct {
	plugin.Plugin
	Impl OutputSchemePlugin
}

// Server returns an RPC server for this plugin.
func (p *OutputSchemePluginRPC) Server(*plugin.MuxBroker) (any, error) {
	return &OutputSchemePluginRPCServer{Impl: p.Impl}, nil
}

// Client returns an RPC client for this plugin.
func (p *OutputSchemePluginRPC) Client(_ *plugin.MuxBroker, c *rpc.Client) (any, error) {
	return &OutputSchemePluginRPCClient{client: c}, nil
}

// OutputSchemePluginRPCServer is the RPC server implementation for output plugins.
type OutputSchemePluginRPCServer struct {
	Impl OutputSchemePlugin
}

// Generate implements the RPC method for output generation.
func (s *OutputSchemePluginRPCServer) Generate(scheme SchemeData, resp *map[string][]byte) error {
	result, err := s.Impl.Generate(context.Background(), scheme)
	if err != nil {
		return err
	}
	*resp = result
	return nil
}

// PreExecuteResponse carries the outcome of a PreExecute RPC call.
type PreExecuteResponse struct {
	Skip   bool
	Reason string
	Error  string
}

// PreExecute implements the RPC method for pre-execution hooks.
func (s *OutputSchemePluginRPCServer) PreExecute(_ any, resp *PreExecuteResponse) error {
	skip, reason, err := s.Impl.PreExecute(context.Background())
	resp.Skip = skip
	resp.Reason = reason
	if err != nil {
		resp.Error = err.Error()
	}
	return nil
}

// PostExecute implements the RPC method for post-execution hooks.
func (s *OutputSchemePluginRPCServer) PostExecute(files []string, resp *string) error {
	err := s.Impl.PostExecute(context.Background(), files)
	if err != nil {
		*resp = err.Error()
		return err
	}
	return nil
}

// GetMetadata implements the RPC method for fetching plugin metadata.
func (s *OutputSchemePluginRPCServer) GetMetadata(_ any, resp *PluginInfo) error {
	*resp = s.Impl.GetMetadata()
	return nil
}

// GetFlagHelp implements the RPC method for fetching flag help.
func (s *OutputSchemePluginRPCServer) GetFlagHelp(_ any, resp *[]FlagHelp) error {
	*resp = s.Impl.GetFlagHelp()
	return nil
}

// OutputSchemePluginRPCClient is the RPC client implementation for output plugins.
type OutputSchemePluginRPCClient struct {
	client *rpc.Client
}

// Generate calls the remote Generate method.
func (c *OutputSchemePluginRPCClient) Generate(_ context.Context, scheme SchemeData) (map[string][]byte, error) {
	var result map[string][]byte
	err := c.client.Call("Plugin.Generate", scheme, &result)
	return result, err
}

// PreExecute calls the remote PreExecute method.
func (c *OutputSchemePluginRPCClient) PreExecute(_ context.Context) (bool, string, error) {
	var resp PreExecuteResponse
	err := c.client.Call("Plugin.PreExecute", new(any), &resp)
	if err != nil {
		return false, "", err
	}
	if resp.Error != "" {
		return resp.Skip, resp.Reason, &RPCError{Message: resp.Error}
	}
	return resp.Skip, resp.Reason, nil
}

// PostExecute calls the remote PostExecute method.
func (c *OutputSchemePluginRPCClient) PostExecute(_ context.Context, files []string) error {
	var errMsg string
	err := c.client.Call("Plugin.PostExecute", files, &errMsg)
	if err != nil {
		return err
	}
	if errMsg != "" {
		return &RPCError{Message: errMsg}
	}
	return nil
}

// GetMetadata calls the remote GetMetadata method.
func (c *OutputSchemePluginRPCClient) GetMetadata() (PluginInfo, error) {
	var info PluginInfo
	err := c.client.Call("Plugin.GetMetadata", new(any), &info)
	return info, err
}

// GetFlagHelp calls the remote GetFlagHelp method.
func (c *OutputSchemePluginRPCClient) GetFlagHelp() []FlagHelp {
	var help []FlagHelp
	err := c.client.Call("Plugin.GetFlagHelp", new(any), &help)
	if err != nil {
		return []FlagHelp{}
	}
	return help
}

// RPCError represents an error returned from an RPC call.
type RPCError struct {
	Message string
}

// Error implements the error interface.
func (e *RPCError) Error() string {
	return e.Message
}
