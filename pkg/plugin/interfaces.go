package plugin

import "context"

// InputColorPlugin resolves a color specification string (hex, CSS name,
// custom syntax) into an sRGB color. It backs the parse_color external
// interface.
type InputColorPlugin interface {
	// Parse resolves spec into an sRGB color.
	Parse(ctx context.Context, spec string, opts ParseOptions) (RGBColor, error)

	// GetMetadata returns plugin metadata.
	GetMetadata() PluginInfo

	// GetFlagHelp returns help information for plugin flags.
	GetFlagHelp() []FlagHelp
}

// OutputSchemePlugin serializes a generated Base24 scheme into one or more
// output files. It backs the Base24 output contract.
type OutputSchemePlugin interface {
	// Generate produces output file contents keyed by filename.
	Generate(ctx context.Context, scheme SchemeData) (map[string][]byte, error)

	// PreExecute runs before Generate for validation checks.
	PreExecute(ctx context.Context) (skip bool, reason string, err error)

	// PostExecute runs after successful Generate and file writing.
	PostExecute(ctx context.Context, writtenFiles []string) error

	// GetMetadata returns plugin metadata.
	GetMetadata() PluginInfo

	// GetFlagHelp returns help information for plugin flags.
	GetFlagHelp() []FlagHelp
}
