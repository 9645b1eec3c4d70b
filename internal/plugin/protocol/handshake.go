// Package protocol implements the plugin semantic-version negotiation
// layered on top of go-plugin's handshake, plus protocol autodetection
// for external plugin binaries. The go-plugin HandshakeConfig and
// PluginType values themselves live in pkg/plugin, the single place
// external plugin authors import from.
package protocol
