package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration.
// This is injected into use cases and contains all resolved settings.
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Input documents
	PoolPath      string // candidate pool JSON
	ProtocolsPath string // protocol/role configuration YAML

	// Execution settings
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration

	// Resolved configurations
	Project   *ProjectConfig
	Etherscan EtherscanConfig
	Graph     GraphConfig
}

// ProjectConfig represents the full protoscout.toml configuration.
type ProjectConfig struct {
	Protoscout ProtoscoutConfig           `toml:"protoscout"`
	Etherscan  map[string]EtherscanConfig `toml:"etherscan,omitempty"`
	Graph      *GraphConfig               `toml:"graph,omitempty"`
}

// ProtoscoutConfig is the [protoscout] section of protoscout.toml.
type ProtoscoutConfig struct {
	Pool      string `toml:"pool,omitempty"`
	Protocols string `toml:"protocols,omitempty"`
	Network   string `toml:"network,omitempty"`
}

// EtherscanConfig holds the explorer API settings for one network.
type EtherscanConfig struct {
	URL    string `toml:"url,omitempty"`
	APIKey string `toml:"key,omitempty"`
	// Pause between consecutive API calls; free-tier explorers rate limit
	// aggressively.
	Pause time.Duration `toml:"-"`
}

// GraphConfig holds the graph-node endpoints used by subgraph deployment.
type GraphConfig struct {
	NodeURL     string `toml:"node_url,omitempty"`
	IPFSURL     string `toml:"ipfs_url,omitempty"`
	ProdIPFSURL string `toml:"prod_ipfs_url,omitempty"`
}
