package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// DefaultEtherscanURL is used when no explorer is configured for the
	// selected network.
	DefaultEtherscanURL = "https://api.etherscan.io/api"

	// DefaultEtherscanPause spaces out consecutive API calls to stay under
	// free-tier rate limits (5 req/s).
	DefaultEtherscanPause = 250 * time.Millisecond

	defaultGraphNodeURL = "http://127.0.0.1:8020"
	defaultIPFSURL      = "http://127.0.0.1:5001"
)

// Provider creates RuntimeConfig for Wire dependency injection.
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	project, err := loadProjectConfig(projectRoot)
	if err != nil {
		return nil, err
	}

	cfg := &RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, ".protoscout"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Timeout:        v.GetDuration("timeout"),
		Project:        project,
	}

	cfg.PoolPath = resolvePath(projectRoot, firstNonEmpty(
		v.GetString("pool"), project.Protoscout.Pool, "abis.json"))
	cfg.ProtocolsPath = resolvePath(projectRoot, firstNonEmpty(
		v.GetString("protocols"), project.Protoscout.Protocols, "protocols.yaml"))

	network := firstNonEmpty(v.GetString("network"), project.Protoscout.Network, "mainnet")
	cfg.Etherscan = resolveEtherscan(project, network)

	cfg.Graph = GraphConfig{
		NodeURL: defaultGraphNodeURL,
		IPFSURL: defaultIPFSURL,
	}
	if project.Graph != nil {
		if project.Graph.NodeURL != "" {
			cfg.Graph.NodeURL = project.Graph.NodeURL
		}
		if project.Graph.IPFSURL != "" {
			cfg.Graph.IPFSURL = project.Graph.IPFSURL
		}
		cfg.Graph.ProdIPFSURL = project.Graph.ProdIPFSURL
	}

	return cfg, nil
}

func resolveEtherscan(project *ProjectConfig, network string) EtherscanConfig {
	ec := EtherscanConfig{
		URL:   DefaultEtherscanURL,
		Pause: DefaultEtherscanPause,
	}
	if configured, ok := project.Etherscan[network]; ok {
		if configured.URL != "" {
			ec.URL = configured.URL
		}
		ec.APIKey = configured.APIKey
	}
	if ec.APIKey == "" {
		ec.APIKey = os.Getenv("ETHERSCAN_API_KEY")
	}
	return ec
}

func resolvePath(projectRoot, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(projectRoot, path)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// FindProjectRoot walks up from the current directory to find protoscout.toml.
// Falls back to the current directory when no project file exists anywhere up
// the tree; every input path has a flag or config default.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, ProjectFile)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance.
func SetupViper(projectRoot string) *viper.Viper {
	v := viper.New()

	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".protoscout"))

	v.SetEnvPrefix("PROTOSCOUT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("timeout", "5m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)

	// Missing config file is fine; flags and env cover everything.
	_ = v.ReadInConfig()

	v.Set("project_root", projectRoot)

	return v
}

// globalFlagKeys maps persistent flag names to their viper keys.
var globalFlagKeys = map[string]string{
	"debug":           "debug",
	"non-interactive": "non_interactive",
	"pool":            "pool",
	"protocols":       "protocols",
	"network":         "network",
}

// BindGlobalFlags copies changed global flags into viper.
func BindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	cmd.Root().PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		if key, ok := globalFlagKeys[f.Name]; ok {
			v.Set(key, f.Value.String())
		}
	})
}
