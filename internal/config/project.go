package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ProjectFile is the marker file identifying a protoscout project root.
const ProjectFile = "protoscout.toml"

// loadProjectConfig loads and parses protoscout.toml.
func loadProjectConfig(projectRoot string) (*ProjectConfig, error) {
	// Load .env files first so ${VAR} expansion in the TOML sees them.
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}
	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}

	path := filepath.Join(projectRoot, ProjectFile)
	var cfg ProjectConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			// A project file is optional; defaults cover everything.
			return &ProjectConfig{}, nil
		}
		return nil, fmt.Errorf("failed to parse %s: %w", ProjectFile, err)
	}

	for network, ec := range cfg.Etherscan {
		ec.URL = os.ExpandEnv(ec.URL)
		ec.APIKey = os.ExpandEnv(ec.APIKey)
		cfg.Etherscan[network] = ec
	}

	return &cfg, nil
}
