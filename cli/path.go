package cli

import (
	"os"

	"github.com/AvigailEhrlich/Lab-General-Logger/pkg"
)

// baseConfig is the file name of the configuration file.
const baseConfig = "config.yaml"

// configEnv names the environment variable overriding the configuration file.
const configEnv = "LABLOG_CONFIG"

// configPath returns the configuration file path: the value of configEnv if
// set, or else baseConfig in the configuration directory.
func configPath() string {
	if p := os.Getenv(configEnv); p != "" {
		return p
	}

	return pkg.ConfigPath(baseConfig)
}
