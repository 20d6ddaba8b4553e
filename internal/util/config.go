package util

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Configuration carries the build identity and the capability flags that
// select which operator variants are available. Flags are resolved once at
// startup; the evaluator never consults anything else.
type Configuration struct {
	Version   string `toml:"-"`
	BuildDate string `toml:"-"`
	Commit    string `toml:"-"`

	EnableBigInt         bool `toml:"enable_bigint"`
	EnableExponentiation bool `toml:"enable_exponentiation"`

	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
}

// DefaultConfiguration enables the full operator set.
func DefaultConfiguration() Configuration {
	return Configuration{
		EnableBigInt:         true,
		EnableExponentiation: true,
		LogLevel:             "error",
	}
}

// LoadConfigFile overlays settings from a TOML file onto cfg.
func LoadConfigFile(path string, cfg *Configuration) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return toml.Unmarshal(data, cfg)
}
