// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

// stderr is for logging fatal config errors (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// Config is the root-level settings struct and is a mix of settings
// from an optional settings file and those bound from the command line
type Config struct {
	// the length of the gRNAs to design
	GrnaLength int `mapstructure:"grna-length"`

	// the number of candidates shown in the report
	TopCandidates int `mapstructure:"top-candidates"`

	// a run of this many identical bases counts as a homopolymer
	HomopolymerRun int `mapstructure:"homopolymer-run"`
}

// New returns a new Config struct populated by Viper settings (either
// from an optional settings file) and/or command line arguments
func New() *Config {
	viper.SetDefault("grna-length", 20)
	viper.SetDefault("top-candidates", 10)
	viper.SetDefault("homopolymer-run", 4)

	// an optional settings file overrides the defaults above;
	// bound command line flags override the file in turn
	if settings := viper.GetString("settings"); settings != "" {
		viper.SetConfigFile(settings)
		if err := viper.ReadInConfig(); err != nil {
			stderr.Fatalf("failed to read settings file %s: %v", settings, err)
		}
	}

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		stderr.Fatalf("unable to decode settings into config: %v", err)
	}

	return &c
}
