// Package cliconfig binds jwkctl's cobra flags to environment variables and
// an optional YAML config file, under the JWKCTL_<COMMAND>_<FLAG> naming
// convention.
package cliconfig

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const globalPrefix = "jwkctl"

// Defaults is the subset of jwkctl behaviour a YAML config file or the
// environment can override: the curve/modulus size new keys default to
// when a command's own flag is left unset, and the default JWK rendering.
type Defaults struct {
	Curve        string `yaml:"curve" mapstructure:"curve"`
	RSAModulus   int    `yaml:"rsa_modulus" mapstructure:"rsa_modulus"` // modulus size in bytes
	OutputFormat string `yaml:"output_format" mapstructure:"output_format"`
}

// Load reads defaults from an optional YAML file and JWKCTL_* environment
// variables, file values take precedence over the package's own fallback,
// environment variables take precedence over the file.
func Load(configFile string) (Defaults, error) {
	v := viper.New()
	v.SetDefault("curve", "P-256")
	v.SetDefault("rsa_modulus", 256)
	v.SetDefault("output_format", "json")

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Defaults{}, fmt.Errorf("cliconfig: reading %s: %w", configFile, err)
		}
	}

	v.SetEnvPrefix(globalPrefix)
	v.AutomaticEnv()

	var d Defaults
	if err := v.Unmarshal(&d); err != nil {
		return Defaults{}, fmt.Errorf("cliconfig: %w", err)
	}
	return d, nil
}

// BindEnv maps unset flags on command to JWKCTL_<COMMAND>_<FLAG>
// environment variables, mirroring the teacher pack's own
// CheckEnvironmentVariables: viper.AutomaticEnv plus a VisitAll pass that
// only touches flags the user did not already set on the command line.
func BindEnv(command *cobra.Command) error {
	v := viper.New()
	v.AutomaticEnv()
	if command.Name() == globalPrefix {
		v.SetEnvPrefix(command.Name())
	} else {
		v.SetEnvPrefix(fmt.Sprintf("%s_%s", globalPrefix, command.Name()))
	}

	var errs []string
	command.Flags().VisitAll(func(f *pflag.Flag) {
		name := strings.ReplaceAll(f.Name, "-", "_")
		if !f.Changed && v.IsSet(name) {
			if err := command.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(name))); err != nil {
				errs = append(errs, err.Error())
			}
		}
	})

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("cliconfig: mapping environment variables to flags: %s", strings.Join(errs, "; "))
}
