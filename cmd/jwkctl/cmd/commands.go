// Package cmd is the jwkctl command tree: key generation, thumbprint,
// sign/verify and the public-view projection, all driving package jwk.
package cmd

import (
	"os"
	"path"

	"github.com/spf13/cobra"

	"github.com/jwkcore/jwk/internal/log"
)

// RootCommand is the base CLI command that all jwkctl subcommands attach
// to.
var RootCommand = &cobra.Command{
	Use:   path.Base(os.Args[0]),
	Short: "jwkctl manages JSON Web Keys",
	Long:  "jwkctl generates, inspects, signs and verifies JSON Web Keys (RFC 7517/7518).",
}

var (
	configFile string
	logLevel   string
)

func init() {
	RootCommand.PersistentFlags().StringVar(&configFile, "config", "", "path to a YAML config file")
	RootCommand.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	RootCommand.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return log.Global().SetLevel(logLevel)
	}
}
