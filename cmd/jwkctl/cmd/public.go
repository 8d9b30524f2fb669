package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jwkcore/jwk/jwk"
	"github.com/jwkcore/jwk/internal/cliconfig"
)

func init() {
	var format string

	publicCommand := &cobra.Command{
		Use:   "public [jwk-file]",
		Short: "Project a JWK to its public-only view",
		Args:  cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cliconfig.BindEnv(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runPublic(path, format)
		},
	}

	publicCommand.Flags().StringVar(&format, "format", "", "output format: json, yaml")

	RootCommand.AddCommand(publicCommand)
}

func runPublic(path, format string) error {
	p, err := readFileOrStdin(path)
	if err != nil {
		return err
	}

	var j jwk.JWK
	if err := json.Unmarshal(p, &j); err != nil {
		return err
	}

	pub, ok := jwk.AsPublicJWK(j)
	if !ok {
		return fmt.Errorf("jwkctl: %s has no public projection (kty=oct)", j.Material.KeyType())
	}

	return writeOutput(os.Stdout, pub, resolveOutputFormat(format))
}
