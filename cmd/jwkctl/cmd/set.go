package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/jwkcore/jwk/jwk"
	"github.com/jwkcore/jwk/internal/cliconfig"
)

func init() {
	var format string

	setCommand := &cobra.Command{
		Use:   "set [jwks-file]",
		Short: "Validate and re-emit a JWK Set",
		Args:  cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cliconfig.BindEnv(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runSet(path, format)
		},
	}

	setCommand.Flags().StringVar(&format, "format", "", "output format: json, yaml")

	RootCommand.AddCommand(setCommand)
}

func runSet(path, format string) error {
	p, err := readFileOrStdin(path)
	if err != nil {
		return err
	}

	var set jwk.JWKSet
	if err := json.Unmarshal(p, &set); err != nil {
		return err
	}

	return writeOutput(os.Stdout, set, resolveOutputFormat(format))
}
