package cmd

import (
	"crypto"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jwkcore/jwk/jwk"
	"github.com/jwkcore/jwk/internal/cliconfig"
	"github.com/jwkcore/jwk/internal/log"
)

func init() {
	thumbprintCommand := &cobra.Command{
		Use:   "thumbprint [jwk-file]",
		Short: "Compute the RFC 7638 thumbprint of a JWK",
		Args:  cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cliconfig.BindEnv(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runThumbprint(path)
		},
	}

	RootCommand.AddCommand(thumbprintCommand)
}

func runThumbprint(path string) error {
	p, err := readFileOrStdin(path)
	if err != nil {
		return err
	}

	m, err := jwk.ParseKeyMaterial(p)
	if err != nil {
		log.Global().WithField("file", path).Warn(err)
		return err
	}

	sum, err := jwk.Thumbprint(m, crypto.SHA256)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, base64.RawURLEncoding.EncodeToString(sum))
	return nil
}
