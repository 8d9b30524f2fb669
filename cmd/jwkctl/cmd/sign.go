package cmd

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jwkcore/jwk/jwk"
	"github.com/jwkcore/jwk/internal/cliconfig"
	"github.com/jwkcore/jwk/internal/log"
)

func init() {
	signCommand := &cobra.Command{
		Use:   "sign <jwk-file> <alg> <message-file>",
		Short: "Sign a message with a JWK, printing the base64url-no-pad signature",
		Args:  cobra.ExactArgs(3),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cliconfig.BindEnv(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSign(args[0], args[1], args[2])
		},
	}

	RootCommand.AddCommand(signCommand)
}

func runSign(jwkPath, algName, msgPath string) error {
	jp, err := readFileOrStdin(jwkPath)
	if err != nil {
		return err
	}
	var j jwk.JWK
	if err := json.Unmarshal(jp, &j); err != nil {
		log.Global().WithField("file", jwkPath).Warn(err)
		return err
	}

	msg, err := readFileOrStdin(msgPath)
	if err != nil {
		return err
	}

	sig, err := jwk.Sign(jwk.JWSAlg(algName), j.Material, msg)
	if err != nil {
		log.Global().WithField("alg", algName).Error(err)
		return err
	}

	fmt.Fprintln(os.Stdout, base64.RawURLEncoding.EncodeToString(sig))
	return nil
}
