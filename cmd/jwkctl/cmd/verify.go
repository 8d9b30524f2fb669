package cmd

import (
	"encoding/base64"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/jwkcore/jwk/jwk"
	"github.com/jwkcore/jwk/internal/cliconfig"
	"github.com/jwkcore/jwk/internal/log"
)

func init() {
	verifyCommand := &cobra.Command{
		Use:   "verify <jwk-file> <alg> <message-file> <sig-file>",
		Short: "Verify a signature, exiting 0 on valid and 1 on invalid or error",
		Args:  cobra.ExactArgs(4),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cliconfig.BindEnv(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args[0], args[1], args[2], args[3])
		},
	}

	RootCommand.AddCommand(verifyCommand)
}

// runVerify mirrors spec.md §8 invariant 4: a false verification result and
// a dispatch error are distinct outcomes, never confused with each other.
func runVerify(jwkPath, algName, msgPath, sigPath string) error {
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

	sigB64, err := readFileOrStdin(sigPath)
	if err != nil {
		return err
	}
	sig, err := base64.RawURLEncoding.DecodeString(string(sigB64))
	if err != nil {
		return err
	}

	ok, err := jwk.Verify(jwk.JWSAlg(algName), j.Material, msg, sig)
	if err != nil {
		log.Global().WithField("alg", algName).Error(err)
		return err
	}

	log.Global().WithField("valid", ok).Debug("verification complete")
	if !ok {
		os.Exit(1)
	}
	return nil
}
