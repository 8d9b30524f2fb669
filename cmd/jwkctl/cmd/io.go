package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jwkcore/jwk/internal/cliconfig"
)

// readFileOrStdin returns path's contents, or stdin's if path is "-".
func readFileOrStdin(path string) ([]byte, error) {
	if path == "-" || path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// writeOutput renders v as JSON or YAML depending on the resolved output
// format and writes it to w, followed by a newline.
func writeOutput(w io.Writer, v any, format string) error {
	switch format {
	case "yaml":
		p, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(p)
		return err
	case "json", "":
		p, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(p))
		return err
	default:
		return fmt.Errorf("jwkctl: unknown output format %q", format)
	}
}

// resolveOutputFormat applies the --format flag over the config/env default
// from internal/cliconfig.
func resolveOutputFormat(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	d, err := cliconfig.Load(configFile)
	if err != nil {
		return "json"
	}
	return d.OutputFormat
}
