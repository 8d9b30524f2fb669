package main

import (
	"os"

	"github.com/jwkcore/jwk/cmd/jwkctl/cmd"
)

func main() {
	if err := cmd.RootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
