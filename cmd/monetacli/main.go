package main

import (
	"os"

	"github.com/monetaio/moneta/cmd/monetacli/cmds"
)

func main() {
	if err := cmds.NewMonetaCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
