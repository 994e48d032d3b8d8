package main

import (
	"os"

	"listo/internal/cli"
	"listo/internal/ui"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		ui.Fail(err.Error())
		os.Exit(1)
	}
}
