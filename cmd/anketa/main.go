package main

import (
	"os"

	"anketa/internal/cli"
	"anketa/internal/ui"
)

func main() {
	if err := cli.Execute(); err != nil {
		ui.NewConsole(os.Stderr).Error(err.Error())
		os.Exit(1)
	}
}
