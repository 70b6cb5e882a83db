package main

import (
	"os"

	"github.com/stayhub/stayctl/cmd/cli"
)

func main() {
	if err := cli.GetCommandOptions().Execute(); err != nil {
		os.Exit(1)
	}
}
