package main

import (
	"os"

	"github.com/doublescale/anagrind/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
