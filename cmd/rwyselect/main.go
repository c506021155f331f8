package main

import (
	"os"

	"github.com/vatsimnerd/rwyselect/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
