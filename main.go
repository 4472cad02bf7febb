package main

import (
	"os"

	"github.com/routetools/pgrconv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
