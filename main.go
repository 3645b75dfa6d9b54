package main

import (
	"os"

	"github.com/qaport/qaport/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
