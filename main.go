package main

import (
	"os"

	"github.com/smellscan/smellscan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
