package main

import (
	"os"

	"github.com/askvidya/vidya/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
