package main

import (
	"os"

	"github.com/kelsic/dialogia/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
