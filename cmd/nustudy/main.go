package main

import (
	"os"

	"github.com/arpahome/nustudy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
