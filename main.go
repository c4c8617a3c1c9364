package main

import (
	"os"

	"github.com/requinsolutions/aidetect/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
