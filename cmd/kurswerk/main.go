package main

import (
	"os"

	"github.com/msto63/kurswerk/cmd/kurswerk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
