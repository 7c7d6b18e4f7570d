package main

import (
	"os"

	"pigeonwatch/cmd/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
