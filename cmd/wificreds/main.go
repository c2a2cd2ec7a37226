package main

import (
	"os"

	"github.com/rithikkrisna/wificreds/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
