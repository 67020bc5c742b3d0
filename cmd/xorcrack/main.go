package main

import (
	"os"

	"xorcrack/cmd/xorcrack/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
