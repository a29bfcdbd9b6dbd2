package main

import (
	"os"

	"chucknorris/cmd/chucknorris/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
