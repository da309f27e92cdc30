package main

import (
	"os"

	"github.com/mei-friend/meigit/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
