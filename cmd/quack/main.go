package main

import (
	"os"

	"github.com/quackscript/quack/cmd/quack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
