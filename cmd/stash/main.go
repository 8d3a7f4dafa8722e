package main

import (
	"os"

	"github.com/dshills/stash/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
