package main

import (
	"os"

	"github.com/arthur-debert/dirkeep/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
