package main

import (
	"os"

	"github.com/midpointhq/mpdev/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
