package main

import (
	"os"

	"github.com/probench/probench/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
