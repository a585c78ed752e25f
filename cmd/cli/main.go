package main

import (
	"github.com/yshekhar/cliquecoloc/cmd/cli/cmd"
)

func main() {
	cmd.Execute()
}
