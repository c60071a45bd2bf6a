// SPDX-License-Identifier: MIT

// Command typereduce reduces interval type-2 fuzzy rule sets from the command line.
package main

import (
	"os"

	"github.com/katalvlaran/typereduction/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
