package cmd_test

import (
	"flag"
	"testing"

	"github.com/google/go-cmdtest"
	"github.com/katalvlaran/typereduction/cmd"
)

var update = flag.Bool("update", false, "update test files with results")

func TestCLI(t *testing.T) {
	ts, err := cmdtest.Read("testdata")
	if err != nil {
		t.Fatal(err)
	}
	ts.Commands["typereduce"] = cmdtest.InProcessProgram("typereduce", cmd.Execute)
	ts.Run(t, *update)
}
