// Command fmtfn prints greetings rendered through fmtfn.Func values.
package main

import (
	"os"

	"github.com/dl/fmtfn/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
