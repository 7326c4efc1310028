// Command wordcheck lints and lists emphasis trainer word databases.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// CLI defines the command-line interface.
var CLI struct {
	Check CheckCmd `cmd:"" help:"Report rejected lines; exits non-zero when any file has errors"`
	List  ListCmd  `cmd:"" help:"Print the words of a database in display form"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("wordcheck"),
		kong.Description("Word database tools for the emphasis trainer"),
		kong.UsageOnError(),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
