package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
)

// fmtCommand prints the canonical text of each document.
type fmtCommand struct {
	g     *globals
	files *[]string
	out   io.Writer
}

func (cmd *fmtCommand) run(_ *kingpin.ParseContext) error {
	codec, err := cmd.g.codec()
	if err != nil {
		exitWithErr(err)
	}

	for _, doc := range loadDocuments(context.Background(), codec, *cmd.files, cmd.g.concurrency) {
		if doc.Err != nil {
			exitWithErr(fmt.Errorf("%s: %w", doc.Name, doc.Err))
		}
		out := codec.Stringify(&doc.Value)
		if _, err := fmt.Fprintf(cmd.out, "%s\n", out); err != nil {
			exitWithErr(fmt.Errorf("failed to write output: %w", err))
		}
	}
	return nil
}

func addFmtCommand(app *kingpin.Application, g *globals) {
	cmd := &fmtCommand{g: g, out: os.Stdout}
	c := app.Command("fmt", "Print documents in canonical form.").Action(cmd.run)
	cmd.files = c.Arg("file", "Files to format, - or none for stdin.").Strings()
}
