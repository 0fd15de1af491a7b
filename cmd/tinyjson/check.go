package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"

	"github.com/cybergodev/tinyjson"
)

var errCheckFailed = errors.New("one or more documents are not valid JSON")

// checkCommand reports whether each document is well formed.
type checkCommand struct {
	g     *globals
	files *[]string
	out   io.Writer
}

func (cmd *checkCommand) run(_ *kingpin.ParseContext) error {
	codec, err := cmd.g.codec()
	if err != nil {
		exitWithErr(err)
	}

	docs := loadDocuments(context.Background(), codec, *cmd.files, cmd.g.concurrency)
	if err := reportDocuments(cmd.out, docs); err != nil {
		exitWithErr(err)
	}
	return nil
}

// reportDocuments writes one line per document and returns errCheckFailed
// when any of them failed.
func reportDocuments(w io.Writer, docs []document) error {
	ok := color.New(color.FgGreen)
	bad := color.New(color.FgRed)

	var failed bool
	for _, doc := range docs {
		if doc.Err == nil {
			_, _ = ok.Fprintf(w, "%s: ok\n", doc.Name)
			continue
		}
		failed = true

		var pe *tinyjson.ParseError
		if !doc.ReadErr && errors.As(doc.Err, &pe) {
			_, _ = bad.Fprintf(w, "%s: %s at offset %d\n", doc.Name, pe.Code, pe.Offset)
			continue
		}
		_, _ = bad.Fprintf(w, "%s: %v\n", doc.Name, doc.Err)
	}
	if failed {
		return errCheckFailed
	}
	return nil
}

func addCheckCommand(app *kingpin.Application, g *globals) {
	cmd := &checkCommand{g: g, out: os.Stdout}
	c := app.Command("check", "Check that documents are well formed JSON.").Action(cmd.run)
	cmd.files = c.Arg("file", "Files to check, - or none for stdin.").Strings()
}
