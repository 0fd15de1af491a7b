// Command tinyjson formats, checks and summarizes JSON documents.
package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
)

func main() {
	app := kingpin.New("tinyjson", "Format, check and summarize JSON documents.")
	app.HelpFlag.Short('h')

	g := addGlobalFlags(app)
	addFmtCommand(app, g)
	addCheckCommand(app, g)
	addStatsCommand(app, g)

	kingpin.MustParse(app.Parse(os.Args[1:]))
}

func exitWithErr(err error) {
	_, _ = color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
