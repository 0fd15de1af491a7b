package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/cybergodev/tinyjson"
)

// treeStats summarizes the shape of a value tree.
type treeStats struct {
	nodes    [tinyjson.TypeObject + 1]int
	members  int
	maxDepth int
	strBytes int
}

func (s *treeStats) add(v *tinyjson.Value, depth int) {
	s.nodes[v.Type()]++
	if depth > s.maxDepth {
		s.maxDepth = depth
	}
	switch v.Type() {
	case tinyjson.TypeString:
		s.strBytes += v.StringLen()
	case tinyjson.TypeArray:
		for i := 0; i < v.ArrayLen(); i++ {
			s.add(v.Index(i), depth+1)
		}
	case tinyjson.TypeObject:
		s.members += v.ObjectLen()
		for i := 0; i < v.ObjectLen(); i++ {
			s.strBytes += v.KeyLen(i)
			s.add(v.Field(i), depth+1)
		}
	}
}

func (s *treeStats) total() int {
	var n int
	for _, c := range s.nodes {
		n += c
	}
	return n
}

// statsCommand prints node counts and sizes for each document.
type statsCommand struct {
	g     *globals
	files *[]string
	out   io.Writer
}

func (cmd *statsCommand) run(_ *kingpin.ParseContext) error {
	codec, err := cmd.g.codec()
	if err != nil {
		exitWithErr(err)
	}

	for _, doc := range loadDocuments(context.Background(), codec, *cmd.files, cmd.g.concurrency) {
		if doc.Err != nil {
			exitWithErr(fmt.Errorf("%s: %w", doc.Name, doc.Err))
		}
		cmd.printStats(codec, doc)
	}
	return nil
}

func (cmd *statsCommand) printStats(codec *tinyjson.Codec, doc document) {
	var s treeStats
	s.add(&doc.Value, 0)
	out := codec.Stringify(&doc.Value)

	bold := color.New(color.Bold)
	_, _ = bold.Fprintf(cmd.out, "%s:\n", doc.Name)
	fmt.Fprintf(cmd.out,
		"\tinput size: %v, canonical size: %v, string bytes: %v\n",
		humanize.Bytes(uint64(doc.Size)),
		humanize.Bytes(uint64(len(out))),
		humanize.Bytes(uint64(s.strBytes)),
	)
	fmt.Fprintf(cmd.out, "\tnodes: %s, max depth: %d, object members: %s\n",
		humanize.Comma(int64(s.total())), s.maxDepth, humanize.Comma(int64(s.members)))
	for t := tinyjson.TypeNull; t <= tinyjson.TypeObject; t++ {
		if s.nodes[t] == 0 {
			continue
		}
		fmt.Fprintf(cmd.out, "\t\t%s: %s\n", t, humanize.Comma(int64(s.nodes[t])))
	}
}

func addStatsCommand(app *kingpin.Application, g *globals) {
	cmd := &statsCommand{g: g, out: os.Stdout}
	c := app.Command("stats", "Print node counts and sizes for documents.").Action(cmd.run)
	cmd.files = c.Arg("file", "Files to summarize, - or none for stdin.").Strings()
}
