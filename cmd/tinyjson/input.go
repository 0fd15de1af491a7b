package main

import (
	"context"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/cybergodev/tinyjson"
)

const stdinName = "-"

// document is one input after parsing. Err is either a read error or the
// parse error; Value is only set when both succeeded.
type document struct {
	Name    string
	Size    int
	Value   tinyjson.Value
	Err     error
	ReadErr bool
}

// loadDocuments reads and parses every file, at most concurrency at a time,
// keeping the input order. No files means stdin.
func loadDocuments(ctx context.Context, codec *tinyjson.Codec, files []string, concurrency int) []document {
	if len(files) == 0 {
		files = []string{stdinName}
	}
	docs := make([]document, len(files))

	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			docs[i] = loadDocument(codec, name)
			return nil
		})
	}
	_ = g.Wait()
	return docs
}

func loadDocument(codec *tinyjson.Codec, name string) document {
	doc := document{Name: name}
	data, err := readInput(name)
	if err != nil {
		doc.Err, doc.ReadErr = err, true
		return doc
	}
	doc.Size = len(data)
	doc.Value, doc.Err = codec.ParseBytes(data)
	return doc
}

func readInput(name string) ([]byte, error) {
	if name == stdinName {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}
