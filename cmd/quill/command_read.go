package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

type ReadCommand struct {
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory
}

func NewReadCommand(stdout, stderr io.Writer, newClient clientFactory) *ReadCommand {
	return &ReadCommand{stdout: stdout, stderr: stderr, newClient: newClient}
}

func (c *ReadCommand) Run(args []string) error {
	fs := flag.NewFlagSet("read", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	width := fs.Int("width", 80, "render width")
	plain := fs.Bool("plain", false, "print raw markdown without rendering")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: read [--width N] [--plain] <article-id>")
	}

	client, err := c.newClient()
	if err != nil {
		return err
	}
	article, err := client.GetArticle(context.Background(), fs.Arg(0))
	if err != nil {
		return err
	}

	fmt.Fprintln(c.stdout, article.Title)
	fmt.Fprintln(c.stdout)
	if *plain {
		fmt.Fprintln(c.stdout, article.Content)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(*width),
	)
	if err != nil {
		fmt.Fprintln(c.stdout, article.Content)
		return nil
	}
	out, err := renderer.Render(article.Content)
	if err != nil {
		fmt.Fprintln(c.stdout, article.Content)
		return nil
	}
	fmt.Fprint(c.stdout, out)
	return nil
}
