package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
)

type SaveCommand struct {
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory
}

func NewSaveCommand(stdout, stderr io.Writer, newClient clientFactory) *SaveCommand {
	return &SaveCommand{stdout: stdout, stderr: stderr, newClient: newClient}
}

func (c *SaveCommand) Run(args []string) error {
	fs := flag.NewFlagSet("save", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: save <url>")
	}

	client, err := c.newClient()
	if err != nil {
		return err
	}
	article, err := client.SaveArticle(context.Background(), fs.Arg(0))
	if err != nil {
		return err
	}

	fmt.Fprintf(c.stdout, "%s\t%s\n", article.ID, article.Title)
	return nil
}
