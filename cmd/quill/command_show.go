package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
)

type ShowCommand struct {
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory
}

func NewShowCommand(stdout, stderr io.Writer, newClient clientFactory) *ShowCommand {
	return &ShowCommand{stdout: stdout, stderr: stderr, newClient: newClient}
}

func (c *ShowCommand) Run(args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	public := fs.Bool("public", false, "look the note up by its public id (no auth)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: show [--public] <id>")
	}

	ctx := context.Background()
	client, err := c.newClient()
	if err != nil {
		return err
	}

	lookup := client.GetNote
	if *public {
		lookup = client.GetPublicNote
	}
	note, err := lookup(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	fmt.Fprintln(c.stdout, note.DisplayTitle())
	fmt.Fprintln(c.stdout)
	fmt.Fprintln(c.stdout, note.Content)
	return nil
}
