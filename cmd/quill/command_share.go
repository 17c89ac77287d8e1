package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

type ShareCommand struct {
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory
}

func NewShareCommand(stdout, stderr io.Writer, newClient clientFactory) *ShareCommand {
	return &ShareCommand{stdout: stdout, stderr: stderr, newClient: newClient}
}

// Run toggles the note's public flag. Publishing prints the server-assigned
// public link and best-effort copies it to the clipboard.
func (c *ShareCommand) Run(args []string) error {
	fs := flag.NewFlagSet("share", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	noCopy := fs.Bool("no-copy", false, "print the link without copying it")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: share [--no-copy] <id>")
	}

	ctx := context.Background()
	client, err := c.newClient()
	if err != nil {
		return err
	}

	note, err := client.GetNote(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	note.Public = !note.Public
	saved, err := client.UpsertNote(ctx, note)
	if err != nil {
		return err
	}

	if !saved.Public {
		fmt.Fprintf(c.stdout, "%s is now private\n", saved.ID)
		return nil
	}
	fmt.Fprintln(c.stdout, saved.PublicURL)
	if !*noCopy && saved.PublicURL != "" {
		if err := clipboard.WriteAll(saved.PublicURL); err != nil {
			fmt.Fprintf(c.stderr, "clipboard copy failed: %v\n", err)
		}
	}
	return nil
}
