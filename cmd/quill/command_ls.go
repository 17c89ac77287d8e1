package main

import (
	"context"
	"flag"
	"io"
)

type LSCommand struct {
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory
}

func NewLSCommand(stdout, stderr io.Writer, newClient clientFactory) *LSCommand {
	return &LSCommand{stdout: stdout, stderr: stderr, newClient: newClient}
}

func (c *LSCommand) Run(args []string) error {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := c.newClient()
	if err != nil {
		return err
	}
	notes, err := client.ListNotes(context.Background())
	if err != nil {
		return err
	}

	printNotes(c.stdout, notes)
	return nil
}
