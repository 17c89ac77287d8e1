package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"quill/internal/types"
)

type NewCommand struct {
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory
}

func NewNewCommand(stdout, stderr io.Writer, newClient clientFactory) *NewCommand {
	return &NewCommand{stdout: stdout, stderr: stderr, newClient: newClient}
}

func (c *NewCommand) Run(args []string) error {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	title := fs.String("title", "", "note title")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := c.newClient()
	if err != nil {
		return err
	}

	note := &types.Note{
		ID:    uuid.NewString(),
		Title: strings.TrimSpace(*title),
	}
	saved, err := client.UpsertNote(context.Background(), note)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.stdout, saved.ID)
	return nil
}
