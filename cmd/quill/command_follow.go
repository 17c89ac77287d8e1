package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"quill/internal/types"
)

type FollowCommand struct {
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory
}

func NewFollowCommand(stdout, stderr io.Writer, newClient clientFactory) *FollowCommand {
	return &FollowCommand{stdout: stdout, stderr: stderr, newClient: newClient}
}

func (c *FollowCommand) Run(args []string) error {
	fs := flag.NewFlagSet("follow", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	title := fs.String("title", "", "feed title override")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: follow [--title name] <feed-url>")
	}

	client, err := c.newClient()
	if err != nil {
		return err
	}
	feed, err := client.AddFeed(context.Background(), &types.Feed{
		URL:   fs.Arg(0),
		Title: *title,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(c.stdout, "following %s (%s)\n", feed.Title, feed.ID)
	return nil
}
