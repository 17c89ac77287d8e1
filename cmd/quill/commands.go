package main

import (
	"io"
	"os"
)

type commandRunner interface {
	Run(args []string) error
}

type commandWiring struct {
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory
	version   string
}

func defaultCommandWiring(stdout, stderr io.Writer) commandWiring {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return commandWiring{
		stdout:    stdout,
		stderr:    stderr,
		newClient: newQuillClient,
		version:   buildVersion(),
	}
}

func buildCommands(wiring commandWiring) map[string]commandRunner {
	return map[string]commandRunner{
		"ui":     NewUICommand(wiring.stderr, wiring.newClient),
		"ls":     NewLSCommand(wiring.stdout, wiring.stderr, wiring.newClient),
		"show":   NewShowCommand(wiring.stdout, wiring.stderr, wiring.newClient),
		"new":    NewNewCommand(wiring.stdout, wiring.stderr, wiring.newClient),
		"rm":     NewRMCommand(wiring.stdout, wiring.stderr, wiring.newClient),
		"share":  NewShareCommand(wiring.stdout, wiring.stderr, wiring.newClient),
		"read":   NewReadCommand(wiring.stdout, wiring.stderr, wiring.newClient),
		"save":   NewSaveCommand(wiring.stdout, wiring.stderr, wiring.newClient),
		"follow": NewFollowCommand(wiring.stdout, wiring.stderr, wiring.newClient),
		"config": NewConfigCommand(wiring.stdout, wiring.stderr),
	}
}
