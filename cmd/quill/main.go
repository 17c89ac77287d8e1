package main

import (
	"fmt"
	"os"
)

const usageText = `quill is a terminal client for the quill note service.

Usage:
  quill <command> [flags]

Commands:
  ui       run the terminal UI (default)
  ls       list notes
  show     print a note
  new      create a note and print its id
  rm       delete a note
  share    toggle public sharing and print the link
  read     render a saved article
  save     save a web page as an article
  follow   subscribe to a feed
  config   print effective configuration
  help     show help

Flags:
  -h, --help   show help

Examples:
  quill ls
  quill show 4f7c2b1a
  quill share 4f7c2b1a
  quill save https://example.com/essay
  quill config --format toml
`

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	args := os.Args[1:]

	wiring := defaultCommandWiring(os.Stdout, os.Stderr)
	commands := buildCommands(wiring)

	if len(args) == 0 {
		exitOnErr("ui", commands["ui"].Run(nil), wiring.stderr)
		return
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return
	}

	runner, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
	exitOnErr(args[0], runner.Run(args[1:]), wiring.stderr)
}
