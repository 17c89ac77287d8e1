package main

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"text/tabwriter"
	"time"

	"quill/internal/types"
)

const version = "dev"

func printNotes(output io.Writer, notes []*types.Note) {
	writer := tabwriter.NewWriter(output, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tPUBLIC\tUPDATED\tTITLE")
	for _, note := range notes {
		public := "-"
		if note.Public {
			public = "yes"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", note.ID, public, formatTimestamp(note.UpdatedAt), note.DisplayTitle())
	}
	_ = writer.Flush()
}

func formatTimestamp(at time.Time) string {
	if at.IsZero() {
		return "-"
	}
	return at.Local().Format("2006-01-02 15:04")
}

func exitOnErr(label string, err error, stderr io.Writer) {
	if err == nil {
		return
	}
	fmt.Fprintf(stderr, "%s error: %v\n", label, err)
	os.Exit(1)
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		var revision string
		var modified string
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.modified":
				modified = setting.Value
			}
		}
		if revision != "" {
			if modified == "true" {
				return revision + "-dirty"
			}
			return revision
		}
	}

	exe, err := os.Executable()
	if err == nil {
		file, err := os.Open(exe)
		if err == nil {
			defer file.Close()
			hasher := sha256.New()
			if _, err := io.Copy(hasher, file); err == nil {
				sum := hasher.Sum(nil)
				return fmt.Sprintf("bin-%x", sum[:6])
			}
		}
	}

	return version
}
