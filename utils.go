package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// CleanSplit splits a line using strings.Split and then removes
// empty entries
func CleanSplit(str, sep string) []string {
	lines := strings.Split(str, sep)
	clean := make([]string, 0, len(lines))
	for s := range lines {
		if lines[s] != "" {
			clean = append(clean, lines[s])
		}
	}
	return clean
}

// RunProgram runs progName with stdin redirected from infile and
// stdout redirected to outfile, in the directory containing infile.
// The returned error is non-nil when the program exits non-zero or
// ctx expires first.
func RunProgram(ctx context.Context, progName, infile, outfile string) error {
	f, err := os.Open(infile)
	if err != nil {
		return err
	}
	defer f.Close()
	of, err := os.Create(outfile)
	if err != nil {
		return err
	}
	defer of.Close()
	cmd := exec.CommandContext(ctx, progName)
	cmd.Stdin = f
	cmd.Stdout = of
	cmd.Dir = filepath.Dir(infile)
	return cmd.Run()
}

// TrimExt takes a file name and returns it with the extension removed
// using filepath.Ext
func TrimExt(filename string) string {
	lext := len(filepath.Ext(filename))
	return filename[:len(filename)-lext]
}

func errExit(err error, msg string) {
	fmt.Fprintf(os.Stderr, "chemlearning-data: %v %s\n", err, msg)
	os.Exit(1)
}
