package main

import (
	"flag"
	"fmt"
	"os"
)

const (
	help = `Requirements:
- a TOML config file naming the QM9 archive (or a directory of
  already-unpacked .xyz files) to draw molecules from
- the external program from the config (g16 by default) on PATH,
  unless only -unpack is wanted
Flags:
`
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	keep       = flag.Bool("keep", false, "keep job directories after their results are read")
	serial     = flag.Bool("serial", false, "run jobs one at a time instead of across workers")
	unpack     = flag.Bool("unpack", false, "unpack the archive into the data directory and exit")
	version    = flag.Bool("version", false, "print the version and exit")
	workers    = flag.Int("workers", 0, "override the number of workers from the config")
)

// ParseFlags parses command line flags and returns a slice of the
// remaining arguments
func ParseFlags() []string {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), help)
		flag.PrintDefaults()
	}
	flag.Parse()
	if *version {
		fmt.Printf("chemlearning-data version: %s\ncompiled at %s\n",
			VERSION, COMP_TIME)
		os.Exit(0)
	}
	return flag.Args()
}
