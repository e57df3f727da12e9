/*
QM9 data preparation
--------------------
The goal of this program is to turn an archive of QM9-style molecular
geometries into a table of computed energies: unpack the archive, run
one external quantum-chemistry computation per molecule, and collect
the SCF energy, enthalpy, and free energy of each into a tab-separated
file.
*/

package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
)

// Errors used throughout
var (
	ErrFileNotFound        = errors.New("Gaussian output file not found")
	ErrBlankOutput         = errors.New("Gaussian output file exists but is blank")
	ErrFileContainsError   = errors.New("Gaussian output file contains an error")
	ErrEnergyNotFound      = errors.New("energy not found in Gaussian output")
	ErrFinishedButNoEnergy = errors.New("Gaussian output finished but missing an energy")
	ErrNoNBOCharges        = errors.New("no natural population analysis in Gaussian output")
	ErrNoCoordinates       = errors.New("no standard orientation in Gaussian output")
	ErrGaussianFailed      = errors.New("Gaussian exited abnormally")
	ErrDirExists           = errors.New("job directory already exists")
	ErrUnknownElement      = errors.New("unknown element symbol")
	ErrAtomMismatch        = errors.New("coordinate and element counts differ")
)

func main() {
	args := ParseFlags()
	if len(args) < 1 {
		log.Fatal("chemlearning-data: no config file given")
	}
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			errExit(err, "creating cpu profile")
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	cfg, err := LoadConfig(args[0])
	if err != nil {
		errExit(err, fmt.Sprintf("loading config file %q", args[0]))
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *keep {
		cfg.KeepFiles = true
	}
	if *unpack {
		n, err := Unpack(cfg.Archive, cfg.DataDir)
		if err != nil {
			errExit(err, fmt.Sprintf("unpacking %q", cfg.Archive))
		}
		fmt.Printf("unpacked %d files into %s\n", n, cfg.DataDir)
		return
	}
	source := cfg.Archive
	if source == "" {
		source = cfg.DataDir
	}
	entries, err := Entries(source)
	if err != nil {
		errExit(err, fmt.Sprintf("reading %q", source))
	}
	lg := NewLogger(os.Stderr)
	var results []Result
	if *serial {
		results = RunSerial(cfg, lg, entries)
	} else {
		results = RunPool(cfg, lg, entries)
	}
	lg.Close()
	if err := WriteResultsFile(cfg.OutFile, results); err != nil {
		errExit(err, fmt.Sprintf("writing %q", cfg.OutFile))
	}
	fmt.Printf("wrote %d results to %s\n", len(results), cfg.OutFile)
}
