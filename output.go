package main

import (
	"fmt"
	"io"
	"os"
)

// Result is the outcome of one job: its id and either the three
// energies or the error that stopped its pipeline
type Result struct {
	ID  int
	E   Energies
	Err error
}

// WriteResults writes the result table to w: a header line, then one
// id-tagged row per job. Failed jobs keep their row, with FAILED in
// each energy column.
func WriteResults(w io.Writer, results []Result) error {
	if _, err := fmt.Fprintln(w, "File_ID\tSCF_Energy\tEnthalpy\tFree_Energy"); err != nil {
		return err
	}
	for _, r := range results {
		var err error
		if r.Err != nil {
			_, err = fmt.Fprintf(w, "%04d\tFAILED\tFAILED\tFAILED\n", r.ID)
		} else {
			_, err = fmt.Fprintf(w, "%04d\t%.8f\t%.8f\t%.8f\n",
				r.ID, r.E.SCF, r.E.Enthalpy, r.E.Free)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteResultsFile writes the result table to filename
func WriteResultsFile(filename string, results []Result) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteResults(f, results)
}
