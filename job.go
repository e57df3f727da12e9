package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gonum.org/v1/gonum/mat"
)

// Job is one external Gaussian computation, rooted in its own working
// directory under Basedir. Two Jobs never share a directory as long
// as their (Name, ID) pairs differ.
type Job struct {
	Basedir string
	Name    string
	ID      int
	Mol     *Molecule
	Params  Params
	Program string
	Timeout time.Duration
}

// NewJob builds the Job for one molecule. The name comes from the
// config, with spaces flattened to underscores; when the config
// leaves it empty the molecular formula is used instead.
func NewJob(cfg Config, id int, mol *Molecule) *Job {
	name := cfg.Name
	if name == "" {
		name = mol.Formula()
	}
	return &Job{
		Basedir: cfg.BaseDir,
		Name:    strings.ReplaceAll(name, " ", "_"),
		ID:      id,
		Mol:     mol,
		Params:  cfg.Params,
		Program: cfg.Program,
		Timeout: cfg.Timeout,
	}
}

// Dir returns the working directory of j, Basedir/Name.NNNN
func (j *Job) Dir() string {
	return filepath.Join(j.Basedir, fmt.Sprintf("%s.%04d", j.Name, j.ID))
}

// InputFile returns the input file name of j
func (j *Job) InputFile() string { return j.Name + ".com" }

// OutputFile returns the log file name of j
func (j *Job) OutputFile() string { return j.Name + ".log" }

func (j *Job) inputPath() string  { return filepath.Join(j.Dir(), j.InputFile()) }
func (j *Job) outputPath() string { return filepath.Join(j.Dir(), j.OutputFile()) }

// Setup creates the working directory and writes the input file into
// it. A directory left over from an earlier run is fatal for the job,
// there are no resume semantics.
func (j *Job) Setup() error {
	dir := j.Dir()
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrDirExists, dir)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	f, err := os.Create(j.inputPath())
	if err != nil {
		return err
	}
	defer f.Close()
	return j.WriteInput(f)
}

// Run invokes the external program with stdin redirected from the
// input file and stdout to the log file, inside the job directory,
// and waits for it to exit. A non-zero exit, or the timeout expiring,
// comes back wrapped in ErrGaussianFailed.
func (j *Job) Run() error {
	ctx := context.Background()
	if j.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.Timeout)
		defer cancel()
	}
	if err := RunProgram(ctx, j.Program, j.inputPath(), j.outputPath()); err != nil {
		return fmt.Errorf("%w: %v", ErrGaussianFailed, err)
	}
	return nil
}

// Energies parses the three energies from the job's log file
func (j *Job) Energies() (Energies, error) {
	return ReadEnergies(j.outputPath())
}

// NBOCharges parses the natural population charges from the job's
// log file
func (j *Job) NBOCharges() ([]float64, error) {
	return ReadNBOCharges(j.outputPath(), j.Mol.NAtoms())
}

// Coordinates parses the computed geometry from the job's log file
func (j *Job) Coordinates() (*mat.Dense, error) {
	return ReadCoordinates(j.outputPath())
}

// Cleanup removes the job's working directory tree. Only call it
// once the results have been read.
func (j *Job) Cleanup() error {
	return os.RemoveAll(j.Dir())
}
