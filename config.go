package main

import (
	"os"
	"runtime"
	"time"

	"github.com/BurntSushi/toml"
)

// RawConf is the TOML shape of a config file. Keys left out fall back
// to the defaults set in LoadConfig.
type RawConf struct {
	Archive    string
	DataDir    string
	BaseDir    string
	OutFile    string
	Name       string
	Program    string
	Functional string
	Dispersion string
	Basis      string
	Charge     int
	Spin       int
	Workers    int
	Timeout    int
	KeepFiles  bool
}

func (rc RawConf) ToConfig() (conf Config) {
	conf.Archive = rc.Archive
	conf.DataDir = rc.DataDir
	conf.BaseDir = rc.BaseDir
	conf.OutFile = rc.OutFile
	conf.Name = rc.Name
	conf.Program = rc.Program
	conf.Params = Params{
		Functional: rc.Functional,
		Dispersion: rc.Dispersion,
		Basis:      rc.Basis,
		Charge:     rc.Charge,
		Spin:       rc.Spin,
	}
	conf.Workers = rc.Workers
	conf.Timeout = time.Duration(rc.Timeout) * time.Second
	conf.KeepFiles = rc.KeepFiles
	return
}

// Config is the processed configuration the driver runs with
type Config struct {
	Archive   string
	DataDir   string
	BaseDir   string
	OutFile   string
	Name      string
	Program   string
	Params    Params
	Workers   int
	Timeout   time.Duration
	KeepFiles bool
}

// LoadConfig reads a TOML config file. Defaults: the g16 program at
// the QM9 level of theory, b3lyp/6-31g(2df,p), with the gd3
// dispersion correction, a neutral singlet, one worker per CPU, no
// timeout, and job directories deleted after their results are read.
// An empty name means each job is named by its molecular formula.
func LoadConfig(filename string) (Config, error) {
	cont, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, err
	}
	rc := RawConf{
		DataDir:    "data",
		BaseDir:    ".",
		OutFile:    "energies.tsv",
		Program:    "g16",
		Functional: "b3lyp",
		Basis:      "6-31g(2df,p)",
		Dispersion: "gd3",
		Spin:       1,
		Workers:    runtime.NumCPU(),
	}
	if err := toml.Unmarshal(cont, &rc); err != nil {
		return Config{}, err
	}
	return rc.ToConfig(), nil
}
