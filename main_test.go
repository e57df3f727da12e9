package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// TestFullRun drives the whole pipeline the way main does: config,
// archive enumeration, the worker pool with one job failing, and the
// result table, which must hold one id-tagged row per molecule.
func TestFullRun(t *testing.T) {
	dir := t.TempDir()
	script := fakeGaussian(t, dir, "testfiles/h2.log", "H3N.0002")
	conf := filepath.Join(dir, "conf.toml")
	err := os.WriteFile(conf, []byte(fmt.Sprintf(
		"archive = %q\nbasedir = %q\noutfile = %q\nprogram = %q\nworkers = 2\n",
		"testfiles/qm9.tar.bz2",
		filepath.Join(dir, "scratch"),
		filepath.Join(dir, "energies.tsv"),
		script)), 0644)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(conf)
	if err != nil {
		t.Fatalf("got an error %q, didn't want one", err)
	}
	entries, err := Entries(cfg.Archive)
	if err != nil {
		t.Fatalf("got an error %q, didn't want one", err)
	}
	lg := NewLogger(io.Discard)
	results := RunPool(cfg, lg, entries)
	lg.Close()
	if err := WriteResultsFile(cfg.OutFile, results); err != nil {
		t.Fatalf("got an error %q, didn't want one", err)
	}
	got, err := os.ReadFile(cfg.OutFile)
	if err != nil {
		t.Fatal(err)
	}
	want := `File_ID	SCF_Energy	Enthalpy	Free_Energy
0001	-1.17853936	-1.15749000	-1.17211000
0002	FAILED	FAILED	FAILED
`
	if string(got) != want {
		t.Errorf("got\n%q, wanted\n%q\n", string(got), want)
	}
}
