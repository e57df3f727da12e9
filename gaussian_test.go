package main

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestRoute(t *testing.T) {
	t.Run("with dispersion", func(t *testing.T) {
		p := Params{
			Functional: "b3lyp",
			Dispersion: "gd3",
			Basis:      "6-31g(2df,p)",
		}
		got := p.Route()
		want := "#p b3lyp/6-31g(2df,p) freq pop=nbo empiricaldispersion=gd3"
		if got != want {
			t.Errorf("got %v, wanted %v\n", got, want)
		}
	})
	t.Run("without dispersion", func(t *testing.T) {
		p := Params{Functional: "pbe0", Basis: "def2svp"}
		got := p.Route()
		want := "#p pbe0/def2svp freq pop=nbo"
		if got != want {
			t.Errorf("got %v, wanted %v\n", got, want)
		}
	})
}

func TestWriteInput(t *testing.T) {
	mol, _ := NewMolecule(mat.NewDense(2, 3, []float64{
		0.0, 0.0, 0.0,
		0.0, 0.0, 0.74,
	}), []int{1, 1}, nil)
	job := &Job{
		Name: "test",
		ID:   1,
		Mol:  mol,
		Params: Params{
			Functional: "b3lyp",
			Dispersion: "gd3",
			Basis:      "6-31g(2df,p)",
			Charge:     0,
			Spin:       1,
		},
	}
	var b strings.Builder
	if err := job.WriteInput(&b); err != nil {
		t.Fatalf("got an error %q, didn't want one", err)
	}
	got := b.String()
	want := `%chk=test.chk
#p b3lyp/6-31g(2df,p) freq pop=nbo empiricaldispersion=gd3

test.0001

0 1
H                      0.000000                  0.000000                  0.000000
H                      0.000000                  0.000000                  0.740000

`
	if got != want {
		t.Errorf("got\n%q, wanted\n%q\n", got, want)
	}
}

func TestReadEnergies(t *testing.T) {
	tests := []struct {
		file string
		want Energies
		err  error
	}{
		{
			file: "testfiles/h2.log",
			want: Energies{
				SCF:      -1.17853936,
				Enthalpy: -1.157490,
				Free:     -1.172110,
			},
		},
		{
			// an opt log reports several SCF energies; the last
			// one counts
			file: "testfiles/twoscf.log",
			want: Energies{
				SCF:      -1.17853936,
				Enthalpy: -1.157490,
				Free:     -1.172110,
			},
		},
		{file: "testfiles/error.log", err: ErrFileContainsError},
		{file: "testfiles/noterm.log", err: ErrEnergyNotFound},
		{file: "testfiles/nofree.log", err: ErrFinishedButNoEnergy},
		{file: "testfiles/blank.log", err: ErrBlankOutput},
		{file: "testfiles/missing.log", err: ErrFileNotFound},
	}
	for _, test := range tests {
		got, err := ReadEnergies(test.file)
		if !errors.Is(err, test.err) {
			t.Errorf("ReadEnergies(%q): got %v, wanted %v\n",
				test.file, err, test.err)
		}
		if test.err == nil && got != test.want {
			t.Errorf("ReadEnergies(%q): got %v, wanted %v\n",
				test.file, got, test.want)
		}
	}
}

func TestReadNBOCharges(t *testing.T) {
	got, err := ReadNBOCharges("testfiles/h2.log", 2)
	if err != nil {
		t.Fatalf("got an error %q, didn't want one", err)
	}
	want := []float64{0.00012, -0.00012}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
	if _, err := ReadNBOCharges("testfiles/twoscf.log", 2); !errors.Is(err, ErrNoNBOCharges) {
		t.Errorf("got %v, wanted %v\n", err, ErrNoNBOCharges)
	}
}

func TestReadCoordinates(t *testing.T) {
	got, err := ReadCoordinates("testfiles/h2.log")
	if err != nil {
		t.Fatalf("got an error %q, didn't want one", err)
	}
	want := mat.NewDense(2, 3, []float64{
		0.0, 0.0, 0.37,
		0.0, 0.0, -0.37,
	})
	if !mat.Equal(got, want) {
		t.Errorf("got %v, wanted %v\n",
			mat.Formatted(got), mat.Formatted(want))
	}
	if _, err := ReadCoordinates("testfiles/noterm.log"); !errors.Is(err, ErrNoCoordinates) {
		t.Errorf("got %v, wanted %v\n", err, ErrNoCoordinates)
	}
}
