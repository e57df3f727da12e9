package main

import (
	"errors"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestXYZGeometry(t *testing.T) {
	mol, err := NewMolecule(mat.NewDense(2, 3, []float64{
		0.0, 0.0, 0.0,
		0.0, 0.0, 0.74,
	}), []int{1, 1}, nil)
	if err != nil {
		t.Fatalf("got an error %q, didn't want one", err)
	}
	got := mol.XYZGeometry()
	want := []string{
		"H                      0.000000                  0.000000                  0.000000",
		"H                      0.000000                  0.000000                  0.740000",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func TestNewMolecule(t *testing.T) {
	t.Run("length mismatch", func(t *testing.T) {
		_, err := NewMolecule(mat.NewDense(2, 3, nil), []int{1}, nil)
		if !errors.Is(err, ErrAtomMismatch) {
			t.Errorf("got %v, wanted %v\n", err, ErrAtomMismatch)
		}
	})
	t.Run("unknown atomic number", func(t *testing.T) {
		_, err := NewMolecule(mat.NewDense(1, 3, nil), []int{99}, nil)
		if !errors.Is(err, ErrUnknownElement) {
			t.Errorf("got %v, wanted %v\n", err, ErrUnknownElement)
		}
	})
	t.Run("wrong column count", func(t *testing.T) {
		_, err := NewMolecule(mat.NewDense(2, 2, nil), []int{1, 1}, nil)
		if err == nil {
			t.Errorf("wanted an error, didn't get one")
		}
	})
}

func TestFormula(t *testing.T) {
	tests := []struct {
		elements []int
		want     string
	}{
		{[]int{1, 1}, "H2"},
		{[]int{6, 1, 1, 1, 1}, "CH4"},
		{[]int{7, 1, 1, 1}, "H3N"},
		{[]int{6, 6, 1, 1, 1, 1, 1, 1, 8}, "C2H6O"},
	}
	for _, test := range tests {
		mol, _ := NewMolecule(
			mat.NewDense(len(test.elements), 3, nil),
			test.elements, nil)
		got := mol.Formula()
		if got != test.want {
			t.Errorf("got %v, wanted %v\n", got, test.want)
		}
	}
}
