package main

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ATOMIC_SYMBOLS gives the element symbol for each atomic number.
// QM9-style datasets only reach F, but the table runs through Kr so
// other small-molecule sets parse too.
var ATOMIC_SYMBOLS = []string{
	1: "H", 2: "He",
	3: "Li", 4: "Be", 5: "B", 6: "C", 7: "N", 8: "O", 9: "F", 10: "Ne",
	11: "Na", 12: "Mg", 13: "Al", 14: "Si", 15: "P", 16: "S", 17: "Cl",
	18: "Ar", 19: "K", 20: "Ca", 21: "Sc", 22: "Ti", 23: "V", 24: "Cr",
	25: "Mn", 26: "Fe", 27: "Co", 28: "Ni", 29: "Cu", 30: "Zn",
	31: "Ga", 32: "Ge", 33: "As", 34: "Se", 35: "Br", 36: "Kr",
}

// ATOMIC_NUMBERS is the inverse of ATOMIC_SYMBOLS
var ATOMIC_NUMBERS = make(map[string]int)

func init() {
	for z, sym := range ATOMIC_SYMBOLS {
		if sym != "" {
			ATOMIC_NUMBERS[sym] = z
		}
	}
}

// Molecule is an ordered set of atoms: row i of coords holds the
// Cartesian coordinates in angstroms for the atom whose atomic number
// is elements[i]. The tab-separated property record and the per-atom
// partial charges from the source file ride along untouched in props
// and charges. A Molecule is not modified after construction.
type Molecule struct {
	elements []int
	coords   *mat.Dense
	props    []string
	charges  []float64
}

// NewMolecule builds a Molecule from an natoms x 3 coordinate matrix
// and a parallel slice of atomic numbers. The two must agree in
// length, and every atomic number must be in the table.
func NewMolecule(coords *mat.Dense, elements []int, props []string) (*Molecule, error) {
	r, c := coords.Dims()
	if c != 3 {
		return nil, fmt.Errorf("NewMolecule: want 3 coordinate columns, got %d", c)
	}
	if r != len(elements) {
		return nil, fmt.Errorf("%w: %d coordinate rows, %d elements",
			ErrAtomMismatch, r, len(elements))
	}
	for _, z := range elements {
		if z < 1 || z >= len(ATOMIC_SYMBOLS) {
			return nil, fmt.Errorf("%w: atomic number %d", ErrUnknownElement, z)
		}
	}
	return &Molecule{elements: elements, coords: coords, props: props}, nil
}

// NAtoms returns the number of atoms in m
func (m *Molecule) NAtoms() int { return len(m.elements) }

// Elements returns the atomic numbers of m in atom order
func (m *Molecule) Elements() []int { return m.elements }

// Coords returns the natoms x 3 coordinate matrix of m in angstroms
func (m *Molecule) Coords() *mat.Dense { return m.coords }

// Props returns the property record m was parsed with, nil when it
// was built directly
func (m *Molecule) Props() []string { return m.props }

// Charges returns the partial charges of m in atom order, nil when
// the source had no charge column
func (m *Molecule) Charges() []float64 { return m.charges }

// XYZGeometry formats m as one line per atom, the element symbol
// followed by the three coordinates in fixed 6-decimal columns
func (m *Molecule) XYZGeometry() []string {
	lines := make([]string, len(m.elements))
	for i, z := range m.elements {
		lines[i] = fmt.Sprintf("%-5s%26.6f%26.6f%26.6f",
			ATOMIC_SYMBOLS[z],
			m.coords.At(i, 0), m.coords.At(i, 1), m.coords.At(i, 2))
	}
	return lines
}

// Formula builds the molecular formula of m with the element symbols
// in alphabetical order, like C2H6O for ethanol
func (m *Molecule) Formula() string {
	atoms := make(map[string]int)
	for _, z := range m.elements {
		atoms[ATOMIC_SYMBOLS[z]]++
	}
	toSort := make([]string, 0, len(atoms))
	for k := range atoms {
		toSort = append(toSort, k)
	}
	sort.Strings(toSort)
	var name strings.Builder
	for _, k := range toSort {
		name.WriteString(k)
		if v := atoms[k]; v > 1 {
			fmt.Fprintf(&name, "%d", v)
		}
	}
	return name.String()
}
