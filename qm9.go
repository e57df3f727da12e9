package main

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ReadXYZ parses one QM9-format record from r. The first line is the
// atom count N, the second the tab-separated property record, and the
// next N lines hold symbol, x, y, z, and an optional partial charge,
// separated by tabs. The property record and the charges are kept on
// the Molecule. Exactly N+2 lines are consumed, so the frequency,
// SMILES, and InChI lines trailing a full QM9 record are never read.
func ReadXYZ(r io.Reader) (*Molecule, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, fmt.Errorf("ReadXYZ: empty record")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || natoms < 1 {
		return nil, fmt.Errorf("ReadXYZ: bad atom count %q", scanner.Text())
	}
	if !scanner.Scan() {
		return nil, fmt.Errorf("ReadXYZ: record ends before the property line")
	}
	props := strings.Split(scanner.Text(), "\t")
	elements := make([]int, 0, natoms)
	coords := make([]float64, 0, 3*natoms)
	var charges []float64
	for i := 0; i < natoms; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("ReadXYZ: record ends at atom %d of %d",
				i+1, natoms)
		}
		line := scanner.Text()
		fields := CleanSplit(line, "\t")
		if len(fields) < 4 {
			return nil, fmt.Errorf("ReadXYZ: malformed atom line %q", line)
		}
		z, ok := ATOMIC_NUMBERS[strings.TrimSpace(fields[0])]
		if !ok {
			return nil, fmt.Errorf("%w: %q in line %q",
				ErrUnknownElement, fields[0], line)
		}
		elements = append(elements, z)
		for _, f := range fields[1:4] {
			v, err := parseCoord(f)
			if err != nil {
				return nil, fmt.Errorf("ReadXYZ: %v in line %q", err, line)
			}
			coords = append(coords, v)
		}
		if len(fields) > 4 {
			v, err := parseCoord(fields[4])
			if err != nil {
				return nil, fmt.Errorf("ReadXYZ: %v in line %q", err, line)
			}
			charges = append(charges, v)
		}
	}
	mol, err := NewMolecule(mat.NewDense(natoms, 3, coords), elements, props)
	if err != nil {
		return nil, err
	}
	// the charge column only counts when every atom line has it
	if len(charges) == natoms {
		mol.charges = charges
	}
	return mol, nil
}

// parseCoord converts one coordinate field to a float64, rewriting
// the *^ exponent notation found in QM9 files: 1.999*^-6 is 1.999e-6
func parseCoord(field string) (float64, error) {
	field = strings.Replace(strings.TrimSpace(field), "*^", "e", 1)
	return strconv.ParseFloat(field, 64)
}

// FileID pulls the integer id out of a member name following the
// <prefix>_<id>.xyz convention, so dsgdb9nsd_012503.xyz gives 12503
func FileID(name string) (int, error) {
	base := TrimExt(filepath.Base(name))
	us := strings.LastIndex(base, "_")
	if us < 0 {
		return 0, fmt.Errorf("FileID: no id in %q", name)
	}
	id, err := strconv.Atoi(base[us+1:])
	if err != nil {
		return 0, fmt.Errorf("FileID: bad id in %q", name)
	}
	return id, nil
}
