package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"text/template"

	"gonum.org/v1/gonum/mat"
)

// GaussErrorLine matches the error termination lines Gaussian leaves
// at the end of a failed log
var GaussErrorLine = regexp.MustCompile(`(?i)error termination`)

// Params are the computation parameters that make up the route
// section of an input file
type Params struct {
	Functional string
	Dispersion string
	Basis      string
	Charge     int
	Spin       int
}

// Route builds the route line for p. Every job asks for freq, since
// the enthalpy and free energy come out of the thermochemistry block,
// and pop=nbo for the natural population charges.
func (p Params) Route() string {
	route := fmt.Sprintf("#p %s/%s freq pop=nbo", p.Functional, p.Basis)
	if p.Dispersion != "" {
		route += " empiricaldispersion=" + p.Dispersion
	}
	return route
}

// comTmpl is the template for a Gaussian input file. The blank lines
// are part of the format, including the one the file ends with.
var comTmpl = template.Must(template.New("com").Parse(
	`%chk={{.Name}}.chk
{{.Route}}

{{.Title}}

{{.Charge}} {{.Spin}}
{{range .Geometry}}{{.}}
{{end}}
`))

// WriteInput writes the Gaussian input file for j to w
func (j *Job) WriteInput(w io.Writer) error {
	return comTmpl.Execute(w, struct {
		Name, Route, Title string
		Charge, Spin       int
		Geometry           []string
	}{
		Name:     j.Name,
		Route:    j.Params.Route(),
		Title:    fmt.Sprintf("%s.%04d", j.Name, j.ID),
		Charge:   j.Params.Charge,
		Spin:     j.Params.Spin,
		Geometry: j.Mol.XYZGeometry(),
	})
}

// Energies holds the three scalars reported for every job
type Energies struct {
	SCF      float64
	Enthalpy float64
	Free     float64
}

// ReadEnergies scans a Gaussian log for the last SCF energy and the
// thermochemical enthalpy and free energy, all in hartrees as
// printed. The values only count once the log reports normal
// termination: a log without the marker gives ErrEnergyNotFound, one
// that terminated without all three values ErrFinishedButNoEnergy.
func ReadEnergies(filename string) (Energies, error) {
	var e Energies
	f, err := os.Open(filename)
	if err != nil {
		return e, ErrFileNotFound
	}
	defer f.Close()
	var (
		i          int
		line       string
		scf        bool
		enthalpy   bool
		free       bool
		terminated bool
	)
	scanner := bufio.NewScanner(f)
	for i = 0; scanner.Scan(); i++ {
		line = scanner.Text()
		switch {
		case GaussErrorLine.MatchString(line):
			return e, ErrFileContainsError
		case strings.Contains(line, "SCF Done:"):
			fields := strings.Fields(line)
			if len(fields) < 5 {
				continue
			}
			v, err := strconv.ParseFloat(fields[4], 64)
			if err != nil {
				continue
			}
			// keep the last occurrence
			e.SCF = v
			scf = true
		case strings.Contains(line, "Sum of electronic and thermal Enthalpies="):
			if v, err := lastField(line); err == nil {
				e.Enthalpy = v
				enthalpy = true
			}
		case strings.Contains(line, "Sum of electronic and thermal Free Energies="):
			if v, err := lastField(line); err == nil {
				e.Free = v
				free = true
			}
		case strings.Contains(line, "Normal termination of Gaussian"):
			terminated = true
		}
	}
	switch {
	case i == 0:
		return e, ErrBlankOutput
	case !terminated:
		return e, ErrEnergyNotFound
	case !(scf && enthalpy && free):
		return e, ErrFinishedButNoEnergy
	}
	return e, nil
}

// lastField parses the last whitespace-separated field of line as a
// float64
func lastField(line string) (float64, error) {
	fields := strings.Fields(line)
	return strconv.ParseFloat(fields[len(fields)-1], 64)
}

// ReadNBOCharges pulls the per-atom charge column out of the natural
// population analysis summary in a Gaussian log. Five header lines
// follow the summary marker, then one row per atom with the charge in
// the third column.
func ReadNBOCharges(filename string, natoms int) ([]float64, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, ErrFileNotFound
	}
	defer f.Close()
	var (
		charges []float64
		skip    int
		table   bool
	)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if skip > 0 {
			skip--
			continue
		}
		line := scanner.Text()
		switch {
		case strings.Contains(line, "Summary of Natural Population Analysis:"):
			skip = 5
			table = true
		case table:
			fields := strings.Fields(line)
			if len(fields) < 3 {
				return nil, fmt.Errorf("ReadNBOCharges: short row %q", line)
			}
			v, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("ReadNBOCharges: bad charge in %q", line)
			}
			charges = append(charges, v)
			if len(charges) == natoms {
				return charges, nil
			}
		}
	}
	return nil, ErrNoNBOCharges
}

// ReadCoordinates extracts the first standard-orientation geometry
// from a Gaussian log as an natoms x 3 matrix in angstroms. The jobs
// here are single points, so the first block is the one.
func ReadCoordinates(filename string) (*mat.Dense, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, ErrFileNotFound
	}
	defer f.Close()
	var (
		skip   int
		geom   bool
		coords []float64
	)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if skip > 0 {
			skip--
			continue
		}
		line := scanner.Text()
		switch {
		case strings.Contains(line, "Standard orientation:"):
			skip = 4
			geom = true
		case geom && strings.Contains(line, "-----"):
			if len(coords) == 0 {
				return nil, ErrNoCoordinates
			}
			return mat.NewDense(len(coords)/3, 3, coords), nil
		case geom:
			fields := strings.Fields(line)
			if len(fields) < 6 {
				return nil, fmt.Errorf("ReadCoordinates: short row %q", line)
			}
			for _, v := range fields[3:6] {
				c, err := strconv.ParseFloat(v, 64)
				if err != nil {
					return nil, fmt.Errorf("ReadCoordinates: bad coordinate %q", v)
				}
				coords = append(coords, c)
			}
		}
	}
	return nil, ErrNoCoordinates
}
