// SPDX-License-Identifier: MIT

// Command spectra inspects the singular value spectrum of a matrix.
//
// It reads a CSV file (one matrix row per line), runs the SVD engine,
// prints rank, condition number and determinant, and renders the spectrum
// as a line-and-scatter PNG plot.
//
// Usage:
//
//	spectra -in matrix.csv -out spectrum.png [-ulps 3]
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvlalg/factor"
	"github.com/katalvlaran/lvlalg/matrix"
)

func main() {
	in := flag.String("in", "", "input CSV file, one matrix row per line")
	out := flag.String("out", "spectrum.png", "output PNG file for the spectrum plot")
	ulps := flag.Int("ulps", factor.DefaultUlps, "error margin in ULPs for tolerance decisions")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	m, err := readMatrix(*in)
	if err != nil {
		log.Fatalf("spectra: %v", err)
	}

	if err = report(m, *out, *ulps); err != nil {
		log.Fatalf("spectra: %v", err)
	}
}

// report runs the decomposition, prints the summary and writes the plot.
func report(m *matrix.Dense, out string, ulps int) error {
	s := factor.NewSVD(m, factor.WithUlps(ulps))

	sv, err := s.SingularValues()
	if err != nil {
		return err
	}
	rank, err := s.Rank()
	if err != nil {
		return err
	}
	cond, err := s.Condition()
	if err != nil {
		return err
	}
	converged, err := s.Converged()
	if err != nil {
		return err
	}

	fmt.Printf("matrix:    %dx%d\n", m.Rows(), m.Cols())
	fmt.Printf("rank:      %d\n", rank)
	fmt.Printf("condition: %g\n", cond)
	if m.IsSquare() {
		det, dErr := s.Determinant()
		if dErr != nil {
			return dErr
		}
		fmt.Printf("det:       %g\n", det)
	}
	if !converged {
		fmt.Println("warning: sweep cap reached, results are best-effort")
	}

	return plotSpectrum(sv, out)
}

// plotSpectrum renders the singular values, largest first, as a
// line-and-scatter plot with a log-scaled value axis.
func plotSpectrum(sv []float64, out string) error {
	pts := make(plotter.XYs, 0, len(sv))
	for i, v := range sv {
		if v > 0 {
			pts = append(pts, plotter.XY{X: float64(i + 1), Y: v})
		}
	}

	p := plot.New()
	p.Title.Text = "Singular value spectrum"
	p.X.Label.Text = "index"
	p.Y.Label.Text = "σ"
	if len(pts) > 0 && pts[0].Y/pts[len(pts)-1].Y > 100 {
		// A wide spectrum reads better on a log axis.
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{}
	}

	line, scatter, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	p.Add(line, scatter)

	return p.Save(6*vg.Inch, 4*vg.Inch, out)
}

// readMatrix parses a CSV file into a Dense, validating rectangularity.
func readMatrix(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, 0, len(records))
	for i, rec := range records {
		row := make([]float64, len(rec))
		for j, field := range rec {
			v, pErr := strconv.ParseFloat(field, 64)
			if pErr != nil {
				return nil, fmt.Errorf("row %d, column %d: %w", i+1, j+1, pErr)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("row %d, column %d: %w", i+1, j+1, matrix.ErrNaNInf)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return matrix.FromRows(rows)
}
