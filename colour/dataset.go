// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colour

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// readRows reads the numeric rows of a CSV dataset, each having exactly
// cols columns. Blank lines, lines starting with # and a non numeric
// header row are skipped.
func readRows(r io.Reader, name string, cols int) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	var rows [][]float64
	for first := true; ; first = false {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) != cols {
			return nil, fmt.Errorf("%s: line %d: expected %d columns, got %d", name, line, cols, len(rec))
		}
		row := make([]float64, cols)
		for i, f := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				if first && i == 0 {
					row = nil
					break
				}
				return nil, fmt.Errorf("%s: line %d: column %d: %w", name, line, i+1, err)
			}
			row[i] = v
		}
		if row != nil {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: no data rows", name)
	}
	return rows, nil
}

// LoadSpectralDistribution reads a spectral distribution from CSV rows of
// wavelength and value.
func LoadSpectralDistribution(r io.Reader, name string) (*SpectralDistribution, error) {
	rows, err := readRows(r, name, 2)
	if err != nil {
		return nil, err
	}
	sd := &SpectralDistribution{Name: name, Wavelengths: make([]float64, len(rows)), Values: make([]float64, len(rows))}
	for i, row := range rows {
		sd.Wavelengths[i], sd.Values[i] = row[0], row[1]
	}
	return sd, sd.Validate()
}

// LoadMultiSpectralDistributions reads colour matching functions from CSV
// rows of wavelength and three values.
func LoadMultiSpectralDistributions(r io.Reader, name string) (*MultiSpectralDistributions, error) {
	rows, err := readRows(r, name, 4)
	if err != nil {
		return nil, err
	}
	ms := &MultiSpectralDistributions{Name: name, Wavelengths: make([]float64, len(rows)), Values: make([]Vec3, len(rows))}
	for i, row := range rows {
		ms.Wavelengths[i] = row[0]
		ms.Values[i] = Vec3{row[1], row[2], row[3]}
	}
	return ms, ms.Validate()
}

// OpenMultiSpectralDistributions loads colour matching functions from a
// CSV file, named after the file unless name is given.
func OpenMultiSpectralDistributions(filename, name string) (*MultiSpectralDistributions, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if name == "" {
		name = filename
	}
	return LoadMultiSpectralDistributions(f, name)
}

// OpenSpectralDistribution loads a spectral distribution from a CSV file,
// named after the file unless name is given.
func OpenSpectralDistribution(filename, name string) (*SpectralDistribution, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if name == "" {
		name = filename
	}
	return LoadSpectralDistribution(f, name)
}
