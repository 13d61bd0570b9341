/*
 * plot.go, part of goElem.
 *
 * Copyright 2023 The goElem developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package elemplot draws the trends that make the derived atomic properties
//easiest to eyeball: the ionization-energy series of one atom, and the
//effective nuclear charge across a range of atoms. Plots are returned as
//gonum/plot objects, or written to an io.Writer; no files are opened here.
package elemplot

import (
	"fmt"
	"image/color"
	"io"
	"sort"

	elem "github.com/goelem/goelem"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Error is the error type for plotting failures. It fullfills elem.Error.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string { return err.message }

// Decorate adds new information to the error.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

const (
	NilData    = "nil or empty data given"
	NoEnergies = "atom has no ionization energies on record"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

// IonizationPlot builds a plot of the ionization-energy series of at,
// ionization degree against energy in eV.
func IonizationPlot(at *elem.Atom, title string) (*plot.Plot, error) {
	if at == nil {
		return nil, Error{NilData, []string{"IonizationPlot"}}
	}
	if len(at.IonEnergies) == 0 {
		return nil, Error{fmt.Sprintf("%s: %s", NoEnergies, at.Symbol), []string{"IonizationPlot"}}
	}
	degrees := make([]int, 0, len(at.IonEnergies))
	for d := range at.IonEnergies {
		degrees = append(degrees, d)
	}
	sort.Ints(degrees)
	pts := make(plotter.XYs, len(degrees))
	for i, d := range degrees {
		pts[i].X = float64(d)
		pts[i].Y = at.IonEnergies[d]
	}
	p := basicPlot(title, "Ionization degree", "Energy (eV)")
	l, s, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, err
	}
	l.Color = color.RGBA{B: 255, A: 255}
	s.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
	p.Add(l, s)
	return p, nil
}

// ZeffTrend builds a plot of the valence-shell effective nuclear charge
// (see elem.ZeffValence) across the given atoms, atomic number against Zeff.
// Atoms for which the method fails (say, Clementi without tabulated
// constants) make the whole plot fail; filter beforehand if that is not
// wanted.
func ZeffTrend(atoms []*elem.Atom, method, title string) (*plot.Plot, error) {
	if len(atoms) == 0 {
		return nil, Error{NilData, []string{"ZeffTrend"}}
	}
	pts := make(plotter.XYs, len(atoms))
	ys := make([]float64, len(atoms))
	for i, at := range atoms {
		zeff, err := at.ZeffValence(method)
		if err != nil {
			return nil, err
		}
		pts[i].X = float64(at.Z)
		pts[i].Y = zeff
		ys[i] = zeff
	}
	p := basicPlot(title, "Atomic number", "Zeff")
	p.Y.Min = 0
	p.Y.Max = floats.Max(ys) * 1.05
	l, s, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, err
	}
	l.Color = color.RGBA{B: 255, A: 255}
	s.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
	p.Add(l, s)
	return p, nil
}

// Write renders p to out in the given image format ("png", "svg", "pdf",
// ...), at a fixed 15x10 cm size.
func Write(p *plot.Plot, out io.Writer, format string) error {
	wt, err := p.WriterTo(15*vg.Centimeter, 10*vg.Centimeter, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(out)
	return err
}
