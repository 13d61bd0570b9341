/*
 * plot_test.go, part of goElem.
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

/*This provides some tests for the plotting functions, in the form of little
 * functions that have practical applications.*/

package elemplot

import (
	"bytes"
	"fmt"
	"testing"

	elem "github.com/goelem/goelem"
)

// TestIonizationPlot plots the ionization series of carbon into a PNG buffer.
func TestIonizationPlot(Te *testing.T) {
	c, err := elem.RefAtom("C")
	if err != nil {
		Te.Fatal(err)
	}
	p, err := IonizationPlot(c, "Carbon ionization energies")
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Write(p, &buf, "png"); err != nil {
		Te.Error(err)
	}
	if buf.Len() == 0 {
		Te.Error("wrote an empty image")
	}
	fmt.Println("ionization plot:", buf.Len(), "bytes of png")
}

// TestZeffTrend plots the Slater valence Zeff across the whole built-in
// table, which should never fail, and checks that Clementi on atoms without
// tabulated constants does fail.
func TestZeffTrend(Te *testing.T) {
	var atoms []*elem.Atom
	for _, s := range elem.RefSymbols() {
		at, err := elem.RefAtom(s)
		if err != nil {
			Te.Fatal(err)
		}
		atoms = append(atoms, at)
	}
	p, err := ZeffTrend(atoms, elem.Slater, "Slater Zeff of the built-in elements")
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Write(p, &buf, "png"); err != nil {
		Te.Error(err)
	}
	//Fe, Cu, Zn and Ge carry no Clementi constants, so this must fail
	if _, err := ZeffTrend(atoms, elem.Clementi, "should fail"); err == nil {
		Te.Error("Clementi trend over untabulated atoms should fail")
	}
	if _, err := ZeffTrend(nil, elem.Slater, "empty"); err == nil {
		Te.Error("empty atom list should fail")
	}
}
