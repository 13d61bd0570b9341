/*
 * atomicdata.go, part of goElem.
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

package elem

import (
	"fmt"
	"sort"
)

//Reference data for a set of well-characterized elements, so the library is
//usable without an external data source. Note that just the main-group
//elements up to Ca plus a few common transition metals are present; anything
//else must be supplied by the caller through MakeAtom.

// A map for assigning atomic numbers to element symbols.
var symbolZ = map[string]int{
	"H": 1, "He": 2, "Li": 3, "Be": 4, "B": 5, "C": 6, "N": 7, "O": 8,
	"F": 9, "Ne": 10, "Na": 11, "Mg": 12, "Al": 13, "Si": 14, "P": 15,
	"S": 16, "Cl": 17, "Ar": 18, "K": 19, "Ca": 20,
	"Fe": 26, "Cu": 29, "Zn": 30, "Ge": 32,
}

var symbolName = map[string]string{
	"H": "Hydrogen", "He": "Helium", "Li": "Lithium", "Be": "Beryllium",
	"B": "Boron", "C": "Carbon", "N": "Nitrogen", "O": "Oxygen",
	"F": "Fluorine", "Ne": "Neon", "Na": "Sodium", "Mg": "Magnesium",
	"Al": "Aluminium", "Si": "Silicon", "P": "Phosphorus", "S": "Sulfur",
	"Cl": "Chlorine", "Ar": "Argon", "K": "Potassium", "Ca": "Calcium",
	"Fe": "Iron", "Cu": "Copper", "Zn": "Zinc", "Ge": "Germanium",
}

// Ground-state electron configurations, abbreviated with noble-gas cores
// the way reference tables print them.
var symbolEConf = map[string]string{
	"H":  "1s1",
	"He": "1s2",
	"Li": "[He] 2s1",
	"Be": "[He] 2s2",
	"B":  "[He] 2s2 2p1",
	"C":  "[He] 2s2 2p2",
	"N":  "[He] 2s2 2p3",
	"O":  "[He] 2s2 2p4",
	"F":  "[He] 2s2 2p5",
	"Ne": "[He] 2s2 2p6",
	"Na": "[Ne] 3s1",
	"Mg": "[Ne] 3s2",
	"Al": "[Ne] 3s2 3p1",
	"Si": "[Ne] 3s2 3p2",
	"P":  "[Ne] 3s2 3p3",
	"S":  "[Ne] 3s2 3p4",
	"Cl": "[Ne] 3s2 3p5",
	"Ar": "[Ne] 3s2 3p6",
	"K":  "[Ar] 4s1",
	"Ca": "[Ar] 4s2",
	"Fe": "[Ar] 3d6 4s2",
	"Cu": "[Ar] 3d10 4s1",
	"Zn": "[Ar] 3d10 4s2",
	"Ge": "[Ar] 3d10 4s2 4p2",
}

// Ionization energies in eV, keyed by ionization degree.
// Values from the NIST Atomic Spectra Database.
var symbolIonEnergies = map[string]map[int]float64{
	"H":  {1: 13.5984},
	"He": {1: 24.5874, 2: 54.4178},
	"Li": {1: 5.3917, 2: 75.6400, 3: 122.4543},
	"Be": {1: 9.3227, 2: 18.2112, 3: 153.8962},
	"B":  {1: 8.2980, 2: 25.1548, 3: 37.9306},
	"C":  {1: 11.2603, 2: 24.3833, 3: 47.8878, 4: 64.4939},
	"N":  {1: 14.5341, 2: 29.6013, 3: 47.4492},
	"O":  {1: 13.6181, 2: 35.1211, 3: 54.9355},
	"F":  {1: 17.4228, 2: 34.9708, 3: 62.7084},
	"Ne": {1: 21.5645, 2: 40.9630, 3: 63.4500},
	"Na": {1: 5.1391, 2: 47.2864, 3: 71.6200},
	"Mg": {1: 7.6462, 2: 15.0353, 3: 80.1437},
	"Al": {1: 5.9858, 2: 18.8286, 3: 28.4476},
	"Si": {1: 8.1517, 2: 16.3459, 3: 33.4930},
	"P":  {1: 10.4867, 2: 19.7695, 3: 30.2027},
	"S":  {1: 10.3600, 2: 23.3379, 3: 34.7900},
	"Cl": {1: 12.9676, 2: 23.8140, 3: 39.6100},
	"Ar": {1: 15.7596, 2: 27.6297, 3: 40.7400},
	"K":  {1: 4.3407, 2: 31.6300, 3: 45.8060},
	"Ca": {1: 6.1132, 2: 11.8717, 3: 50.9131},
	"Fe": {1: 7.9025, 2: 16.1990, 3: 30.6520},
	"Cu": {1: 7.7264, 2: 20.2924, 3: 36.8410},
	"Zn": {1: 9.3942, 2: 17.9644, 3: 39.7230},
	"Ge": {1: 7.8994, 2: 15.9346, 3: 34.2241},
}

// Electron affinities in eV. Elements with no stable anion (He, Be, N, Ne,
// Mg, Ar, Zn among the ones here) are simply absent.
var symbolAffinity = map[string]float64{
	"H":  0.7542,
	"Li": 0.6181,
	"B":  0.2797,
	"C":  1.2621,
	"O":  1.4611,
	"F":  3.4012,
	"Na": 0.5479,
	"Al": 0.4328,
	"Si": 1.3895,
	"P":  0.7465,
	"S":  2.0771,
	"Cl": 3.6127,
	"K":  0.5015,
	"Ca": 0.0246,
	"Fe": 0.1510,
	"Cu": 1.2358,
	"Ge": 1.2327,
}

// Clementi screening constants per (n, l), derived from the SCF effective
// charges of Clementi and Raimondi, J. Chem. Phys. 38, 2686 (1963).
// Only H through Ca are tabulated here; the heavier elements of the built-in
// set have none, which the Clementi method reports as missing data.
var symbolScreening = map[string]map[Shell]float64{
	"H":  {{1, "s"}: 0.000},
	"He": {{1, "s"}: 0.312},
	"Li": {{1, "s"}: 0.309, {2, "s"}: 1.721},
	"Be": {{1, "s"}: 0.315, {2, "s"}: 2.088},
	"B":  {{1, "s"}: 0.320, {2, "s"}: 2.424, {2, "p"}: 2.579},
	"C":  {{1, "s"}: 0.327, {2, "s"}: 2.783, {2, "p"}: 2.864},
	"N":  {{1, "s"}: 0.335, {2, "s"}: 3.153, {2, "p"}: 3.166},
	"O":  {{1, "s"}: 0.342, {2, "s"}: 3.508, {2, "p"}: 3.547},
	"F":  {{1, "s"}: 0.350, {2, "s"}: 3.872, {2, "p"}: 3.900},
	"Ne": {{1, "s"}: 0.358, {2, "s"}: 4.242, {2, "p"}: 4.242},
	"Na": {{1, "s"}: 0.374, {2, "s"}: 4.429, {2, "p"}: 4.198, {3, "s"}: 8.493},
	"Mg": {{3, "s"}: 8.692},
	"Al": {{3, "s"}: 8.883, {3, "p"}: 8.934},
	"Si": {{3, "s"}: 9.097, {3, "p"}: 9.715},
	"P":  {{3, "s"}: 9.358, {3, "p"}: 10.114},
	"S":  {{3, "s"}: 9.633, {3, "p"}: 10.518},
	"Cl": {{3, "s"}: 9.932, {3, "p"}: 10.884},
	"Ar": {{3, "s"}: 10.243, {3, "p"}: 11.236},
	"K":  {{4, "s"}: 15.505},
	"Ca": {{4, "s"}: 15.602},
}

// Stable-isotope compositions: mass in u, natural abundance as a fraction,
// mass number.
var symbolIsotopes = map[string][]Isotope{
	"H": {{1.00782503, 0.999885, 1}, {2.01410178, 0.000115, 2}},
	"C": {{12.0000000, 0.9893, 12}, {13.00335484, 0.0107, 13}},
	"N": {{14.00307401, 0.99636, 14}, {15.00010890, 0.00364, 15}},
	"O": {{15.99491462, 0.99757, 16}, {16.99913176, 0.00038, 17}, {17.99915961, 0.00205, 18}},
	"Cl": {{34.96885268, 0.7576, 35}, {36.96590259, 0.2424, 37}},
	"Fe": {{53.93961050, 0.05845, 54}, {55.93493750, 0.91754, 56}, {56.93539400, 0.02119, 57}, {57.93327560, 0.00282, 58}},
	"Cu": {{62.92959750, 0.6915, 63}, {64.92778950, 0.3085, 65}},
}

// RefAtom builds an Atom from the built-in reference table, given its
// symbol. It fails with ErrUnknownElement for symbols not in the table.
// The returned Atom owns copies of the reference maps, so it can be
// modified without affecting later calls.
func RefAtom(symbol string) (*Atom, error) {
	z, ok := symbolZ[symbol]
	if !ok {
		return nil, CError{fmt.Sprintf("%s: %q", ErrUnknownElement, symbol), []string{"RefAtom"}}
	}
	at, err := MakeAtom(symbol, z, symbolEConf[symbol])
	if err != nil {
		return nil, errDecorate(err, "RefAtom")
	}
	at.Name = symbolName[symbol]
	at.IonEnergies = make(map[int]float64, len(symbolIonEnergies[symbol]))
	for deg, en := range symbolIonEnergies[symbol] {
		at.IonEnergies[deg] = en
	}
	if ea, found := symbolAffinity[symbol]; found {
		at.ElectronAffinity = ea
		at.HasAffinity = true
	}
	if sc, found := symbolScreening[symbol]; found {
		at.Screening = make(map[Shell]float64, len(sc))
		for sh, sigma := range sc {
			at.Screening[sh] = sigma
		}
	}
	at.Isotopes = append([]Isotope(nil), symbolIsotopes[symbol]...)
	return at, nil
}

// RefSymbols returns the symbols of the built-in reference table, ordered by
// atomic number.
func RefSymbols() []string {
	ret := make([]string, 0, len(symbolZ))
	for s := range symbolZ {
		ret = append(ret, s)
	}
	sort.Slice(ret, func(i, j int) bool { return symbolZ[ret[i]] < symbolZ[ret[j]] })
	return ret
}
