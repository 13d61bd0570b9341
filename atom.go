/*
 * atom.go, part of goElem.
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
	"strings"

	"gonum.org/v1/gonum/floats"
)

// The recognized methods for effective nuclear charge calculations.
const (
	Slater   = "slater"   //Slater, Phys. Rev. 36, 57 (1930)
	Clementi = "clementi" //Clementi and Raimondi, J. Chem. Phys. 38, 2686 (1963); Clementi, J. Chem. Phys. 47, 1300 (1967)
)

// Isotope holds the data of one isotope of an element: its mass in atomic
// mass units, its natural abundance as a fraction, and its mass number.
type Isotope struct {
	Mass       float64
	Abundance  float64
	MassNumber int
}

// Atom holds the per-element data that the derived-property calculations
// work on. The electron configuration is parsed once, when the Atom is
// built; everything else is plain reference data supplied by the caller
// (or by the built-in table, see RefAtom).
type Atom struct {
	Symbol string
	Name   string
	Z      int //atomic number
	EConf  string
	EC     *ElecConf
	//IonEnergies maps the ionization degree (1 for the first electron
	//removed from the neutral atom) to the ionization energy in eV.
	IonEnergies map[int]float64
	//ElectronAffinity is the electron affinity in eV. Many elements have
	//no stable anion, so the value is only meaningful if HasAffinity is true.
	ElectronAffinity float64
	HasAffinity      bool
	//Screening maps (n, l) to the tabulated Clementi screening constant.
	Screening map[Shell]float64
	Isotopes  []Isotope
}

// MakeAtom builds an Atom with the given symbol, atomic number and electron
// configuration string, parsing the configuration in the process. The
// remaining fields can be filled afterwards. It returns an error on a
// non-positive atomic number or an unparseable configuration.
func MakeAtom(symbol string, z int, econf string) (*Atom, error) {
	if z < 1 {
		return nil, CError{fmt.Sprintf("%s: %d", ErrBadAtomicNumber, z), []string{"MakeAtom"}}
	}
	ec, err := ParseConf(econf)
	if err != nil {
		return nil, errDecorate(err, "MakeAtom")
	}
	at := new(Atom)
	at.Symbol = symbol
	at.Z = z
	at.EConf = econf
	at.EC = ec
	return at, nil
}

// Zeff returns the effective nuclear charge felt by an electron in the shell
// (n, l), i.e. the atomic number minus a screening constant. method must be
// Slater or Clementi (matched case-insensitively); the Clementi method needs
// a tabulated screening constant for (n, l) and fails with ErrNoScreening
// when there is none.
func (A *Atom) Zeff(n int, l, method string) (float64, error) {
	if A == nil {
		panic(ErrNilAtom)
	}
	if n < 1 {
		return 0, CError{fmt.Sprintf("%s: %d", ErrBadQuantumNumber, n), []string{"Zeff"}}
	}
	if subshellIndex(l) < 0 {
		return 0, CError{fmt.Sprintf("%s: %q", ErrBadSubshell, l), []string{"Zeff"}}
	}
	switch strings.ToLower(method) {
	case Slater:
		sigma, err := A.EC.SlaterScreening(n, l)
		if err != nil {
			return 0, errDecorate(err, "Zeff")
		}
		return float64(A.Z) - sigma, nil
	case Clementi:
		sigma, ok := A.Screening[Shell{n, l}]
		if !ok {
			return 0, CError{fmt.Sprintf("%s: %d%s", ErrNoScreening, n, l), []string{"Zeff"}}
		}
		return float64(A.Z) - sigma, nil
	default:
		return 0, CError{fmt.Sprintf("%s: %q", ErrBadMethod, method), []string{"Zeff"}}
	}
}

// ZeffValence is Zeff for the outermost occupied shell: n defaults to the
// maximum principal quantum number of the configuration and l to the deepest
// occupied subshell there (see DefaultN and DefaultSubshell).
func (A *Atom) ZeffValence(method string) (float64, error) {
	if A == nil {
		panic(ErrNilAtom)
	}
	n, err := DefaultN(A.EC)
	if err != nil {
		return 0, errDecorate(err, "ZeffValence")
	}
	l, err := DefaultSubshell(A.EC, n)
	if err != nil {
		return 0, errDecorate(err, "ZeffValence")
	}
	return A.Zeff(n, l, method)
}

// Electrons returns the number of electrons of the neutral atom.
func (A *Atom) Electrons() int { return A.Z }

// Protons returns the number of protons.
func (A *Atom) Protons() int { return A.Z }

// MassNumber returns the mass number of the most abundant natural isotope.
// It fails with ErrNoIsotopes if the atom has no isotopes on record.
func (A *Atom) MassNumber() (int, error) {
	if len(A.Isotopes) == 0 {
		return 0, CError{ErrNoIsotopes, []string{"MassNumber"}}
	}
	best := A.Isotopes[0]
	for _, iso := range A.Isotopes[1:] {
		if iso.Abundance > best.Abundance {
			best = iso
		}
	}
	return best.MassNumber, nil
}

// Neutrons returns the number of neutrons of the most abundant natural isotope.
func (A *Atom) Neutrons() (int, error) {
	mn, err := A.MassNumber()
	if err != nil {
		return 0, errDecorate(err, "Neutrons")
	}
	return mn - A.Z, nil
}

// ExactMass returns the atomic mass computed from the isotopic composition,
// i.e. the abundance-weighted mean of the isotope masses.
func (A *Atom) ExactMass() (float64, error) {
	if len(A.Isotopes) == 0 {
		return 0, CError{ErrNoIsotopes, []string{"ExactMass"}}
	}
	masses := make([]float64, len(A.Isotopes))
	abundances := make([]float64, len(A.Isotopes))
	for i, iso := range A.Isotopes {
		masses[i] = iso.Mass
		abundances[i] = iso.Abundance
	}
	return floats.Dot(masses, abundances), nil
}

// String returns "Z symbol name", as in "8 O Oxygen".
func (A *Atom) String() string {
	return fmt.Sprintf("%d %s %s", A.Z, A.Symbol, A.Name)
}
