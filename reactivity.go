/*
 * reactivity.go, part of goElem.
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

//The reactivity descriptors of conceptual DFT: absolute electronegativity,
//absolute hardness and softness, after Parr and Pearson, J. Am. Chem. Soc.
//105, 7512 (1983).
//
//Missing reference data (say, no measured electron affinity) is a normal
//condition for many elements, so these functions distinguish it from actual
//failures: they return ok==false and a nil error when the needed energies
//are simply not on record, and a non-nil error only on invalid usage
//(a negative charge).

package elem

import "fmt"

// AbsEleneg returns the absolute (Mulliken) electronegativity at the given
// ionization charge, in eV. For the neutral atom (charge 0) it is
// (I1+A)/2, with I1 the first ionization energy and A the electron affinity;
// for a cation of the given positive charge it is the mean of the ionization
// energies bracketing that charge. ok is false when the needed energies are
// not on record. A negative charge fails with ErrBadCharge.
func (A *Atom) AbsEleneg(charge int) (float64, bool, error) {
	i, a, ok, err := A.energyWindow(charge, "AbsEleneg")
	if err != nil || !ok {
		return 0, false, err
	}
	return (i + a) * 0.5, true, nil
}

// Hardness returns the absolute hardness at the given ionization charge, in
// eV: (I1-A)/2 for the neutral atom, and the half-difference of the
// bracketing ionization energies for a cation. ok and error behave as in
// AbsEleneg.
func (A *Atom) Hardness(charge int) (float64, bool, error) {
	i, a, ok, err := A.energyWindow(charge, "Hardness")
	if err != nil || !ok {
		return 0, false, err
	}
	return (i - a) * 0.5, true, nil
}

// Softness returns the absolute softness 1/(2*eta), with eta the hardness at
// the given charge, in 1/eV. ok and error behave as in Hardness. When the
// hardness is exactly zero the division yields +Inf, which is returned as is.
func (A *Atom) Softness(charge int) (float64, bool, error) {
	eta, ok, err := A.Hardness(charge)
	if err != nil {
		return 0, false, errDecorate(err, "Softness")
	}
	if !ok {
		return 0, false, nil
	}
	return 1.0 / (2.0 * eta), true, nil
}

// energyWindow returns the pair of energies that the reactivity descriptors
// at the given charge are built from: (I1, A) for charge 0, and
// (I(charge+1), I(charge)) for a positive charge.
func (A *Atom) energyWindow(charge int, caller string) (upper, lower float64, ok bool, err error) {
	if A == nil {
		panic(ErrNilAtom)
	}
	if charge < 0 {
		return 0, 0, false, CError{fmt.Sprintf("%s, got: %d", ErrBadCharge, charge), []string{caller}}
	}
	if charge == 0 {
		i1, found := A.IonEnergies[1]
		if !found || !A.HasAffinity {
			return 0, 0, false, nil
		}
		return i1, A.ElectronAffinity, true, nil
	}
	ilow, ok1 := A.IonEnergies[charge]
	ihigh, ok2 := A.IonEnergies[charge+1]
	if !ok1 || !ok2 {
		return 0, 0, false, nil
	}
	return ihigh, ilow, true, nil
}
