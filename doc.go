/*
 * doc.go, part of goElem.
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

/*Package elem provides electron configurations and the atomic properties
derived from them.


	**goElem capabilities**

    Parses ground-state electron configuration strings, including the
	usual noble-gas core abbreviations ("[Ar] 3d10 4s2 4p2"), into an
	ordered shell model split into core and valence shells.

    Sorts shell models into the physical electron-filling order
	(1s, 2s, 2p, 3s, 3p, 4s, 3d, 4p, ...) and renders them back to text.

    Computes effective nuclear charges, either with Slater's rules
	(Slater, Phys. Rev. 36, 57 (1930)) or from the tabulated SCF screening
	constants of Clementi and Raimondi (J. Chem. Phys. 38, 2686 (1963);
	J. Chem. Phys. 47, 1300 (1967)).

    Computes the reactivity descriptors of conceptual DFT: absolute
	electronegativity, absolute hardness and softness, for the neutral
	atom or for any cation.

    Derives mass properties (mass number, exact mass) from isotopic
	compositions.

    Ships reference data for a set of well-characterized elements, so the
	above can be used without an external data source.

The subpackage elemjson serializes atoms and computed properties as JSON
(optionally zstd-compressed) for communication with programs written in other
languages. The subpackage elemplot draws ionization-energy series and
effective-charge trends with gonum/plot.

All computations here are pure functions over immutable inputs. Atoms can be
processed concurrently with no coordination, as no package-level state is ever
mutated.*/
package elem
