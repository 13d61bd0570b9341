/*
 * screening.go, part of goElem.
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

import "fmt"

// SlaterScreening computes the screening constant for an electron in the
// shell (n, l) with the empirical rules of Slater, Phys. Rev. 36, 57 (1930):
//
// For an s or p electron, the other electrons of the same n (s and p only)
// screen 0.35 each (0.30 when n is 1), those in the n-1 shell screen 0.85
// each, and everything deeper screens fully.
//
// For a d or f electron, the other electrons of the same (n, l) screen 0.35
// each, while every other electron of the same n and everything below n
// screens fully.
//
// Only s, p, d and f are valid targets; any other label fails with
// ErrBadSubshell.
func (c *ElecConf) SlaterScreening(n int, l string) (float64, error) {
	if c == nil {
		panic(ErrNilConf)
	}
	coeff := 0.35
	if n == 1 {
		coeff = 0.30
	}
	switch l {
	case "s", "p":
		vale := -1.0 //the electron being screened doesn't screen itself
		var adjacent, inner float64
		for _, k := range c.Conf.keys {
			e := float64(c.Conf.occ[k])
			switch {
			case k.N == n && (k.L == "s" || k.L == "p"):
				vale += e
			case k.N == n-1:
				adjacent += 0.85 * e
			case k.N >= 1 && k.N <= n-2:
				inner += e
			}
		}
		return adjacent + inner + vale*coeff, nil
	case "d", "f":
		vale := -1.0
		var sameShell, inner float64
		for _, k := range c.Conf.keys {
			e := float64(c.Conf.occ[k])
			switch {
			case k.N == n && k.L == l:
				vale += e
			case k.N == n:
				sameShell += e
			case k.N >= 1 && k.N < n:
				inner += e
			}
		}
		return sameShell + inner + vale*coeff, nil
	default:
		return 0, CError{fmt.Sprintf("%s for Slater screening: %s", ErrBadSubshell, l), []string{"SlaterScreening"}}
	}
}

// DefaultN resolves the principal quantum number used when the caller does
// not give one: the outermost occupied shell of the configuration.
func DefaultN(c *ElecConf) (int, error) {
	n, err := c.MaxN()
	if err != nil {
		return 0, errDecorate(err, "DefaultN")
	}
	return n, nil
}

// DefaultSubshell resolves the subshell used when the caller does not give
// one: the occupied subshell at n with the largest azimuthal quantum number.
// It fails with ErrNoSubshellAtN when nothing is occupied at n.
func DefaultSubshell(c *ElecConf, n int) (string, error) {
	if c == nil {
		panic(ErrNilConf)
	}
	best := -1
	for _, k := range c.Conf.keys {
		if k.N != n {
			continue
		}
		if idx := subshellIndex(k.L); idx > best {
			best = idx
		}
	}
	if best < 0 {
		return "", CError{fmt.Sprintf("%s: n=%d", ErrNoSubshellAtN, n), []string{"DefaultSubshell"}}
	}
	return Subshells[best], nil
}
