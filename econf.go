/*
 * econf.go, part of goElem.
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
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Subshells is the canonical subshell sequence. The index of a label in this
// slice is its azimuthal quantum number.
var Subshells = []string{"s", "p", "d", "f", "g", "h", "i", "j", "k"}

// subshellIndex returns the index of the label l in Subshells, or -1 if
// l is not a subshell label. Matching is case-sensitive: "P" is not a subshell.
func subshellIndex(l string) int {
	for i, v := range Subshells {
		if v == l {
			return i
		}
	}
	return -1
}

// nobleConf maps each noble gas symbol to its full ground-state configuration.
// The strings are kept fully expanded: the parser expands an abbreviation by
// parsing the corresponding entry, which therefore must never itself be abbreviated.
var nobleConf = map[string]string{
	"He": "1s2",
	"Ne": "1s2 2s2 2p6",
	"Ar": "1s2 2s2 2p6 3s2 3p6",
	"Kr": "1s2 2s2 2p6 3s2 3p6 4s2 3d10 4p6",
	"Xe": "1s2 2s2 2p6 3s2 3p6 4s2 3d10 4p6 5s2 4d10 5p6",
	"Rn": "1s2 2s2 2p6 3s2 3p6 4s2 3d10 4p6 5s2 4d10 5p6 6s2 4f14 5d10 6p6",
}

var (
	atomRe  = regexp.MustCompile(`^\[([A-Z][a-z]*)\]`)
	shellRe = regexp.MustCompile(`^(\d)([spdfghijk])(\d*)`)
)

// Shell identifies an electron subshell by its principal quantum number N
// and its subshell label L ("s", "p", "d", ...).
type Shell struct {
	N int
	L string
}

func (s Shell) String() string { return fmt.Sprintf("%d%s", s.N, s.L) }

// fillOrder is the primary sorting key for shells. Together with N as the
// secondary key it reproduces the physical electron-filling order
// (1s, 2s, 2p, 3s, 3p, 4s, 3d, 4p, ...).
func fillOrder(s Shell) int { return s.N + subshellIndex(s.L) }

// ShellMap is a mapping from shells to electron occupancies which remembers
// the insertion order of its keys. Setting an existing key replaces its
// occupancy without moving it.
type ShellMap struct {
	keys []Shell
	occ  map[Shell]int
}

// NewShellMap returns an empty, ready to use ShellMap.
func NewShellMap() *ShellMap {
	return &ShellMap{keys: make([]Shell, 0, 5), occ: make(map[Shell]int)}
}

// Set maps the shell k to the occupancy e. If k is already present, the last
// written occupancy wins and the key keeps its original position.
func (m *ShellMap) Set(k Shell, e int) {
	if m == nil {
		panic(ErrNilShellMap)
	}
	if _, ok := m.occ[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.occ[k] = e
}

// Get returns the occupancy of the shell k and whether k is present at all.
func (m *ShellMap) Get(k Shell) (int, bool) {
	e, ok := m.occ[k]
	return e, ok
}

// Len returns the number of shells in the map.
func (m *ShellMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the shells in the map, in iteration order. The returned slice
// is a copy and can be modified freely.
func (m *ShellMap) Keys() []Shell {
	ret := make([]Shell, len(m.keys))
	copy(ret, m.keys)
	return ret
}

// Sort reorders the map into the canonical electron-filling order. Only the
// iteration order changes, never the contents.
func (m *ShellMap) Sort() {
	if m == nil {
		panic(ErrNilShellMap)
	}
	sort.SliceStable(m.keys, func(i, j int) bool {
		a, b := m.keys[i], m.keys[j]
		if fa, fb := fillOrder(a), fillOrder(b); fa != fb {
			return fa < fb
		}
		return a.N < b.N
	})
}

// String renders each shell as "{n}{l}{e}", joined by single spaces, in
// iteration order. Callers needing the canonical order must Sort first.
func (m *ShellMap) String() string {
	toks := make([]string, 0, len(m.keys))
	for _, k := range m.keys {
		toks = append(toks, fmt.Sprintf("%d%s%d", k.N, k.L, m.occ[k]))
	}
	return strings.Join(toks, " ")
}

// ElecConf is the parsed shell model of an electron configuration string.
// Core holds the shells implied by a noble-gas abbreviation (empty if none
// was used), Valence the explicitly listed shells, and Conf their union,
// where a valence entry overrides a core entry for the same shell.
// An ElecConf is built once, at atom-construction time, and not modified
// afterwards (sorting only reorders iteration).
type ElecConf struct {
	Core    *ShellMap
	Valence *ShellMap
	Conf    *ShellMap
}

// matchShell matches tok against the shell-token grammar: one digit (n), one
// subshell letter (l), optionally followed by digits (e, the occupancy).
// A missing occupancy means 1, which covers lone valence markers like "5d".
func matchShell(tok string) (Shell, int, bool) {
	m := shellRe.FindStringSubmatch(tok)
	if m == nil {
		return Shell{}, 0, false
	}
	n, _ := strconv.Atoi(m[1])
	e := 1
	if m[3] != "" {
		e, _ = strconv.Atoi(m[3])
	}
	return Shell{n, m[2]}, e, true
}

// ParseConf parses a ground-state electron configuration string, e.g.
// "1s2 2s2 2p2" or "[Ar] 3d10 4s2 4p2", into a shell model. The first
// whitespace-separated token may be a bracketed noble gas symbol, whose own
// configuration becomes the core of the model; parsing an unrecognized
// bracketed symbol fails with ErrUnknownAbbrev. Tokens that do not match the
// shell grammar are silently skipped, so stray separators or annotations in
// tabulated strings are tolerated. An empty or whitespace-only string yields
// an empty (but usable) model and no error.
func ParseConf(confstr string) (*ElecConf, error) {
	ec := &ElecConf{Core: NewShellMap(), Valence: NewShellMap(), Conf: NewShellMap()}
	items := strings.Fields(confstr)
	if len(items) == 0 {
		return ec, nil
	}
	if m := atomRe.FindStringSubmatch(items[0]); m != nil {
		full, ok := nobleConf[m[1]]
		if !ok {
			return nil, CError{fmt.Sprintf("%s: %s", ErrUnknownAbbrev, m[1]), []string{"ParseConf"}}
		}
		items = items[1:]
		for _, tok := range strings.Fields(full) {
			if sh, e, ok := matchShell(tok); ok {
				ec.Core.Set(sh, e)
			}
		}
	}
	for _, tok := range items {
		if sh, e, ok := matchShell(tok); ok {
			ec.Valence.Set(sh, e)
		}
	}
	for _, k := range ec.Core.keys {
		ec.Conf.Set(k, ec.Core.occ[k])
	}
	for _, k := range ec.Valence.keys {
		ec.Conf.Set(k, ec.Valence.occ[k])
	}
	return ec, nil
}

// Sort reorders Conf into the canonical electron-filling order. It must be
// called before rendering the configuration for display, and before any
// computation that iterates shells below a given principal quantum number.
func (c *ElecConf) Sort() {
	if c == nil {
		panic(ErrNilConf)
	}
	c.Conf.Sort()
}

// MaxN returns the largest principal quantum number among the occupied
// shells. It fails with ErrEmptyConf if the configuration has no shells.
func (c *ElecConf) MaxN() (int, error) {
	if c == nil || c.Conf.Len() == 0 {
		return 0, CError{ErrEmptyConf, []string{"MaxN"}}
	}
	max := 0
	for _, k := range c.Conf.keys {
		if k.N > max {
			max = k.N
		}
	}
	return max, nil
}

// String renders Conf in its current iteration order.
func (c *ElecConf) String() string {
	return c.Conf.String()
}
