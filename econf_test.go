/*
 * econf_test.go, part of goElem.
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
	"testing"
)

// TestParseRoundTrip checks that a canonically ordered configuration string
// with explicit occupancies survives parse+sort+render unchanged.
func TestParseRoundTrip(Te *testing.T) {
	s := "1s2 2s2 2p6 3s2 3p6 4s2 3d10"
	ec, err := ParseConf(s)
	if err != nil {
		Te.Fatal(err)
	}
	ec.Sort()
	if got := ec.String(); got != s {
		Te.Errorf("round trip: got %q, want %q", got, s)
	}
	fmt.Println("parsed and rendered:", ec)
}

// TestSort checks the electron-filling order on a scrambled configuration.
func TestSort(Te *testing.T) {
	ec, err := ParseConf("3d10 4s2 3p6 1s2 3s2 2p6 2s2")
	if err != nil {
		Te.Fatal(err)
	}
	ec.Sort()
	want := "1s2 2s2 2p6 3s2 3p6 4s2 3d10"
	if got := ec.String(); got != want {
		Te.Errorf("sorted order: got %q, want %q", got, want)
	}
}

// TestAbbrevExpansion checks that a noble-gas core expands to the same
// configuration as the explicit string.
func TestAbbrevExpansion(Te *testing.T) {
	abbr, err := ParseConf("[Ne] 3s2 3p6")
	if err != nil {
		Te.Fatal(err)
	}
	full, err := ParseConf("1s2 2s2 2p6 3s2 3p6")
	if err != nil {
		Te.Fatal(err)
	}
	if abbr.Conf.Len() != full.Conf.Len() {
		Te.Fatalf("conf sizes differ: %d vs %d", abbr.Conf.Len(), full.Conf.Len())
	}
	for _, k := range full.Conf.Keys() {
		ea, _ := abbr.Conf.Get(k)
		ef, _ := full.Conf.Get(k)
		if ea != ef {
			Te.Errorf("shell %v: %d electrons from abbreviation, %d explicit", k, ea, ef)
		}
	}
	if abbr.Core.Len() != 3 || abbr.Valence.Len() != 2 {
		Te.Errorf("core/valence split: got %d/%d, want 3/2", abbr.Core.Len(), abbr.Valence.Len())
	}
}

// TestValenceOverridesCore checks the last-write-wins rule when a shell
// appears both in the noble-gas core and in the explicit tokens.
func TestValenceOverridesCore(Te *testing.T) {
	ec, err := ParseConf("[Ne] 2p5")
	if err != nil {
		Te.Fatal(err)
	}
	if e, ok := ec.Conf.Get(Shell{2, "p"}); !ok || e != 5 {
		Te.Errorf("2p occupancy: got %d (present %v), want 5", e, ok)
	}
	if ec.Conf.Len() != 3 { //1s, 2s, 2p
		Te.Errorf("conf size: got %d, want 3", ec.Conf.Len())
	}
}

// TestLenientTokens checks that tokens outside the shell grammar are skipped,
// that a lone subshell letter means occupancy 1, and that matching is
// case-sensitive.
func TestLenientTokens(Te *testing.T) {
	ec, err := ParseConf("1s2 (calc) 2s2 2P6 ; 3d")
	if err != nil {
		Te.Fatal(err)
	}
	want := map[Shell]int{{1, "s"}: 2, {2, "s"}: 2, {3, "d"}: 1}
	if ec.Conf.Len() != len(want) {
		Te.Fatalf("conf: got %q, want 3 shells", ec.String())
	}
	for k, e := range want {
		if got, _ := ec.Conf.Get(k); got != e {
			Te.Errorf("shell %v: got %d, want %d", k, got, e)
		}
	}
	//a lowercase bracketed symbol is not an abbreviation, just an ignored token
	ec, err = ParseConf("[ar] 3s1")
	if err != nil {
		Te.Fatal(err)
	}
	if ec.Core.Len() != 0 || ec.Conf.Len() != 1 {
		Te.Errorf("lowercase abbreviation not skipped: %q", ec.String())
	}
}

// TestUnknownAbbrev checks that an unrecognized bracketed symbol is a hard error.
func TestUnknownAbbrev(Te *testing.T) {
	_, err := ParseConf("[Xx] 3s1")
	if err == nil {
		Te.Fatal("expected an error for [Xx]")
	}
	if !strings.Contains(err.Error(), ErrUnknownAbbrev) {
		Te.Errorf("wrong error: %v", err)
	}
	fmt.Println("got the expected error:", err)
}

// TestEmptyConf checks that empty input parses to an empty, usable model,
// and that MaxN on it is the only hard failure.
func TestEmptyConf(Te *testing.T) {
	for _, s := range []string{"", "   ", "\t"} {
		ec, err := ParseConf(s)
		if err != nil {
			Te.Fatalf("empty input %q: %v", s, err)
		}
		if ec.Conf.Len() != 0 || ec.String() != "" {
			Te.Errorf("empty input %q: got %q", s, ec.String())
		}
		if _, err := ec.MaxN(); err == nil {
			Te.Error("MaxN on empty configuration should fail")
		} else if !strings.Contains(err.Error(), ErrEmptyConf) {
			Te.Errorf("wrong error: %v", err)
		}
	}
}

// TestMaxNSortInvariant checks that sorting only changes iteration order.
func TestMaxNSortInvariant(Te *testing.T) {
	ec, err := ParseConf("[Ar] 3d10 4s2 4p2")
	if err != nil {
		Te.Fatal(err)
	}
	before, err := ec.MaxN()
	if err != nil {
		Te.Fatal(err)
	}
	ec.Sort()
	after, err := ec.MaxN()
	if err != nil {
		Te.Fatal(err)
	}
	if before != after || before != 4 {
		Te.Errorf("MaxN changed under sort: %d vs %d (want 4)", before, after)
	}
	if ec.Conf.Len() != 8 {
		Te.Errorf("conf size changed under sort: %d", ec.Conf.Len())
	}
}

// TestDefaultResolution checks the two-step resolution of the default (n, l).
func TestDefaultResolution(Te *testing.T) {
	ec, err := ParseConf("[Ar] 3d10 4s2 4p2") //germanium
	if err != nil {
		Te.Fatal(err)
	}
	n, err := DefaultN(ec)
	if err != nil {
		Te.Fatal(err)
	}
	if n != 4 {
		Te.Errorf("default n: got %d, want 4", n)
	}
	l, err := DefaultSubshell(ec, n)
	if err != nil {
		Te.Fatal(err)
	}
	if l != "p" {
		Te.Errorf("default subshell: got %q, want p", l)
	}
	if _, err := DefaultSubshell(ec, 5); err == nil {
		Te.Error("expected an error for an unoccupied quantum number")
	} else if !strings.Contains(err.Error(), ErrNoSubshellAtN) {
		Te.Errorf("wrong error: %v", err)
	}
}

// TestShellMapLastWins checks the Set replacement semantics directly.
func TestShellMapLastWins(Te *testing.T) {
	m := NewShellMap()
	m.Set(Shell{2, "p"}, 3)
	m.Set(Shell{1, "s"}, 2)
	m.Set(Shell{2, "p"}, 6)
	if m.Len() != 2 {
		Te.Fatalf("len: got %d, want 2", m.Len())
	}
	if e, _ := m.Get(Shell{2, "p"}); e != 6 {
		Te.Errorf("last write should win: got %d", e)
	}
	if got := m.String(); got != "2p6 1s2" { //insertion order kept
		Te.Errorf("iteration order: got %q", got)
	}
}
