/*
 * errors.go, part of goElem.
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

// Error is the interface for errors that all packages in this library implement. The Decorate
// method allows to add and retrieve info from the error, without changing its type or wrapping
// it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Decorate adds information when passing the error up. Each call returns the
	//resulting "decoration" slice of strings. If passed an empty string, it just returns the current value.
	//The decorate slice should contain the functions in the calling stack plus, for each function, any
	//relevant information, in the format "FunctionName: Extra info".
}

// CError (for "configuration error") is the concrete error type of the elem package.
// It fullfills the Error interface.
type CError struct {
	message string
	deco    []string
}

func (err CError) Error() string { return err.message }

// Decorate adds the dec string to the decoration slice of strings of the error,
// and returns the resulting slice.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate is a helper that asserts that err implements elem.Error and decorates it
// with the caller's name before returning it. Used with any other error type it will panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

// The messages used to build the CError values returned by this package. Callers that need
// to tell the failure modes apart can match the beginning of Error() against these.
const (
	ErrUnknownAbbrev    = "unknown noble gas abbreviation"
	ErrEmptyConf        = "empty electron configuration"
	ErrBadQuantumNumber = "principal quantum number must be a positive integer"
	ErrBadSubshell      = "invalid subshell label"
	ErrBadMethod        = "unsupported screening method"
	ErrNoScreening      = "no tabulated screening constant"
	ErrBadCharge        = "charge must be a non-negative integer"
	ErrNoSubshellAtN    = "no occupied subshell at the given quantum number"
	ErrUnknownElement   = "element not in the reference table"
	ErrBadAtomicNumber  = "atomic number must be a positive integer"
	ErrNoIsotopes       = "no isotopes on record"
)

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// For errors, use Error/CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilAtom     = PanicMsg("goElem: nil atom")
	ErrNilConf     = PanicMsg("goElem: nil electron configuration")
	ErrNilShellMap = PanicMsg("goElem: nil shell map")
)
