/*
 * json.go, part of goElem.
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

package elemjson

import (
	"encoding/json"
	"io"
	"strings"

	elem "github.com/goelem/goelem"
	"github.com/klauspost/compress/zstd"
)

// An easily JSON-serializable error type.
type Error struct {
	deco         []string
	IsError      bool //If this is false (no error) all the other fields will be at their zero-values.
	InAtom       bool //If error, was it while encoding/decoding an atom record?
	InReactivity bool //Was it while building a reactivity report?
	Function     string //which go function gave the error
	Message      string //the error itself
}

// Error implements the error interface.
func (J *Error) Error() string {
	return J.Message
}

// Decorate will add the dec string to the decoration slice of strings of the
// error, and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Marshal serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

// NewError takes an error and some additional info to create an elemjson error.
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	switch where {
	case "atom":
		jerr.InAtom = true
	default:
		jerr.InReactivity = true
	}
	jerr.Function = function
	jerr.Message = err.Error()
	return jerr
}

// A ready-to-serialize container for one shell of a configuration.
type Shell struct {
	N   int
	L   string
	Occ int
}

// A ready-to-serialize container for an atom record. Conf carries the parsed
// configuration in canonical order, so consumers in other languages don't
// need their own parser. A nil ElectronAffinity means no affinity on record.
type Atom struct {
	Symbol           string
	Name             string
	Z                int
	EConf            string
	Conf             []Shell
	IonEnergies      map[int]float64
	ElectronAffinity *float64
}

// NewAtom builds the serializable container for at. The configuration is
// sorted into canonical order in the process.
func NewAtom(at *elem.Atom) *Atom {
	J := new(Atom)
	J.Symbol = at.Symbol
	J.Name = at.Name
	J.Z = at.Z
	J.EConf = at.EConf
	at.EC.Sort()
	for _, k := range at.EC.Conf.Keys() {
		e, _ := at.EC.Conf.Get(k)
		J.Conf = append(J.Conf, Shell{k.N, k.L, e})
	}
	J.IonEnergies = at.IonEnergies
	if at.HasAffinity {
		ea := at.ElectronAffinity
		J.ElectronAffinity = &ea
	}
	return J
}

// Assemble rebuilds an elem.Atom from the container, reparsing the
// configuration string.
func (J *Atom) Assemble() (*elem.Atom, *Error) {
	at, err := elem.MakeAtom(J.Symbol, J.Z, J.EConf)
	if err != nil {
		return nil, NewError("atom", "Assemble", err)
	}
	at.Name = J.Name
	at.IonEnergies = J.IonEnergies
	if J.ElectronAffinity != nil {
		at.ElectronAffinity = *J.ElectronAffinity
		at.HasAffinity = true
	}
	return at, nil
}

// Send marshals the atom record and writes it to out, returning an error or nil.
func (J *Atom) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(J); err != nil {
		return NewError("atom", "Send", err)
	}
	return nil
}

// SendCompressed is Send through a zstd-compressed stream.
func (J *Atom) SendCompressed(out io.Writer) *Error {
	zw, err := zstd.NewWriter(out)
	if err != nil {
		return NewError("atom", "SendCompressed", err)
	}
	if jerr := J.Send(zw); jerr != nil {
		zw.Close()
		return jerr
	}
	if err := zw.Close(); err != nil {
		return NewError("atom", "SendCompressed", err)
	}
	return nil
}

// DecodeAtom decodes one atom record from in.
func DecodeAtom(in io.Reader) (*Atom, *Error) {
	ret := new(Atom)
	dec := json.NewDecoder(in)
	if err := dec.Decode(ret); err != nil {
		return nil, NewError("atom", "DecodeAtom", err)
	}
	return ret, nil
}

// DecodeAtomCompressed decodes one atom record from a zstd-compressed stream.
func DecodeAtomCompressed(in io.Reader) (*Atom, *Error) {
	zr, err := zstd.NewReader(in)
	if err != nil {
		return nil, NewError("atom", "DecodeAtomCompressed", err)
	}
	defer zr.Close()
	return DecodeAtom(zr)
}

// Reactivity is a ready-to-serialize report of the reactivity descriptors of
// one atom at one ionization charge. Nil fields mean the quantity could not
// be computed from the data on record, which is a normal condition and not
// an error.
type Reactivity struct {
	Symbol    string
	Charge    int
	AbsEleneg *float64
	Hardness  *float64
	Softness  *float64
}

// NewReactivity computes the three descriptors for at at the given charge
// and packs them for serialization. Only invalid usage (a negative charge)
// produces an error.
func NewReactivity(at *elem.Atom, charge int) (*Reactivity, *Error) {
	J := &Reactivity{Symbol: at.Symbol, Charge: charge}
	chi, ok, err := at.AbsEleneg(charge)
	if err != nil {
		return nil, NewError("reactivity", "NewReactivity", err)
	}
	if ok {
		J.AbsEleneg = &chi
	}
	eta, ok, err := at.Hardness(charge)
	if err != nil {
		return nil, NewError("reactivity", "NewReactivity", err)
	}
	if ok {
		J.Hardness = &eta
	}
	s, ok, err := at.Softness(charge)
	if err != nil {
		return nil, NewError("reactivity", "NewReactivity", err)
	}
	if ok {
		J.Softness = &s
	}
	return J, nil
}

// Send marshals the report and writes it to out.
func (J *Reactivity) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(J); err != nil {
		return NewError("reactivity", "Send", err)
	}
	return nil
}

// DecodeReactivity decodes one reactivity report from in.
func DecodeReactivity(in io.Reader) (*Reactivity, *Error) {
	ret := new(Reactivity)
	dec := json.NewDecoder(in)
	if err := dec.Decode(ret); err != nil {
		return nil, NewError("reactivity", "DecodeReactivity", err)
	}
	return ret, nil
}
