/*
 * errors.go, part of tlucmp.
 *
 * Copyright 2024 The tlucmp authors
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

package tlusty

import "fmt"

//Error is the interface for the errors returned by this library. Decorate adds
//the name of a function (and, optionally, extra info in the form "Function: info")
//to the error as it is passed up, without changing its type. Each call returns the
//current decoration slice. An empty string only returns it.
type Error interface {
	Error() string
	Decorate(string) []string
}

//ParseError is returned whenever the content of a model file can't be
//understood. Line is 1-based, 0 means the problem is not tied to one line.
type ParseError struct {
	FileName string
	Line     int
	Message  string
	deco     []string
}

func (E *ParseError) Error() string {
	if E.Line > 0 {
		return fmt.Sprintf("TLUSTY model %s, line %d: %s", E.FileName, E.Line, E.Message)
	}
	return fmt.Sprintf("TLUSTY model %s: %s", E.FileName, E.Message)
}

//Decorate adds new information to the error
func (E *ParseError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newParseError(filename string, line int, caller string, format string, a ...interface{}) *ParseError {
	return &ParseError{FileName: filename, Line: line, Message: fmt.Sprintf(format, a...), deco: []string{caller}}
}

//errDecorate decorates err with the caller's name if err implements Error.
//Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}

const (
	MalformedHeader   = "Malformed header, expected 'NDEPTH NUMPAR'"
	NotEnoughDepth    = "Not enough depth points"
	DepthOverrun      = "Depth point block has more values than NDEPTH"
	BadNumber         = "Can't parse number"
	TableNotDivisible = "Number of table values not divisible by NUMPAR"
	WrongTableSize    = "Number of table values differs from NDEPTH*NUMPAR"
)
