// Copyright (C) 2025 FleetMesh Project
//
// This file is part of fleetmesh-go.
//
// fleetmesh-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// fleetmesh-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with fleetmesh-go.  If not, see <https://www.gnu.org/licenses/>.

// Package errs classifies the errors this module produces so callers can
// branch on category with errors.As instead of string matching.
package errs

import "fmt"

// Category names one of the error classes a FleetMesh component can
// raise.
type Category string

const (
	Transport Category = "transport"
	Codec     Category = "codec"
	Auth      Category = "auth"
	Routing   Category = "routing"
	Protocol  Category = "protocol"
	Executor  Category = "executor"
)

// Error wraps an underlying error with the category that determines how
// a caller should react to it: a Transport error is local to one
// connection, an Auth error rejects a single envelope, a Routing error
// fails a single delegate/assign call, and so on.
type Error struct {
	Category Category
	Op       string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Category, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a categorized Error.
func New(cat Category, op string, err error) *Error {
	return &Error{Category: cat, Op: op, Err: err}
}
