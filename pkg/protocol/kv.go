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

package protocol

import "strings"

// ParseKV parses a Create or Run command's payload, a ';'-separated list of
// 'key=value' pairs. Only "input" and "language" are recognized; unknown
// keys are ignored. Unset values take their defaults: input defaults to
// "", language defaults to "python".
func ParseKV(payload string) (input, language string) {
	language = "python"

	for _, part := range strings.Split(payload, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		switch key {
		case "input":
			input = value
		case "language":
			if value != "" {
				language = value
			}
		}
	}

	return input, language
}

// BuildKV is the inverse of ParseKV, used by clients constructing a Create
// or Run payload.
func BuildKV(input, language string) string {
	return "input=" + input + ";language=" + language
}
