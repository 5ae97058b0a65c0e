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

package transport

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

var (
	sharedEncoder, _ = zstd.NewWriter(nil)
	sharedDecoder, _ = zstd.NewReader(nil)
)

// CompressPayload compresses data at zstd's default level. Every envelope
// is compressed before it is written to a stream, regardless of size.
func CompressPayload(data []byte) []byte {
	return sharedEncoder.EncodeAll(data, make([]byte, 0, len(data)))
}

// DecompressPayload reverses CompressPayload.
func DecompressPayload(data []byte) ([]byte, error) {
	out, err := sharedDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("transport: decompress payload: %w", err)
	}
	return out, nil
}
