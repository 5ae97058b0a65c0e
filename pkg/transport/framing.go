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
	"io"
)

// MaxFrameSize bounds how many bytes ReadFramed will accept from a single
// stream. Each envelope gets its own fresh unidirectional stream, so this
// is also the effective maximum compressed-envelope size.
const MaxFrameSize = 64 * 1024

// WriteFramed compresses an encoded envelope and writes it in full to w.
// The caller is responsible for signaling end-of-message to the peer
// (e.g. closing the underlying stream) after this returns.
func WriteFramed(w io.Writer, encoded []byte) error {
	compressed := CompressPayload(encoded)
	if _, err := w.Write(compressed); err != nil {
		return fmt.Errorf("transport: write frame: %w", err)
	}
	return nil
}

// ReadFramed reads every byte r offers up to MaxFrameSize and decompresses
// it into a decoded envelope buffer. A stream that delivers more than
// MaxFrameSize bytes is rejected rather than silently truncated.
func ReadFramed(r io.Reader) ([]byte, error) {
	limited := io.LimitReader(r, MaxFrameSize+1)
	compressed, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("transport: read frame: %w", err)
	}
	if len(compressed) > MaxFrameSize {
		return nil, fmt.Errorf("transport: frame exceeds %d bytes", MaxFrameSize)
	}

	decoded, err := DecompressPayload(compressed)
	if err != nil {
		return nil, err
	}
	return decoded, nil
}
