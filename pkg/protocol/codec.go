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

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

const (
	fieldMsgID       protowire.Number = 1
	fieldFrom        protowire.Number = 2
	fieldTo          protowire.Number = 3
	fieldType        protowire.Number = 4
	fieldPayloadJSON protowire.Number = 5
	fieldExtra       protowire.Number = 6
	fieldTimestamp   protowire.Number = 7
	fieldSessionID   protowire.Number = 8
	fieldSignature   protowire.Number = 9
)

// Encode serializes e using the protobuf wire format. Zero-valued fields
// are omitted, matching proto3 semantics, so Encode/Decode round-trips
// even as new optional fields are added in the future.
func (e *Envelope) Encode() []byte {
	var b []byte

	if e.MsgID != 0 {
		b = protowire.AppendTag(b, fieldMsgID, protowire.VarintType)
		b = protowire.AppendVarint(b, e.MsgID)
	}
	if e.From != "" {
		b = protowire.AppendTag(b, fieldFrom, protowire.BytesType)
		b = protowire.AppendString(b, e.From)
	}
	if e.To != "" {
		b = protowire.AppendTag(b, fieldTo, protowire.BytesType)
		b = protowire.AppendString(b, e.To)
	}
	if e.Type != MessageTypeUnspecified {
		b = protowire.AppendTag(b, fieldType, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(e.Type))
	}
	if e.PayloadJSON != "" {
		b = protowire.AppendTag(b, fieldPayloadJSON, protowire.BytesType)
		b = protowire.AppendString(b, e.PayloadJSON)
	}
	if len(e.Extra) > 0 {
		b = protowire.AppendTag(b, fieldExtra, protowire.BytesType)
		b = protowire.AppendBytes(b, e.Extra)
	}
	if e.Timestamp != 0 {
		b = protowire.AppendTag(b, fieldTimestamp, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(e.Timestamp))
	}
	if e.SessionID != 0 {
		b = protowire.AppendTag(b, fieldSessionID, protowire.VarintType)
		b = protowire.AppendVarint(b, e.SessionID)
	}
	if len(e.Signature) > 0 {
		b = protowire.AppendTag(b, fieldSignature, protowire.BytesType)
		b = protowire.AppendBytes(b, e.Signature)
	}

	return b
}

// Decode parses a buffer produced by Encode into a new Envelope. Unknown
// fields are skipped, not rejected, so older peers can read envelopes
// produced by a newer one.
func Decode(b []byte) (*Envelope, error) {
	e := &Envelope{}

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("protocol: decode tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		switch num {
		case fieldMsgID:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, fmt.Errorf("protocol: decode msg_id: %w", protowire.ParseError(n))
			}
			e.MsgID = v
			b = b[n:]
		case fieldFrom:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return nil, fmt.Errorf("protocol: decode from: %w", protowire.ParseError(n))
			}
			e.From = v
			b = b[n:]
		case fieldTo:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return nil, fmt.Errorf("protocol: decode to: %w", protowire.ParseError(n))
			}
			e.To = v
			b = b[n:]
		case fieldType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, fmt.Errorf("protocol: decode msg_type: %w", protowire.ParseError(n))
			}
			e.Type = MessageType(v)
			b = b[n:]
		case fieldPayloadJSON:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return nil, fmt.Errorf("protocol: decode payload_json: %w", protowire.ParseError(n))
			}
			e.PayloadJSON = v
			b = b[n:]
		case fieldExtra:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("protocol: decode extra_data: %w", protowire.ParseError(n))
			}
			e.Extra = append([]byte(nil), v...)
			b = b[n:]
		case fieldTimestamp:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, fmt.Errorf("protocol: decode timestamp: %w", protowire.ParseError(n))
			}
			e.Timestamp = int64(v)
			b = b[n:]
		case fieldSessionID:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, fmt.Errorf("protocol: decode session_id: %w", protowire.ParseError(n))
			}
			e.SessionID = v
			b = b[n:]
		case fieldSignature:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("protocol: decode signature: %w", protowire.ParseError(n))
			}
			e.Signature = append([]byte(nil), v...)
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, fmt.Errorf("protocol: skip unknown field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}

	return e, nil
}
