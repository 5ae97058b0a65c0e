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

// Package transport carries envelopes over QUIC: self-signed TLS setup,
// zstd payload compression, and bounded stream framing. Authentication
// lives one layer up, in envelope signatures (pkg/protocol), so the TLS
// handshake here only needs to stand up an encrypted channel, not verify
// who is on the other end of it.
package transport

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"fmt"
	"math/big"
	"net"
	"time"
)

// selfSignedHosts are the subject alternative names baked into every
// generated certificate. They cover loopback and wildcard-bind
// deployments; the identity they assert is never relied on for trust
// decisions.
var selfSignedHosts = []string{"fleetmesh.local", "localhost", "0.0.0.0", "127.0.0.1"}

// GenerateSelfSignedCert creates a fresh ECDSA P-256 certificate good for
// one year, suitable for ServerTLSConfig. Each call produces a distinct
// key; there is no shared CA.
func GenerateSelfSignedCert() (tls.Certificate, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("transport: generate key: %w", err)
	}

	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("transport: generate serial: %w", err)
	}

	template := &x509.Certificate{
		SerialNumber: serial,
		Subject:      pkix.Name{Organization: []string{"FleetMesh"}, CommonName: "fleetmesh-node"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(365 * 24 * time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth, x509.ExtKeyUsageClientAuth},
		IsCA:         true,
		BasicConstraintsValid: true,
	}
	for _, host := range selfSignedHosts {
		if ip := net.ParseIP(host); ip != nil {
			template.IPAddresses = append(template.IPAddresses, ip)
		} else {
			template.DNSNames = append(template.DNSNames, host)
		}
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("transport: create certificate: %w", err)
	}

	return tls.Certificate{Certificate: [][]byte{der}, PrivateKey: key}, nil
}

// ServerTLSConfig builds a TLS 1.3-only server config using a freshly
// generated self-signed certificate.
func ServerTLSConfig() (*tls.Config, error) {
	cert, err := GenerateSelfSignedCert()
	if err != nil {
		return nil, err
	}
	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS13,
		NextProtos:   []string{"fleetmesh"},
	}, nil
}

// ClientTLSConfig builds a TLS 1.3-only client config that accepts any
// certificate the peer presents. Peer identity is established at the
// message layer by Ed25519 signatures, not by the TLS handshake, so
// skipping certificate verification here does not weaken the system's
// authentication guarantees; it only means the QUIC layer does not also
// try to play that role.
func ClientTLSConfig() *tls.Config {
	return &tls.Config{
		MinVersion:         tls.VersionTLS13,
		NextProtos:         []string{"fleetmesh"},
		InsecureSkipVerify: true,
	}
}
