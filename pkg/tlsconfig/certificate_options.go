/*
 * Copyright (c) 2023 Zander Schwid & Co. LLC.
 * SPDX-License-Identifier: BUSL-1.1
 */

package tlsconfig

import (
	"crypto/rand"
	"crypto/tls"
)

/**
CertificateOptions is the resolved bundle of method, cipher policy and
protocol-disable options. It is built once per factory, treated as immutable
and shared read-only across concurrent connection attempts.

Peer verification is disabled here on purpose: turning it on requires the
caller to supply trust roots, which is what the browser factory does instead.
 */
type CertificateOptions struct {
	method         Method
	ciphers        AcceptableCiphers
	options        Option
	verify         bool
	fixBrokenPeers bool
}

func NewCertificateOptions(method Method, ciphers AcceptableCiphers) CertificateOptions {
	return CertificateOptions{
		method:         method,
		ciphers:        ciphers,
		verify:         false,
		fixBrokenPeers: true,
	}
}

func (t CertificateOptions) Method() Method {
	return t.method
}

func (t CertificateOptions) Ciphers() AcceptableCiphers {
	return t.ciphers
}

func (t CertificateOptions) Options() Option {
	return t.options
}

func (t CertificateOptions) Verify() bool {
	return t.verify
}

// WithOptions returns a copy with the given disable options OR-ed in.
func (t CertificateOptions) WithOptions(flags Option) CertificateOptions {
	t.options |= flags
	return t
}

/**
NewHandshakeContext derives a fresh *tls.Config from the options. Every call
allocates a new value, so per-connection mutation never leaks across hosts.

Disable bits raise the minimum protocol version, but never above the method's
own ceiling: a pinned legacy method stays usable and the conflicting bit
degrades to a no-op.
 */
func (t CertificateOptions) NewHandshakeContext() *tls.Config {

	minVersion, maxVersion := t.method.VersionBounds()

	if t.options.Has(OpNoTLSv1) && minVersion < tls.VersionTLS11 {
		minVersion = tls.VersionTLS11
	}
	if t.options.Has(OpNoTLSv11) && minVersion < tls.VersionTLS12 {
		minVersion = tls.VersionTLS12
	}
	if minVersion > maxVersion {
		minVersion = maxVersion
	}

	cfg := &tls.Config{
		Rand:               rand.Reader,
		MinVersion:         minVersion,
		MaxVersion:         maxVersion,
		InsecureSkipVerify: !t.verify,
	}

	if !t.ciphers.IsDefault() {
		cfg.CipherSuites = t.ciphers.Suites()
	}

	if t.fixBrokenPeers || t.options.Has(OpLegacyServerConnect) {
		cfg.Renegotiation = tls.RenegotiateOnceAsClient
	}

	return cfg
}
