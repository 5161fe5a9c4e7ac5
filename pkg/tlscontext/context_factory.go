/*
 * Copyright (c) 2023 Zander Schwid & Co. LLC.
 * SPDX-License-Identifier: BUSL-1.1
 */

package tlscontext

import (
	"crypto/tls"
	"reflect"
	"unicode/utf8"

	"github.com/crawlframework/crawltls/pkg/tlsconfig"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrInvalidHostname = errors.New("invalid hostname")

/**
ContextFactory produces one per-connection TLS configuration for every
outbound netloc. Implementations must be read-only after construction so that
in-flight connection attempts can call them concurrently.
 */
type ContextFactory interface {

	CreatorForNetloc(hostname []byte, port int) (*ClientTLSOptions, error)
}

/**
LegacyContextFactory is the deprecated low-level accessor kept for callers
that bypass the per-netloc hook. New implementations should provide
CreatorForNetloc instead.
 */
type LegacyContextFactory interface {

	GetContext(hostname string, port int) (*tls.Config, error)
}

var ContextFactoryClass = reflect.TypeOf((*ContextFactory)(nil)).Elem()

/**
ClientContextFactory is the non-peer-certificate verifying context factory.

The default method is MethodTLS, which negotiates the protocol version the
same way the OpenSSL SSLv23/TLS method does. All fields are fixed at
construction time.
 */
type ClientContextFactory struct {
	method         tlsconfig.Method
	verboseLogging bool
	ciphers        tlsconfig.AcceptableCiphers
	caps           tlsconfig.Capabilities
	log            *zap.Logger
}

/**
NewClientContextFactory builds the base factory. A nil method selects the
best-available one reported by the capability probe. An invalid cipher
specification fails here, not at connection time.
 */
func NewClientContextFactory(method *tlsconfig.Method, verboseLogging bool, cipherSpec string, log *zap.Logger) (*ClientContextFactory, error) {

	caps := tlsconfig.Probe(tlsconfig.StandardLibrary)

	effective := caps.Method
	if method != nil {
		effective = *method
	}

	ciphers, err := tlsconfig.AcceptableCiphersFromString(cipherSpec)
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &ClientContextFactory{
		method:         effective,
		verboseLogging: verboseLogging,
		ciphers:        ciphers,
		caps:           caps,
		log:            log,
	}, nil
}

func (t *ClientContextFactory) Method() tlsconfig.Method {
	return t.method
}

func (t *ClientContextFactory) CertificateOptions() tlsconfig.CertificateOptions {
	return tlsconfig.NewCertificateOptions(t.method, t.ciphers)
}

// GetContext is kept for old-style callers that bypass CreatorForNetloc.
// It applies the legacy-server-connect bit OR-ed with every available
// disable-legacy-protocol bit onto the handshake context.
func (t *ClientContextFactory) GetContext(hostname string, port int) (*tls.Config, error) {

	opts := t.CertificateOptions().
		WithOptions(t.caps.LegacyServerConnect | t.caps.DisableLegacyProtocols())

	return opts.NewHandshakeContext(), nil
}

func (t *ClientContextFactory) CreatorForNetloc(hostname []byte, port int) (*ClientTLSOptions, error) {

	name, err := decodeASCIIHostname(hostname)
	if err != nil {
		return nil, err
	}

	cfg, err := t.GetContext(name, port)
	if err != nil {
		return nil, err
	}

	return NewClientTLSOptions(name, cfg, t.verboseLogging, t.log), nil
}

// Hostnames cross this boundary as byte strings; anything outside ASCII is a
// caller contract violation.
func decodeASCIIHostname(hostname []byte) (string, error) {
	if len(hostname) == 0 {
		return "", errors.Wrap(ErrInvalidHostname, "empty hostname")
	}
	for _, c := range hostname {
		if c >= utf8.RuneSelf {
			return "", errors.Wrapf(ErrInvalidHostname, "non-ascii byte 0x%x in hostname '%s'", c, string(hostname))
		}
	}
	return string(hostname), nil
}
