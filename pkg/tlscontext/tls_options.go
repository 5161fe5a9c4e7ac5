/*
 * Copyright (c) 2023 Zander Schwid & Co. LLC.
 * SPDX-License-Identifier: BUSL-1.1
 */

package tlscontext

import (
	"crypto/tls"

	"github.com/crawlframework/crawltls/pkg/tlsconfig"
	"go.uber.org/zap"
)

/**
ClientTLSOptions is the per-connection TLS configuration. One value is
produced for every CreatorForNetloc call, owned by that connection attempt
only and discarded after the handshake starts.
 */
type ClientTLSOptions struct {
	hostname            string
	config              *tls.Config
	verboseLogging      bool
	acceptableProtocols []string
	log                 *zap.Logger
}

func NewClientTLSOptions(hostname string, config *tls.Config, verboseLogging bool, log *zap.Logger) *ClientTLSOptions {

	if log == nil {
		log = zap.NewNop()
	}

	config.ServerName = hostname

	t := &ClientTLSOptions{
		hostname:       hostname,
		config:         config,
		verboseLogging: verboseLogging,
		log:            log,
	}

	if verboseLogging {
		t.installHandshakeLogging()
	}

	return t
}

func (t *ClientTLSOptions) Hostname() string {
	return t.hostname
}

// Config exposes the low-level handshake context bound to this connection.
func (t *ClientTLSOptions) Config() *tls.Config {
	return t.config
}

func (t *ClientTLSOptions) VerboseLogging() bool {
	return t.verboseLogging
}

func (t *ClientTLSOptions) AcceptableProtocols() []string {
	out := make([]string, len(t.acceptableProtocols))
	copy(out, t.acceptableProtocols)
	return out
}

func (t *ClientTLSOptions) setAcceptableProtocols(protocols []string) {
	t.acceptableProtocols = make([]string, len(protocols))
	copy(t.acceptableProtocols, protocols)
	t.config.NextProtos = t.AcceptableProtocols()
}

// installHandshakeLogging observes the completed handshake without changing
// its outcome; when verification is disabled the chains are simply nil.
func (t *ClientTLSOptions) installHandshakeLogging() {

	verify := t.config.VerifyConnection

	t.config.VerifyConnection = func(cs tls.ConnectionState) error {

		fields := []zap.Field{
			zap.String("hostname", t.hostname),
			zap.String("version", tlsconfig.TLSVersionString(cs.Version)),
			zap.String("cipher", tlsconfig.TLSCipherSuiteString(cs.CipherSuite)),
			zap.String("protocol", cs.NegotiatedProtocol),
		}

		if len(cs.PeerCertificates) > 0 {
			leaf := cs.PeerCertificates[0]
			fields = append(fields,
				zap.String("subject", leaf.Subject.String()),
				zap.String("issuer", leaf.Issuer.String()))
		}

		t.log.Debug("TLS handshake", fields...)

		if verify != nil {
			return verify(cs)
		}
		return nil
	}
}
