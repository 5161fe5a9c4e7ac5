/*
 * Copyright (c) 2023 Zander Schwid & Co. LLC.
 * SPDX-License-Identifier: BUSL-1.1
 */

package tlscontext

import (
	"crypto/x509"

	"github.com/crawlframework/crawltls/pkg/tlsconfig"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

/**
BrowserContextFactory keeps the base method and cipher resolution but roots
trust in the platform trust store and lets crypto/tls run standard chain
validation. Hosts whose CA is not shipped by the platform are rejected by the
handshake; that is intentional, stricter behavior than the base factory.
 */
type BrowserContextFactory struct {
	ClientContextFactory
}

func NewBrowserContextFactory(method *tlsconfig.Method, verboseLogging bool, cipherSpec string, log *zap.Logger) (*BrowserContextFactory, error) {

	base, err := NewClientContextFactory(method, verboseLogging, cipherSpec, log)
	if err != nil {
		return nil, err
	}

	return &BrowserContextFactory{ClientContextFactory: *base}, nil
}

func (t *BrowserContextFactory) CreatorForNetloc(hostname []byte, port int) (*ClientTLSOptions, error) {

	name, err := decodeASCIIHostname(hostname)
	if err != nil {
		return nil, err
	}

	roots, err := x509.SystemCertPool()
	if err != nil {
		return nil, errors.Wrap(err, "platform trust store is not available")
	}

	cfg := t.CertificateOptions().NewHandshakeContext()
	cfg.InsecureSkipVerify = false
	cfg.RootCAs = roots

	return NewClientTLSOptions(name, cfg, t.verboseLogging, t.log), nil
}
