/*
 * Copyright (c) 2023 Zander Schwid & Co. LLC.
 * SPDX-License-Identifier: BUSL-1.1
 */

package tlscontext

import (
	"github.com/pkg/errors"
)

var ErrIncompatibleFactory = errors.New("incompatible context factory")

/**
AcceptableProtocolsContextFactory wraps another context factory and overrides
the ALPN protocol list of every configuration it produces, e.g. to force
HTTP/2 or HTTP/1.1 negotiation. It holds no mutable state.
 */
type AcceptableProtocolsContextFactory struct {
	wrapped             ContextFactory
	acceptableProtocols []string
}

/**
NewAcceptableProtocolsContextFactory validates at construction that the
wrapped value actually resolves netlocs to per-connection configurations.
 */
func NewAcceptableProtocolsContextFactory(contextFactory interface{}, acceptableProtocols []string) (*AcceptableProtocolsContextFactory, error) {

	inner, ok := contextFactory.(ContextFactory)
	if !ok {
		return nil, errors.Wrapf(ErrIncompatibleFactory, "%T does not implement CreatorForNetloc", contextFactory)
	}

	protocols := make([]string, len(acceptableProtocols))
	copy(protocols, acceptableProtocols)

	return &AcceptableProtocolsContextFactory{
		wrapped:             inner,
		acceptableProtocols: protocols,
	}, nil
}

func (t *AcceptableProtocolsContextFactory) CreatorForNetloc(hostname []byte, port int) (*ClientTLSOptions, error) {

	options, err := t.wrapped.CreatorForNetloc(hostname, port)
	if err != nil {
		return nil, err
	}

	// protocol negotiation is bound to the handshake context, so the
	// override has to happen after the inner factory created it
	options.setAcceptableProtocols(t.acceptableProtocols)

	return options, nil
}
