/*
 * Copyright (c) 2023 Zander Schwid & Co. LLC.
 * SPDX-License-Identifier: BUSL-1.1
 */

package tlscontext_test

import (
	"testing"

	"github.com/crawlframework/crawltls/pkg/tlscontext"
	"github.com/stretchr/testify/require"
)

func TestAcceptableProtocolsOverride(t *testing.T) {

	inner, err := tlscontext.NewClientContextFactory(nil, false, "", nil)
	require.NoError(t, err)

	wrapper, err := tlscontext.NewAcceptableProtocolsContextFactory(inner, []string{"h2", "http/1.1"})
	require.NoError(t, err)

	options, err := wrapper.CreatorForNetloc([]byte("example.com"), 443)
	require.NoError(t, err)

	require.Equal(t, []string{"h2", "http/1.1"}, options.AcceptableProtocols())
	require.Equal(t, []string{"h2", "http/1.1"}, options.Config().NextProtos)
	require.Equal(t, "example.com", options.Hostname())
}

func TestAcceptableProtocolsOverrideBrowserFactory(t *testing.T) {

	inner, err := tlscontext.NewBrowserContextFactory(nil, false, "", nil)
	require.NoError(t, err)

	wrapper, err := tlscontext.NewAcceptableProtocolsContextFactory(inner, []string{"http/1.1"})
	require.NoError(t, err)

	options, err := wrapper.CreatorForNetloc([]byte("example.com"), 443)
	require.NoError(t, err)

	require.Equal(t, []string{"http/1.1"}, options.Config().NextProtos)
	require.False(t, options.Config().InsecureSkipVerify)
}

func TestIncompatibleFactoryFailsAtConstruction(t *testing.T) {

	_, err := tlscontext.NewAcceptableProtocolsContextFactory("not a factory", []string{"h2"})
	require.ErrorIs(t, err, tlscontext.ErrIncompatibleFactory)

	_, err = tlscontext.NewAcceptableProtocolsContextFactory(nil, []string{"h2"})
	require.ErrorIs(t, err, tlscontext.ErrIncompatibleFactory)
}

func TestProtocolListIsCopiedFromConstructor(t *testing.T) {

	inner, err := tlscontext.NewClientContextFactory(nil, false, "", nil)
	require.NoError(t, err)

	protocols := []string{"h2"}

	wrapper, err := tlscontext.NewAcceptableProtocolsContextFactory(inner, protocols)
	require.NoError(t, err)

	protocols[0] = "spdy/3.1"

	options, err := wrapper.CreatorForNetloc([]byte("example.com"), 443)
	require.NoError(t, err)
	require.Equal(t, []string{"h2"}, options.AcceptableProtocols())
}
