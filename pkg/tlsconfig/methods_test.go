/*
 * Copyright (c) 2023 Zander Schwid & Co. LLC.
 * SPDX-License-Identifier: BUSL-1.1
 */

package tlsconfig_test

import (
	"crypto/tls"
	"testing"

	"github.com/crawlframework/crawltls/pkg/tlsconfig"
	"github.com/stretchr/testify/require"
)

func TestMethodByName(t *testing.T) {

	for _, name := range tlsconfig.MethodNames() {
		m, err := tlsconfig.MethodByName(name)
		require.NoError(t, err)
		require.Equal(t, name, m.Name())
	}

	_, err := tlsconfig.MethodByName("FOO")
	require.ErrorIs(t, err, tlsconfig.ErrUnknownTLSMethod)
}

func TestMethodVersionBounds(t *testing.T) {

	minVersion, maxVersion := tlsconfig.MethodTLS.VersionBounds()
	require.Equal(t, uint16(tls.VersionTLS10), minVersion)
	require.Equal(t, uint16(tls.VersionTLS13), maxVersion)

	minVersion, maxVersion = tlsconfig.MethodTLSv12.VersionBounds()
	require.Equal(t, uint16(tls.VersionTLS12), minVersion)
	require.Equal(t, uint16(tls.VersionTLS12), maxVersion)
}
