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

func TestEmptyCipherSpecIsDefault(t *testing.T) {

	ciphers, err := tlsconfig.AcceptableCiphersFromString("")
	require.NoError(t, err)
	require.True(t, ciphers.IsDefault())
	require.Empty(t, ciphers.Suites())
}

func TestCipherSpecParsesExactly(t *testing.T) {

	spec := "TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256:TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384"

	ciphers, err := tlsconfig.AcceptableCiphersFromString(spec)
	require.NoError(t, err)
	require.False(t, ciphers.IsDefault())

	require.Equal(t, []string{
		"TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256",
		"TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384",
	}, ciphers.Names())

	require.Equal(t, []uint16{
		tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
		tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
	}, ciphers.Suites())
}

func TestCipherSpecSeparators(t *testing.T) {

	colon, err := tlsconfig.AcceptableCiphersFromString("TLS_AES_128_GCM_SHA256:TLS_AES_256_GCM_SHA384")
	require.NoError(t, err)

	comma, err := tlsconfig.AcceptableCiphersFromString("TLS_AES_128_GCM_SHA256, TLS_AES_256_GCM_SHA384")
	require.NoError(t, err)

	require.Equal(t, colon.Suites(), comma.Suites())
}

func TestInvalidCipherSpecFailsAtConstruction(t *testing.T) {

	_, err := tlsconfig.AcceptableCiphersFromString("NOT_A_CIPHER")
	require.ErrorIs(t, err, tlsconfig.ErrInvalidCipherSpec)
}

func TestCipherSuitesAreCopied(t *testing.T) {

	ciphers, err := tlsconfig.AcceptableCiphersFromString("TLS_AES_128_GCM_SHA256")
	require.NoError(t, err)

	suites := ciphers.Suites()
	suites[0] = 0

	require.Equal(t, []uint16{tls.TLS_AES_128_GCM_SHA256}, ciphers.Suites())
}
