/*
 * Copyright (c) 2023 Zander Schwid & Co. LLC.
 * SPDX-License-Identifier: BUSL-1.1
 */

package tlsconfig

/**
Option is a set of legacy-protocol-disable bits plus the legacy-server-connect
compatibility bit. A bit the underlying TLS implementation does not support
degrades to the zero value, which is a no-op when OR-ed into an option set.
 */
type Option uint64

const (
	OpNoSSLv2 Option = 1 << iota
	OpNoSSLv3
	OpNoTLSv1
	OpNoTLSv11
	OpLegacyServerConnect
)

func (t Option) Has(flag Option) bool {
	return t&flag != 0
}
