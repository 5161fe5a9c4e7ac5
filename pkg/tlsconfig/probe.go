/*
 * Copyright (c) 2023 Zander Schwid & Co. LLC.
 * SPDX-License-Identifier: BUSL-1.1
 */

package tlsconfig

/**
Symbol names mirror the OpenSSL constants this policy layer is modelled on.
A Library reports which of them the local TLS implementation actually has.
 */
const (
	SymMethodTLS    = "TLS_METHOD"
	SymMethodSSLv23 = "SSLv23_METHOD"

	SymOpNoSSLv2             = "OP_NO_SSLv2"
	SymOpNoSSLv3             = "OP_NO_SSLv3"
	SymOpNoTLSv1             = "OP_NO_TLSv1"
	SymOpNoTLSv11            = "OP_NO_TLSv1_1"
	SymOpLegacyServerConnect = "OP_LEGACY_SERVER_CONNECT"
)

/**
Library exposes the symbol set of the underlying TLS implementation.
Lookups return false for symbols the implementation does not provide.
 */
type Library interface {

	LookupMethod(symbol string) (Method, bool)

	LookupOption(symbol string) (Option, bool)
}

/**
Capabilities is the feature-detection table built once at construction time.
Absent option symbols are held as the zero Option, so OR-ing them into a
certificate-options value is a no-op.
 */
type Capabilities struct {
	Method Method

	NoSSLv2             Option
	NoSSLv3             Option
	NoTLSv1             Option
	NoTLSv11            Option
	LegacyServerConnect Option
}

func (t Capabilities) DisableLegacyProtocols() Option {
	return t.NoSSLv2 | t.NoSSLv3 | t.NoTLSv1 | t.NoTLSv11
}

/**
Probe detects the best-available TLS method and the supported disable options.
It prefers the generic negotiation method and falls back to the SSLv23-style
one, then to the built-in default. Absence of a capability is expected and
substituted, never an error.
 */
func Probe(lib Library) Capabilities {

	caps := Capabilities{Method: MethodTLS}

	if m, ok := lib.LookupMethod(SymMethodTLS); ok {
		caps.Method = m
	} else if m, ok := lib.LookupMethod(SymMethodSSLv23); ok {
		caps.Method = m
	}

	caps.NoSSLv2, _ = lib.LookupOption(SymOpNoSSLv2)
	caps.NoSSLv3, _ = lib.LookupOption(SymOpNoSSLv3)
	caps.NoTLSv1, _ = lib.LookupOption(SymOpNoTLSv1)
	caps.NoTLSv11, _ = lib.LookupOption(SymOpNoTLSv11)
	caps.LegacyServerConnect, _ = lib.LookupOption(SymOpLegacyServerConnect)

	return caps
}

type standardLibrary struct {
}

// StandardLibrary describes crypto/tls. It speaks TLS 1.0 and newer only,
// therefore the SSLv2 and SSLv3 disable options have nothing to disable and
// are reported absent.
var StandardLibrary Library = standardLibrary{}

func (standardLibrary) LookupMethod(symbol string) (Method, bool) {
	switch symbol {
	case SymMethodTLS, SymMethodSSLv23:
		return MethodTLS, true
	}
	return Method{}, false
}

func (standardLibrary) LookupOption(symbol string) (Option, bool) {
	switch symbol {
	case SymOpNoTLSv1:
		return OpNoTLSv1, true
	case SymOpNoTLSv11:
		return OpNoTLSv11, true
	case SymOpLegacyServerConnect:
		return OpLegacyServerConnect, true
	}
	return 0, false
}
