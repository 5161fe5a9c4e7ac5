/*
 * Copyright (c) 2023 Zander Schwid & Co. LLC.
 * SPDX-License-Identifier: BUSL-1.1
 */

package tlsconfig

import (
	"crypto/tls"
	"fmt"
)

var tlsVersionString = map[uint16]string{
	tls.VersionTLS10: "TLSv1",
	tls.VersionTLS11: "TLSv1.1",
	tls.VersionTLS12: "TLSv1.2",
	tls.VersionTLS13: "TLSv1.3",
	0:                "",
}

// TLSVersionString names a negotiated protocol version for logging.
func TLSVersionString(value uint16) string {
	if str, ok := tlsVersionString[value]; ok {
		return str
	}
	return fmt.Sprintf("TLS_VERSION_UNKNOWN_%d", value)
}

// TLSCipherSuiteString names a negotiated cipher suite for logging.
func TLSCipherSuiteString(value uint16) string {
	if value == 0 {
		return ""
	}
	for name, id := range cipherSuitesByName {
		if id == value {
			return name
		}
	}
	return fmt.Sprintf("TLS_CIPHER_SUITE_UNKNOWN_%d", value)
}
