/*
 * Copyright (c) 2023 Zander Schwid & Co. LLC.
 * SPDX-License-Identifier: BUSL-1.1
 */

package tlsconfig

import (
	"crypto/tls"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknownTLSMethod = errors.New("unknown TLS method")

/**
Method names a TLS protocol-negotiation mode. It is resolved once per
context factory and never changes afterwards.
 */
type Method struct {
	name       string
	minVersion uint16
	maxVersion uint16
}

var (
	// MethodTLS negotiates the best protocol version both peers support,
	// the same contract as the OpenSSL SSLv23/TLS method.
	MethodTLS = Method{name: "TLS", minVersion: tls.VersionTLS10, maxVersion: tls.VersionTLS13}

	MethodTLSv10 = Method{name: "TLSv1.0", minVersion: tls.VersionTLS10, maxVersion: tls.VersionTLS10}
	MethodTLSv11 = Method{name: "TLSv1.1", minVersion: tls.VersionTLS11, maxVersion: tls.VersionTLS11}
	MethodTLSv12 = Method{name: "TLSv1.2", minVersion: tls.VersionTLS12, maxVersion: tls.VersionTLS12}
	MethodTLSv13 = Method{name: "TLSv1.3", minVersion: tls.VersionTLS13, maxVersion: tls.VersionTLS13}
)

var methodsByName = map[string]Method{
	"TLS":     MethodTLS,
	"TLSv1.0": MethodTLSv10,
	"TLSv1.1": MethodTLSv11,
	"TLSv1.2": MethodTLSv12,
	"TLSv1.3": MethodTLSv13,
}

func (t Method) Name() string {
	return t.name
}

func (t Method) VersionBounds() (minVersion, maxVersion uint16) {
	return t.minVersion, t.maxVersion
}

func (t Method) String() string {
	return t.name
}

func MethodByName(name string) (Method, error) {
	if m, ok := methodsByName[name]; ok {
		return m, nil
	}
	return Method{}, errors.Wrapf(ErrUnknownTLSMethod, "'%s', known methods are %s", name, strings.Join(MethodNames(), ", "))
}

func MethodNames() []string {
	names := make([]string, 0, len(methodsByName))
	for name := range methodsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
