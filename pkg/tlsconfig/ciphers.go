/*
 * Copyright (c) 2023 Zander Schwid & Co. LLC.
 * SPDX-License-Identifier: BUSL-1.1
 */

package tlsconfig

import (
	"crypto/tls"
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidCipherSpec = errors.New("invalid cipher spec")

var cipherSuitesByName = make(map[string]uint16)

func init() {
	for _, cs := range tls.CipherSuites() {
		cipherSuitesByName[cs.Name] = cs.ID
	}
	for _, cs := range tls.InsecureCipherSuites() {
		cipherSuitesByName[cs.Name] = cs.ID
	}
}

/**
AcceptableCiphers is an ordered cipher-suite allow-list. The default bundle
keeps the process default suites, so the effective list is never empty.
 */
type AcceptableCiphers struct {
	names     []string
	suites    []uint16
	isDefault bool
}

func DefaultCiphers() AcceptableCiphers {
	return AcceptableCiphers{isDefault: true}
}

/**
AcceptableCiphersFromString parses a cipher specification of IANA suite names
separated by colons, commas or whitespace. An empty specification selects the
default bundle. An unknown suite name fails at construction time.
 */
func AcceptableCiphersFromString(spec string) (AcceptableCiphers, error) {

	fields := strings.FieldsFunc(spec, func(r rune) bool {
		return r == ':' || r == ',' || r == ' ' || r == '\t'
	})

	if len(fields) == 0 {
		return DefaultCiphers(), nil
	}

	names := make([]string, 0, len(fields))
	suites := make([]uint16, 0, len(fields))

	for _, name := range fields {
		id, ok := cipherSuitesByName[name]
		if !ok {
			return AcceptableCiphers{}, errors.Wrapf(ErrInvalidCipherSpec, "unknown cipher suite '%s'", name)
		}
		names = append(names, name)
		suites = append(suites, id)
	}

	return AcceptableCiphers{names: names, suites: suites}, nil
}

func (t AcceptableCiphers) IsDefault() bool {
	return t.isDefault
}

func (t AcceptableCiphers) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

func (t AcceptableCiphers) Suites() []uint16 {
	out := make([]uint16, len(t.suites))
	copy(out, t.suites)
	return out
}
