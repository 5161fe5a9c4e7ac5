/*
 * Copyright (c) 2023 Zander Schwid & Co. LLC.
 * SPDX-License-Identifier: BUSL-1.1
 */

package tlscontext

import (
	"fmt"

	"github.com/codeallergy/glue"
	"github.com/crawlframework/crawltls/pkg/tlsconfig"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

var ErrUnknownContextFactory = errors.New("unknown context factory")

/**
ResolveContextFactory builds the process-wide context factory from dotted
properties under the given prefix:

	<prefix>.method           TLS method name, default "TLS"
	<prefix>.ciphers          cipher specification, default empty (process bundle)
	<prefix>.verbose-logging  handshake logging, default false
	<prefix>.factory          registered factory name, default "default"

Configuration errors fail fast here; nothing in this path is retried.
 */
func ResolveContextFactory(properties glue.Properties, prefix string, log *zap.Logger) (ContextFactory, error) {

	if log == nil {
		log = zap.NewNop()
	}

	methodName := properties.GetString(fmt.Sprintf("%s.method", prefix), "TLS")
	method, err := tlsconfig.MethodByName(methodName)
	if err != nil {
		return nil, errors.Wrapf(err, "property '%s.method'", prefix)
	}

	factoryName := properties.GetString(fmt.Sprintf("%s.factory", prefix), "default")
	constructor, ok := lookupContextFactory(factoryName)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownContextFactory, "property '%s.factory' is '%s'", prefix, factoryName)
	}

	settings := FactorySettings{
		Method:         &method,
		VerboseLogging: properties.GetBool(fmt.Sprintf("%s.verbose-logging", prefix), false),
		Ciphers:        properties.GetString(fmt.Sprintf("%s.ciphers", prefix), ""),
		Log:            log,
	}

	var object interface{}

	switch c := constructor.(type) {
	case func(FactorySettings) (interface{}, error):
		// a constructor error here is not a compatibility issue and
		// propagates unmodified
		object, err = c(settings)
		if err != nil {
			return nil, err
		}
	case func() interface{}:
		log.Warn("Context factory constructor does not accept settings, falling back to its defaults",
			zap.String("factory", factoryName),
			zap.Strings("ignored", []string{
				fmt.Sprintf("%s.method", prefix),
				fmt.Sprintf("%s.verbose-logging", prefix),
				fmt.Sprintf("%s.ciphers", prefix),
			}))
		object = c()
	}

	return adaptContextFactory(object, factoryName, log)
}

func adaptContextFactory(object interface{}, factoryName string, log *zap.Logger) (ContextFactory, error) {

	switch inst := object.(type) {
	case ContextFactory:
		return inst, nil
	case LegacyContextFactory:
		log.Warn("Context factory exposes only the deprecated GetContext accessor, implement CreatorForNetloc instead",
			zap.String("factory", factoryName))
		return &legacyContextAdapter{wrapped: inst, log: log}, nil
	default:
		return nil, errors.Wrapf(ErrIncompatibleFactory, "'%s' constructed %T", factoryName, object)
	}
}

// legacyContextAdapter serves the per-netloc hook through the deprecated
// low-level accessor for factories that predate it.
type legacyContextAdapter struct {
	wrapped LegacyContextFactory
	log     *zap.Logger
	warned  atomic.Bool
}

func (t *legacyContextAdapter) CreatorForNetloc(hostname []byte, port int) (*ClientTLSOptions, error) {

	if t.warned.CompareAndSwap(false, true) {
		t.log.Warn("Serving per-connection TLS configuration through the deprecated GetContext path")
	}

	name, err := decodeASCIIHostname(hostname)
	if err != nil {
		return nil, err
	}

	cfg, err := t.wrapped.GetContext(name, port)
	if err != nil {
		return nil, err
	}

	return NewClientTLSOptions(name, cfg, false, t.log), nil
}
