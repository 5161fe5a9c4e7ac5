/*
 * Copyright (c) 2023 Zander Schwid & Co. LLC.
 * SPDX-License-Identifier: BUSL-1.1
 */

package tlscontext

import (
	"fmt"
	"sort"
	"sync"

	"github.com/crawlframework/crawltls/pkg/tlsconfig"
	"go.uber.org/zap"
)

/**
FactorySettings carries the configuration-derived constructor parameters for
pluggable context factories.
 */
type FactorySettings struct {
	Method         *tlsconfig.Method
	VerboseLogging bool
	Ciphers        string
	Log            *zap.Logger
}

/**
The registry maps configuration keys to context factory constructors, taking
the place of loading classes from dotted paths. Two constructor shapes are
accepted:

	func(FactorySettings) (interface{}, error)
	func() interface{}

The second one exists for factories predating the settings parameters; the
resolver falls back to it with a warning.
 */
var (
	registryMutex          sync.Mutex
	contextFactoryRegistry = make(map[string]interface{})
)

func RegisterContextFactory(name string, constructor interface{}) {

	switch constructor.(type) {
	case func(FactorySettings) (interface{}, error):
	case func() interface{}:
	default:
		panic(fmt.Sprintf("unsupported context factory constructor %T for '%s'", constructor, name))
	}

	registryMutex.Lock()
	defer registryMutex.Unlock()

	if _, ok := contextFactoryRegistry[name]; ok {
		panic(fmt.Sprintf("context factory '%s' registered twice", name))
	}

	contextFactoryRegistry[name] = constructor
}

func lookupContextFactory(name string) (interface{}, bool) {
	registryMutex.Lock()
	defer registryMutex.Unlock()

	constructor, ok := contextFactoryRegistry[name]
	return constructor, ok
}

func ContextFactoryNames() []string {
	registryMutex.Lock()
	defer registryMutex.Unlock()

	names := make([]string, 0, len(contextFactoryRegistry))
	for name := range contextFactoryRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {

	RegisterContextFactory("default", func(s FactorySettings) (interface{}, error) {
		return NewClientContextFactory(s.Method, s.VerboseLogging, s.Ciphers, s.Log)
	})

	RegisterContextFactory("browser", func(s FactorySettings) (interface{}, error) {
		return NewBrowserContextFactory(s.Method, s.VerboseLogging, s.Ciphers, s.Log)
	})
}
