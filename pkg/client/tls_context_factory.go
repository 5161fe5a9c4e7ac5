/*
 * Copyright (c) 2023 Zander Schwid & Co. LLC.
 * SPDX-License-Identifier: BUSL-1.1
 */

package client

import (
	"reflect"

	"github.com/codeallergy/glue"
	"github.com/crawlframework/crawltls/pkg/tlscontext"
	"github.com/crawlframework/crawltls/pkg/util"
	"go.uber.org/zap"
)

/**
tlsContextFactory resolves the downloader's TLS context factory from
properties once per process. The produced factory is the singleton owner of
the TLS policy for the connection lifetime and is safe for concurrent use.
 */
type implTlsContextFactory struct {
	Properties glue.Properties `inject`
	Log        *zap.Logger     `inject`

	beanName string
}

func TlsContextFactory(beanName string) glue.FactoryBean {
	return &implTlsContextFactory{beanName: beanName}
}

func (t *implTlsContextFactory) Object() (object interface{}, err error) {

	defer util.PanicToError(&err)

	return tlscontext.ResolveContextFactory(t.Properties, t.beanName, t.Log)
}

func (t *implTlsContextFactory) ObjectType() reflect.Type {
	return tlscontext.ContextFactoryClass
}

func (t *implTlsContextFactory) ObjectName() string {
	return t.beanName
}

func (t *implTlsContextFactory) Singleton() bool {
	return true
}
