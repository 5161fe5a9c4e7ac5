/*
 * Copyright (c) 2023 Zander Schwid & Co. LLC.
 * SPDX-License-Identifier: BUSL-1.1
 */

package client

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"reflect"
	"strconv"
	"time"

	"github.com/codeallergy/glue"
	"github.com/crawlframework/crawltls/pkg/tlscontext"
	"github.com/crawlframework/crawltls/pkg/util"
	"github.com/pkg/errors"
)

/**
httpClientFactory builds the downloader-side *http.Client. Every HTTPS
connection attempt asks the context factory for a fresh per-netloc TLS
configuration before the handshake.
 */
type implHttpClientFactory struct {
	Properties     glue.Properties           `inject`
	ContextFactory tlscontext.ContextFactory `inject`

	beanName string
}

func HttpClientFactory(beanName string) glue.FactoryBean {
	return &implHttpClientFactory{beanName: beanName}
}

func (t *implHttpClientFactory) Object() (object interface{}, err error) {

	defer util.PanicToError(&err)

	timeoutSec := t.Properties.GetInt(fmt.Sprintf("%s.timeout-seconds", t.beanName), 60)

	transport := &http.Transport{
		Proxy:             http.ProxyFromEnvironment,
		DialTLSContext:    t.dialTLS,
		ForceAttemptHTTP2: true,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   time.Duration(timeoutSec) * time.Second,
	}, nil
}

func (t *implHttpClientFactory) dialTLS(ctx context.Context, network, addr string) (net.Conn, error) {

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid netloc '%s'", addr)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid port in netloc '%s'", addr)
	}

	options, err := t.ContextFactory.CreatorForNetloc([]byte(host), port)
	if err != nil {
		return nil, err
	}

	cfg := options.Config()
	cfg.NextProtos = defaultNextProtos(cfg.NextProtos)

	var dialer net.Dialer
	raw, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	conn := tls.Client(raw, cfg)
	if err := conn.HandshakeContext(ctx); err != nil {
		raw.Close()
		return nil, err
	}

	return conn, nil
}

func (t *implHttpClientFactory) ObjectType() reflect.Type {
	return reflect.TypeOf((*http.Client)(nil))
}

func (t *implHttpClientFactory) ObjectName() string {
	return t.beanName
}

func (t *implHttpClientFactory) Singleton() bool {
	return true
}
