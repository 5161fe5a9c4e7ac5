/*
 * Copyright (c) 2023 Zander Schwid & Co. LLC.
 * SPDX-License-Identifier: BUSL-1.1
 */

package client

import (
	"net/http"

	"github.com/codeallergy/glue"
	"github.com/crawlframework/crawltls/pkg/tlscontext"
	"google.golang.org/grpc"
)

type clientScanner struct {
	Scan []interface{}
}

func ClientScanner(scan ...interface{}) glue.Scanner {
	return &clientScanner{
		Scan: scan,
	}
}

func (t *clientScanner) Beans() []interface{} {
	beans := []interface{}{
		&struct {
			// make them visible
			ContextFactory []tlscontext.ContextFactory `inject:"optional"`
			HttpClient     []*http.Client              `inject:"optional"`
			ClientConn     []*grpc.ClientConn          `inject:"optional"`
		}{},
	}
	return append(beans, t.Scan...)
}

type downloaderClientScanner struct {
	Scan []interface{}
}

func DownloaderClientScanner(scan ...interface{}) glue.Scanner {
	return &downloaderClientScanner{
		Scan: scan,
	}
}

func (t *downloaderClientScanner) Beans() []interface{} {
	beans := []interface{}{
		TlsContextFactory("downloader-tls-context"),
		HttpClientFactory("downloader-http-client"),
		&struct {
			// make them visible
			ContextFactory []tlscontext.ContextFactory `inject:"optional"`
			HttpClient     []*http.Client              `inject:"optional"`
		}{},
	}
	return append(beans, t.Scan...)
}
