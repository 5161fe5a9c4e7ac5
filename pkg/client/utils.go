/*
 * Copyright (c) 2023 Zander Schwid & Co. LLC.
 * SPDX-License-Identifier: BUSL-1.1
 */

package client

import (
	"context"
)

type tokenAuth struct {
	token string
}

func (t tokenAuth) GetRequestMetadata(ctx context.Context, in ...string) (map[string]string, error) {
	return map[string]string{
		"authorization": "Bearer " + t.token,
	}, nil
}

func (tokenAuth) RequireTransportSecurity() bool {
	return false
}

const (
	alpnProtoStrH2    = "h2"
	alpnProtoStrHTTP1 = "http/1.1"
)

func appendH2ToNextProtos(ps []string) []string {
	for _, p := range ps {
		if p == alpnProtoStrH2 {
			return ps
		}
	}
	ret := make([]string, 0, len(ps)+1)
	ret = append(ret, ps...)
	return append(ret, alpnProtoStrH2)
}

// defaultNextProtos fills the ALPN list only when no policy has set one, so
// an acceptable-protocols wrapper stays authoritative.
func defaultNextProtos(ps []string) []string {
	if len(ps) > 0 {
		return ps
	}
	return append(appendH2ToNextProtos(ps), alpnProtoStrHTTP1)
}
