/*
 * Copyright (c) 2023 Zander Schwid & Co. LLC.
 * SPDX-License-Identifier: BUSL-1.1
 */

package client

import (
	"fmt"
	"net"
	"reflect"
	"strconv"

	"github.com/codeallergy/glue"
	"github.com/crawlframework/crawltls/pkg/tlscontext"
	"github.com/crawlframework/crawltls/pkg/util"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

/**
grpcClientFactory dials the control-plane endpoint. When a context factory is
present the transport credentials come from the same per-netloc TLS policy as
the downloader; otherwise the dial is insecure.
 */
type implGrpcClientFactory struct {
	Properties     glue.Properties           `inject`
	ContextFactory tlscontext.ContextFactory `inject:"optional"`

	beanName string
}

func GrpcClientFactory(beanName string) glue.FactoryBean {
	return &implGrpcClientFactory{beanName: beanName}
}

func (t *implGrpcClientFactory) Object() (object interface{}, err error) {

	defer util.PanicToError(&err)

	connectAddr := t.Properties.GetString(fmt.Sprintf("%s.connect-address", t.beanName), "")
	if connectAddr == "" {
		return nil, errors.Errorf("property '%s.connect-address' is not found", t.beanName)
	}

	return t.doDial(connectAddr)
}

func (t *implGrpcClientFactory) ObjectType() reflect.Type {
	return reflect.TypeOf((*grpc.ClientConn)(nil))
}

func (t *implGrpcClientFactory) ObjectName() string {
	return t.beanName
}

func (t *implGrpcClientFactory) Singleton() bool {
	return true
}

func (t *implGrpcClientFactory) getTransportCreds(connectAddr string) (credentials.TransportCredentials, error) {

	if t.ContextFactory == nil {
		return insecure.NewCredentials(), nil
	}

	host, portStr, err := net.SplitHostPort(connectAddr)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid connect address '%s'", connectAddr)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid port in connect address '%s'", connectAddr)
	}

	options, err := t.ContextFactory.CreatorForNetloc([]byte(host), port)
	if err != nil {
		return nil, err
	}

	return credentials.NewTLS(options.Config()), nil
}

func (t *implGrpcClientFactory) doDial(connectAddr string) (*grpc.ClientConn, error) {

	creds, err := t.getTransportCreds(connectAddr)
	if err != nil {
		return nil, err
	}

	var opts []grpc.DialOption

	opts = append(opts, grpc.WithTransportCredentials(creds))

	maxMessageSize := t.Properties.GetInt(fmt.Sprintf("%s.max.message.size", t.beanName), 0)
	if maxMessageSize != 0 {
		opts = append(opts, grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(maxMessageSize)))
	}

	authToken := t.Properties.GetString("application.auth", "")
	if authToken != "" {
		opts = append(opts, grpc.WithPerRPCCredentials(&tokenAuth{token: authToken}))
	}

	return grpc.Dial(connectAddr, opts...)
}
