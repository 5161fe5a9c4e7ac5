/*
 * Copyright (c) 2023 Zander Schwid & Co. LLC.
 * SPDX-License-Identifier: BUSL-1.1
 */

package client

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendH2ToNextProtos(t *testing.T) {

	require.Equal(t, []string{"h2"}, appendH2ToNextProtos(nil))
	require.Equal(t, []string{"http/1.1", "h2"}, appendH2ToNextProtos([]string{"http/1.1"}))
	require.Equal(t, []string{"h2"}, appendH2ToNextProtos([]string{"h2"}))
}

func TestDefaultNextProtos(t *testing.T) {

	require.Equal(t, []string{"h2", "http/1.1"}, defaultNextProtos(nil))

	// an explicit protocol list stays authoritative
	require.Equal(t, []string{"http/1.1"}, defaultNextProtos([]string{"http/1.1"}))
}
