/*
 * Copyright (c) 2023 Zander Schwid & Co. LLC.
 * SPDX-License-Identifier: BUSL-1.1
 */

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/crawlframework/crawltls/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestCreateDirIfNeeded(t *testing.T) {

	dir := filepath.Join(t.TempDir(), "log")

	require.NoError(t, util.CreateDirIfNeeded(dir, os.FileMode(0775)))

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	// second call is a no-op
	require.NoError(t, util.CreateDirIfNeeded(dir, os.FileMode(0775)))
}

func TestCreateFileIfNeeded(t *testing.T) {

	file := filepath.Join(t.TempDir(), "app.log")

	require.NoError(t, util.CreateFileIfNeeded(file, os.FileMode(0664)))

	fi, err := os.Stat(file)
	require.NoError(t, err)
	require.False(t, fi.IsDir())

	require.NoError(t, util.CreateFileIfNeeded(file, os.FileMode(0664)))
}
