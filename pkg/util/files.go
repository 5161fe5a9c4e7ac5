/*
 * Copyright (c) 2023 Zander Schwid & Co. LLC.
 * SPDX-License-Identifier: BUSL-1.1
 */

package util

import (
	"os"

	"github.com/pkg/errors"
)

func CreateFileIfNeeded(fileName string, fileperm os.FileMode) error {

	_, err := os.Stat(fileName)
	exist := err == nil
	if exist {
		return nil
	}

	file, err := os.OpenFile(fileName, os.O_RDWR|os.O_CREATE|os.O_TRUNC, fileperm)
	if err != nil {
		return err
	}
	file.Close()

	return os.Chmod(fileName, fileperm)
}

func CreateDirIfNeeded(dir string, perm os.FileMode) error {
	if _, err := os.Stat(dir); err != nil {
		if err = os.Mkdir(dir, perm); err != nil {
			return errors.Errorf("unable to create dir '%s' with permissions %x, %v", dir, perm, err)
		}
		if err = os.Chmod(dir, perm); err != nil {
			return errors.Errorf("unable to chmod dir '%s' with permissions %x, %v", dir, perm, err)
		}
	}
	return nil
}
