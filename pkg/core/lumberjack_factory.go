/*
 * Copyright (c) 2023 Zander Schwid & Co. LLC.
 * SPDX-License-Identifier: BUSL-1.1
 */

package core

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/codeallergy/glue"
	"github.com/codeallergy/properties"
	"github.com/crawlframework/crawltls/pkg/util"
	"gopkg.in/natefinch/lumberjack.v2"
)

type implLumberjackFactory struct {
	Properties glue.Properties `inject`

	ApplicationName string      `value:"application.name,default=crawltls"`
	CompanyName     string      `value:"application.company,default=crawlframework"`
	Daemon          bool        `value:"application.daemon,default=false"`
	LogDir          string      `value:"application.log.dir,default="`
	LogDirPerm      os.FileMode `value:"application.perm.log.dir,default=-rwxrwxr-x"`
	LogFilePerm     os.FileMode `value:"application.perm.log.file,default=-rw-rw-r--"`

	MaxSize    int  `value:"lumberjack.max-size,default=500"` // mb
	MaxBackups int  `value:"lumberjack.max-backups,default=10"`
	MaxAge     int  `value:"lumberjack.max-age,default=28"` // days
	Compress   bool `value:"lumberjack.compress,default=false"`
	Rotate     bool `value:"lumberjack.rotate-on-start,default=false"`
}

func LumberjackFactory() glue.FactoryBean {
	return &implLumberjackFactory{}
}

func (t *implLumberjackFactory) Object() (object interface{}, err error) {

	defer util.PanicToError(&err)

	logDir := t.LogDir
	if logDir == "" {
		appDir := properties.Locate(t.CompanyName).GetDir(t.ApplicationName)
		logDir = filepath.Join(appDir, "log")
	}

	if err := util.CreateDirIfNeeded(logDir, t.LogDirPerm); err != nil {
		return nil, err
	}

	logFile := filepath.Join(logDir, fmt.Sprintf("%s.log", t.ApplicationName))
	if err := util.CreateFileIfNeeded(logFile, t.LogFilePerm); err != nil {
		return nil, err
	}

	instance := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    t.MaxSize,
		MaxBackups: t.MaxBackups,
		MaxAge:     t.MaxAge,
		Compress:   t.Compress,
	}

	if t.Rotate && t.Daemon {
		// rotate only non empty log file
		if fi, err := os.Stat(logFile); err == nil && fi.Size() > 0 {
			err = instance.Rotate()
			if err != nil {
				return nil, err
			}
		}
	}

	return instance, nil
}

func (t *implLumberjackFactory) ObjectType() reflect.Type {
	return reflect.TypeOf((*lumberjack.Logger)(nil))
}

func (t *implLumberjackFactory) ObjectName() string {
	return "lumberjack"
}

func (t *implLumberjackFactory) Singleton() bool {
	return true
}
