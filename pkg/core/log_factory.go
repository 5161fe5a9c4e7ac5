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
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type implLogFactory struct {
	Properties glue.Properties `inject`

	RotateLogger *lumberjack.Logger `inject:"optional"`

	ApplicationName string      `value:"application.name,default=crawltls"`
	CompanyName     string      `value:"application.company,default=crawlframework"`
	Daemon          bool        `value:"application.daemon,default=false"`
	LogDir          string      `value:"application.log.dir,default="`
	LogDirPerm      os.FileMode `value:"application.perm.log.dir,default=-rwxrwxr-x"`
	LogFilePerm     os.FileMode `value:"application.perm.log.file,default=-rw-rw-r--"`
}

func LogFactory() glue.FactoryBean {
	return &implLogFactory{}
}

func (t *implLogFactory) Object() (object interface{}, err error) {

	defer util.PanicToError(&err)

	if t.Daemon {

		if t.RotateLogger != nil {

			writerSyncer := zapcore.AddSync(t.RotateLogger)

			encoderConfig := zap.NewProductionEncoderConfig()
			encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
			encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
			encoder := zapcore.NewConsoleEncoder(encoderConfig)

			core := zapcore.NewCore(encoder, writerSyncer, zapcore.DebugLevel)

			return zap.New(core, zap.AddCaller()), nil

		} else {

			logDir, err := t.getLogDir()
			if err != nil {
				return nil, err
			}

			logFile := filepath.Join(logDir, fmt.Sprintf("%s.log", t.ApplicationName))

			if err := util.CreateFileIfNeeded(logFile, t.LogFilePerm); err != nil {
				return nil, err
			}

			cfg := zap.NewDevelopmentConfig()
			cfg.OutputPaths = []string{
				logFile,
			}
			return cfg.Build()
		}

	} else {
		return zap.NewDevelopment()
	}

}

func (t *implLogFactory) ObjectType() reflect.Type {
	return reflect.TypeOf((*zap.Logger)(nil))
}

func (t *implLogFactory) ObjectName() string {
	return "zap_logger"
}

func (t *implLogFactory) Singleton() bool {
	return true
}

func (t *implLogFactory) getLogDir() (string, error) {

	logDir := t.LogDir
	if logDir == "" {
		appDir := properties.Locate(t.CompanyName).GetDir(t.ApplicationName)
		logDir = filepath.Join(appDir, "log")
	}

	if err := util.CreateDirIfNeeded(logDir, t.LogDirPerm); err != nil {
		return "", err
	}

	return logDir, nil
}
