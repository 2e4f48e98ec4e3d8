// graphcalc - Coordinate calculator for rate and profit/loss charts
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

// Package s18log configures the logrus standard logger of the command line.
package s18log

import (
	"io"
	"os"

	"github.com/juju/errors"
	"github.com/signal18/graphcalc/config"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetLevel sets the level of the standard logger from its name.
func SetLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return errors.Annotatef(err, "log level %q", level)
	}
	log.SetLevel(lvl)
	return nil
}

// VerbosityLevel maps the log-level setting: 0 warnings, 1 info, 2 and
// above debug.
func VerbosityLevel(verbosity int) log.Level {
	switch {
	case verbosity <= 0:
		return log.WarnLevel
	case verbosity == 1:
		return log.InfoLevel
	}
	return log.DebugLevel
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init sets format, level and output of the standard logger. When a log
// file is configured the messages also go to a size rotated file, which
// the returned closer flushes.
func Init(conf config.Config) io.Closer {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(VerbosityLevel(conf.LogLevel))
	if conf.LogFile == "" {
		log.SetOutput(os.Stderr)
		return nopCloser{}
	}
	lj := &lumberjack.Logger{
		Filename:   conf.LogFile,
		MaxSize:    conf.LogRotateMaxSize,
		MaxBackups: conf.LogRotateMaxBackup,
		MaxAge:     conf.LogRotateMaxAge,
	}
	log.SetOutput(io.MultiWriter(os.Stderr, lj))
	log.WithField("file", conf.LogFile).Debug("Logging to file")
	return lj
}
