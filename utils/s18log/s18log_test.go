// graphcalc - Coordinate calculator for rate and profit/loss charts
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

package s18log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/signal18/graphcalc/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withLevel(t *testing.T, level string, f func(out *bytes.Buffer)) {
	out := &bytes.Buffer{}
	originalLevel := logrus.GetLevel()
	originalOut := logrus.StandardLogger().Out
	defer func() {
		logrus.SetLevel(originalLevel)
		logrus.SetOutput(originalOut)
	}()
	require.NoError(t, SetLevel(level))
	logrus.SetOutput(out)
	f(out)
}

func TestSetLevel(t *testing.T) {
	assert := assert.New(t)

	table := []*struct {
		level       int
		levelString string
		checkString string
		writer      func(args ...interface{})
	}{
		{0, "debug", "_DebugMessage_", logrus.Debug},
		{1, "info", "_InfoMessage_", logrus.Info},
		{2, "warning", "_WarningMessage_", logrus.Warning},
		{2, "warn", "_WarnMessage_", logrus.Warn},
		{3, "error", "_ErrorMessage_", logrus.Error},
	}

	for testIndex := 0; testIndex < len(table); testIndex++ {
		checkLevel := table[testIndex].level

		withLevel(t, table[testIndex].levelString, func(out *bytes.Buffer) {
			for i := 0; i < len(table); i++ {
				table[i].writer(table[i].checkString)
			}
			for i := 0; i < len(table); i++ {
				if table[i].level < checkLevel {
					assert.NotContains(out.String(), table[i].checkString)
				} else {
					assert.Contains(out.String(), table[i].checkString)
				}
			}
		})
	}

	err := SetLevel("unknown")
	assert.Error(err)
}

func TestVerbosityLevel(t *testing.T) {
	assert.Equal(t, logrus.WarnLevel, VerbosityLevel(0))
	assert.Equal(t, logrus.InfoLevel, VerbosityLevel(1))
	assert.Equal(t, logrus.DebugLevel, VerbosityLevel(3))
}

func TestInitLogFile(t *testing.T) {
	originalLevel := logrus.GetLevel()
	originalOut := logrus.StandardLogger().Out
	defer func() {
		logrus.SetLevel(originalLevel)
		logrus.SetOutput(originalOut)
	}()

	file := filepath.Join(t.TempDir(), "graphcalc.log")
	closer := Init(config.Config{LogFile: file, LogLevel: 1, LogRotateMaxSize: 1})
	logrus.Info("_RangeComputed_")
	logrus.Debug("_Hidden_")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(content), "_RangeComputed_")
	assert.NotContains(t, string(content), "_Hidden_")
}
