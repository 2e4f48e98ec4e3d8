// graphcalc - Coordinate calculator for rate and profit/loss charts
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <stephane.varoqui@mariadb.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

package config

import (
	"os"
	"strings"

	"github.com/juju/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "GRAPHCALC"

type Config struct {
	ConfigFile         string  `mapstructure:"config"`
	Verbose            bool    `mapstructure:"verbose"`
	LogLevel           int     `mapstructure:"log-level"`
	LogFile            string  `mapstructure:"log-file"`
	LogRotateMaxSize   int     `mapstructure:"log-rotate-max-size"`
	LogRotateMaxBackup int     `mapstructure:"log-rotate-max-backup"`
	LogRotateMaxAge    int     `mapstructure:"log-rotate-max-age"`
	RateAreaHeight     int     `mapstructure:"rate-area-height"`
	ProfitAreaHeight   int     `mapstructure:"profit-area-height"`
	GraphAreaHeight    int     `mapstructure:"graph-area-height"`
	AreaMargin         int     `mapstructure:"area-margin"`
	RangePadding       float64 `mapstructure:"range-padding"`
	Version            string
	FullVersion        string
}

var defaults = map[string]interface{}{
	"log-level":             0,
	"log-rotate-max-size":   5,
	"log-rotate-max-backup": 7,
	"log-rotate-max-age":    7,
	"rate-area-height":      200,
	"profit-area-height":    100,
	"graph-area-height":     100,
	"area-margin":           8,
	"range-padding":         0.1,
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
}

// Load merges defaults, the TOML file named by conf.ConfigFile, the
// environment and the command line flags into conf.
func Load(conf Config, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return conf, errors.Trace(err)
		}
	}

	if conf.ConfigFile != "" {
		if _, err := os.Stat(conf.ConfigFile); os.IsNotExist(err) {
			return conf, errors.NotFoundf("config file %s", conf.ConfigFile)
		}
		v.SetConfigFile(conf.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return conf, errors.Annotatef(err, "could not parse config file %s", conf.ConfigFile)
		}
		log.WithFields(log.Fields{
			"file": v.ConfigFileUsed(),
		}).Debug("Using config file")
	}

	file := conf.ConfigFile
	if err := v.Unmarshal(&conf); err != nil {
		return conf, errors.Trace(err)
	}
	conf.ConfigFile = file
	if conf.Verbose && conf.LogLevel == 0 {
		conf.LogLevel = 1
	}
	if !conf.Verbose && conf.LogLevel > 0 {
		conf.Verbose = true
	}
	return conf, conf.Validate()
}

// Validate rejects layouts no chart can be drawn in.
func (conf Config) Validate() error {
	if conf.RateAreaHeight <= 0 || conf.ProfitAreaHeight <= 0 || conf.GraphAreaHeight <= 0 {
		return errors.NotValidf("area heights %d/%d/%d", conf.RateAreaHeight, conf.ProfitAreaHeight, conf.GraphAreaHeight)
	}
	if conf.AreaMargin < 0 {
		return errors.NotValidf("area margin %d", conf.AreaMargin)
	}
	if conf.RangePadding < 0 {
		return errors.NotValidf("range padding %v", conf.RangePadding)
	}
	return nil
}
