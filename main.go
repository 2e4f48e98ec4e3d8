// graphcalc - Coordinate calculator for rate and profit/loss charts
// Copyright 2017-2021 SIGNAL18 CLOUD SAS
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signal18/graphcalc/config"
	"github.com/signal18/graphcalc/utils/s18log"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version number, e.g. 1.0.1
	Version string
	// FullVersion is the semantic version number + git commit hash
	FullVersion string
	// Build is the build date of graphcalc
	Build     string
	conf      config.Config
	logCloser io.Closer
)

func init() {

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	rootCmd.AddCommand(versionCmd)
	rootCmd.PersistentFlags().StringVar(&conf.ConfigFile, "config", "", "Configuration file (default is none)")
	rootCmd.PersistentFlags().BoolVar(&conf.Verbose, "verbose", false, "Print detailed execution info")
	initLogFlags(rootCmd)
	initCanvasFlags(rootCmd)

}

func main() {

	conf.Version = Version
	conf.FullVersion = FullVersion

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "graphcalc",
	Short: "Chart coordinate calculator for rate, line and profit/loss graphs",
	Long: `graphcalc maps the values of chart series to pixel coordinates of a canvas shared
by a rate chart, a profit/loss chart and indicator lines, and computes their axis ticks.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		conf, err = config.Load(conf, cmd.Flags())
		if err != nil {
			return err
		}
		logCloser = s18log.Init(conf)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Usage()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the graphcalc version number",
	Long:  `All software has versions. This is ours`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("graphcalc " + Version)
		fmt.Println("Full Version: ", FullVersion)
		fmt.Println("Build Time: ", Build)
	},
}

// initLogFlags registers the flags shared by every subcommand.
func initLogFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&conf.LogFile, "log-file", "", "Write output messages to log file")
	cmd.PersistentFlags().IntVar(&conf.LogLevel, "log-level", 0, "Log verbosity level")
	cmd.PersistentFlags().IntVar(&conf.LogRotateMaxSize, "log-rotate-max-size", 5, "Log rotate max size")
	cmd.PersistentFlags().IntVar(&conf.LogRotateMaxBackup, "log-rotate-max-backup", 7, "Log rotate max backup")
	cmd.PersistentFlags().IntVar(&conf.LogRotateMaxAge, "log-rotate-max-age", 7, "Log rotate max age")
}

func initCanvasFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().IntVar(&conf.RateAreaHeight, "rate-area-height", 200, "Height in pixels of the rate chart")
	cmd.PersistentFlags().IntVar(&conf.ProfitAreaHeight, "profit-area-height", 100, "Height in pixels of the profit/loss chart")
	cmd.PersistentFlags().IntVar(&conf.GraphAreaHeight, "graph-area-height", 100, "Height in pixels of the line graph")
	cmd.PersistentFlags().IntVar(&conf.AreaMargin, "area-margin", 8, "Gap in pixels between the rate chart and the graphs below")
	cmd.PersistentFlags().Float64Var(&conf.RangePadding, "range-padding", 0.1, "Ratio of the data span added above and below the range")
}
