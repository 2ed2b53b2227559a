package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string

var mainCommand = &cobra.Command{
	Use:   "klotski",
	Short: "Generalized sliding-block puzzle solver",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatal("parse log level: ", err)
		}
		logrus.SetLevel(level)
	},
}

func init() {
	mainCommand.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "set log level (trace|debug|info|warn|error)")
}

func main() {
	if err := mainCommand.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
