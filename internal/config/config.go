// Package config builds the logger shared by the max7219 command line tool.
package config

import (
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger returns the logger handed to max7219.Opts.Logger. With debug
// set every register write of the chain is logged, quiet limits output to
// errors. debug takes precedence when both are set.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case debug:
		cfg.Level = log.DebugLevel
	case quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
