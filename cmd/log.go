package cmd

import (
	"fmt"
	"os"

	"github.com/etnz/stocks"
	"go.uber.org/zap"
)

var l = zap.NewNop()

// SetupLogger installs the application logger: warnings only, or everything
// down to debug with -v. It must be called after the flags are parsed.
func SetupLogger() {
	var logger *zap.Logger
	var err error
	if *Verbose {
		logger, err = zap.NewDevelopment()
	} else {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		config.Encoding = "console"
		logger, err = config.Build()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		return
	}
	l = logger
	stocks.SetLogger(logger)
}
