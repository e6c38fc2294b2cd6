// Command orderdemo builds a container and prints it in every traversal
// order. Elements come from the arguments or ORDERDEMO_ELEMENTS; see the
// demo package for the other settings.
package main

import (
	"context"
	"os"

	"github.com/amp-labs/amp-container/demo"
	"github.com/amp-labs/amp-container/envutil"
	"github.com/amp-labs/amp-container/logger"
	"github.com/amp-labs/amp-container/shutdown"
)

func main() {
	ctx, handler := shutdown.Listen(context.Background())
	defer handler.Stop()

	src, err := demo.ConfigSource(envutil.Environment)
	if err != nil {
		logger.Fatal("unable to load configuration file", "error", err)
	}

	// The report goes to stdout, so logs default to stderr.
	logSrc := envutil.Layered(src, envutil.FromMap(map[string]string{
		"LOG_OUTPUT": "stderr",
		"LOG_LEVEL":  "warn",
	}))

	if _, err := logger.ConfigureLogging("orderdemo", logSrc); err != nil {
		logger.Fatal("invalid logging configuration", "error", err)
	}

	cfg, err := demo.LoadConfig(src, os.Args[1:])
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}

	if err := demo.Run(ctx, cfg, os.Stdout); err != nil {
		logger.Fatal("orderdemo failed", "error", err)
	}
}
