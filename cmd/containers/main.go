package main

import (
	"os"

	"github.com/jpillora/opts"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"github.com/scottcagno/containers/internal/config"
	"github.com/scottcagno/containers/internal/demo"
	"github.com/scottcagno/containers/internal/logging"
)

var version = "0.0.0-src" //set with ldflags

func main() {
	cfg := config.Default()
	opts.New(&cfg).
		Name("containers").
		Version(version).
		Parse()

	if cfg.NoColor {
		pterm.DisableColor()
	}
	log, err := logging.New(os.Stderr, cfg.LogLevel, cfg.NoColor)
	if err != nil {
		logrus.Fatal(err)
	}
	if err := demo.Run(cfg, log, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
