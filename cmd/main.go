// hotcorner - dwell the pointer in the top-left screen corner to open task
// view; Ctrl+Alt+C exits.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"hotcorner/internal/config"
	"hotcorner/internal/corner"
	"hotcorner/internal/hook"
	"hotcorner/internal/input"
	"hotcorner/internal/osutils"
	"hotcorner/internal/tray"
)

var (
	version    = "0.1.0"
	configPath = flag.String("config", config.DefaultPath, "Path to the configuration file")
	showVer    = flag.Bool("version", false, "Show version")
	verbose    = flag.Bool("verbose", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	if *showVer {
		fmt.Printf("hotcorner version %s\n", version)
		return
	}

	// Quiet by default: normal operation logs nothing, only startup failures
	// and injection warnings surface.
	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
	}).With().Timestamp().Logger().Level(level)

	dwell, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("configuration unusable")
	}

	region := corner.DefaultRegion
	signal := corner.NewSignal()
	detector := corner.NewDetector(region, osutils.Guards{}, signal)
	injector := input.NewInjector()

	worker := corner.NewWorker(region, signal, dwell, osutils.CursorPos, injector.Inject, logger)
	go worker.Run()

	hk := hook.New(detector, logger)

	tr := tray.New(hk.Stop)
	go tr.Run()
	defer tr.Stop()

	logger.Debug().
		Dur("dwell", dwell).
		Msg("starting hook message loop")

	// The hook and the exit hotkey live on this thread; Run blocks on the
	// message loop until Ctrl+Alt+C (or tray Quit) ends it.
	if err := hk.Run(); err != nil {
		logger.Fatal().Err(err).Msg("hook registration failed")
	}
}
