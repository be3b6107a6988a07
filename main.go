package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/swordduel/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	configName := flag.String("config", config.DefaultMatchFile, "match config (config/ basename or a path; falls back to the embedded copy)")
	seed := flag.Int64("seed", 0, "AI random seed (0 = time based)")
	logFile := flag.String("logfile", "", "write logs to a rotated file instead of stderr")
	watch := flag.Bool("watch", false, "reload the match config when it changes on disk")
	flag.Parse()

	if *logFile != "" {
		logger := &lumberjack.Logger{
			Filename:   *logFile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
		}
		defer logger.Close()
		log.SetOutput(logger)
	}

	spec, err := config.LoadMatchSpec(*configName)
	if err != nil {
		log.Fatalf("swordduel: %v", err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("swordduel: config=%s seed=%d arena=%vx%v tps=%v", *configName, *seed, spec.Arena.Width, spec.Arena.Height, spec.Physics.TPS)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(spec.Arena.Width), int(spec.Arena.Height))
	ebiten.SetWindowTitle("swordduel")
	ebiten.SetTPS(int(spec.Physics.TPS))

	game, err := NewGame(spec, GameOptions{
		ConfigName: *configName,
		Seed:       *seed,
		Debug:      *debug,
		Watch:      *watch,
	})
	if err != nil {
		log.Fatalf("swordduel: %v", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
