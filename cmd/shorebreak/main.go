package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/becomesaflame/shorebreak"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg := shorebreak.DefaultConf
	if *configPath != "" {
		var err error
		cfg, err = shorebreak.ParseConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	sim, err := shorebreak.NewSim(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(int(cfg.FieldWidth), int(cfg.FieldHeight))
	ebiten.SetWindowTitle("Shorebreak")
	if err := ebiten.RunGame(NewGame(sim)); err != nil {
		log.Fatal(err)
	}
}
