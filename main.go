package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/leonelquinteros/gotext"

	"terragrid/pkg/engine/tile"
	"terragrid/pkg/engine/world"
	"terragrid/pkg/game/devtools"
	"terragrid/pkg/game/generator"
	"terragrid/pkg/game/reach"
	"terragrid/pkg/game/renderer"
	"terragrid/pkg/game/renderer/ebiten"
	"terragrid/pkg/game/renderer/tui"
	"terragrid/pkg/game/state"
	"terragrid/pkg/game/tileset"
)

type options struct {
	seed            int64
	steps           int
	initial         int
	maxPropagations int
	maxRadius       int
	catalog         string
	mirror          bool
	spawn           string
	layers          string
	dump            string
	html            bool
	view            bool
	ticks           int
	cellSize        float64
	locale          string
	localeDir       string
	gallery         bool
	verbose         bool
}

func parseFlags() options {
	var o options
	flag.Int64Var(&o.seed, "seed", 0, "random seed (0 picks one from the clock)")
	flag.IntVar(&o.steps, "steps", 50, "cells to grow after the initial batch")
	flag.IntVar(&o.initial, "initial", generator.DefaultInitialCells, "cells collapsed by the initial batch, spawn included")
	flag.IntVar(&o.maxPropagations, "max-propagations", 0, "propagation hop bound (0 for the default)")
	flag.IntVar(&o.maxRadius, "max-radius", 0, "largest distance a chain of forced collapses may reach (0 for the default)")
	flag.StringVar(&o.catalog, "catalog", "", "YAML tileset file (built-in catalog if empty)")
	flag.BoolVar(&o.mirror, "mirror", false, "use the mirrored face flip convention")
	flag.StringVar(&o.spawn, "spawn", "flat-floor", "spawn predicate: "+strings.Join(generator.PredicateNames(), ", "))
	flag.StringVar(&o.layers, "layer", "0", "comma separated heights to print")
	flag.StringVar(&o.dump, "dump", "", "write a grid dump to this file")
	flag.BoolVar(&o.html, "html", false, "save the printed layers as an HTML screenshot")
	flag.BoolVar(&o.view, "view", false, "open the graphical viewer instead of printing")
	flag.IntVar(&o.ticks, "steps-per-tick", 2, "cells the viewer grows per frame")
	flag.Float64Var(&o.cellSize, "cell-size", 1, "world size of one grid cell")
	flag.StringVar(&o.locale, "locale", "en", "message language")
	flag.StringVar(&o.localeDir, "locale-dir", "locales", "directory holding <lang>/default.po")
	flag.BoolVar(&o.gallery, "gallery", false, "print every catalog template and exit")
	flag.BoolVar(&o.verbose, "v", false, "log every placement")
	flag.Parse()
	return o
}

func initGettext(dir, lang string) {
	gotext.Configure(dir, lang, "default")
}

func parseLayers(s string) ([]int32, error) {
	var layers []int32
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		y, err := strconv.ParseInt(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("layer %q: %w", part, err)
		}
		layers = append(layers, int32(y))
	}
	return layers, nil
}

func loadCatalog(path string) (*tile.Catalog, error) {
	if path == "" {
		return tileset.Default(), nil
	}
	return tileset.LoadFile(path)
}

func main() {
	o := parseFlags()

	log.SetFlags(log.Ltime)
	log.SetPrefix("terragrid: ")

	initGettext(o.localeDir, o.locale)
	renderer.InitColors()

	catalog, err := loadCatalog(o.catalog)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	if o.gallery {
		devtools.WriteGallery(os.Stdout, catalog)
		return
	}

	spawn, ok := generator.Predicates[o.spawn]
	if !ok {
		log.Fatalf("unknown spawn predicate %q (have %s)", o.spawn, strings.Join(generator.PredicateNames(), ", "))
	}
	layers, err := parseLayers(o.layers)
	if err != nil {
		log.Fatal(err)
	}

	cfg := generator.Config{
		Seed:            o.seed,
		MaxPropagations: o.maxPropagations,
		MaxRadius:       o.maxRadius,
		InitialCells:    o.initial,
		Spawn:           spawn,
		Logger:          log.Default(),
		LogPlacements:   o.verbose,
	}
	if o.mirror {
		cfg.Flips = tile.MirrorFlips
	}

	s := state.NewSession(generator.New(catalog, cfg))
	if err := s.Start(); err != nil {
		if errors.Is(err, generator.ErrNoValidSpawn) {
			log.Fatalf("%s: %v", gotext.Get("NO_VALID_SPAWN"), err)
		}
		log.Fatal(err)
	}

	if o.view {
		view := ebiten.New(o.ticks, float32(o.cellSize))
		renderer.SetRenderer(view)
		renderer.Init()
		if err := view.Run(s); err != nil {
			log.Fatal(err)
		}
		renderer.SetRenderer(tui.New(os.Stdout, layers...))
		renderer.Init()
		finish(s, o, layers)
		return
	}

	for i := 0; i < o.steps; i++ {
		if !s.Step() {
			break
		}
	}

	renderer.SetRenderer(tui.New(os.Stdout, layers...))
	renderer.Init()
	renderer.Clear()
	renderer.RenderFrame(s)

	finish(s, o, layers)
}

// finish reports walkability and writes the optional dump and screenshot
func finish(s *state.Session, o options, layers []int32) {
	if o.verbose {
		r := reach.Analyze(s.Grid(), world.Origin)
		log.Printf("walkable %d, reachable from spawn %d, stranded %d", r.Walkable, r.Reachable, len(r.Stranded))
	}
	if o.dump != "" {
		path, err := devtools.DumpGridToFile(s, o.dump)
		if err != nil {
			log.Printf("dump: %v", err)
		} else {
			renderer.ShowMessage(renderer.FormatString("GT{DUMP_WRITTEN} ASSET{%s}", path))
		}
	}
	if o.html {
		name, err := devtools.SaveScreenshotHTML(s, layers...)
		if err != nil {
			log.Printf("screenshot: %v", err)
		} else {
			renderer.ShowMessage(renderer.FormatString("GT{SCREENSHOT_SAVED} ASSET{%s}", name))
		}
	}
}
