package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/leonelquinteros/gotext"

	"tilewalk/pkg/engine/world"
	"tilewalk/pkg/game/assets"
	"tilewalk/pkg/game/config"
	"tilewalk/pkg/game/devtools"
	"tilewalk/pkg/game/gameplay"
	"tilewalk/pkg/game/generator"
	"tilewalk/pkg/game/menu"
	"tilewalk/pkg/game/renderer"
	ebitenrenderer "tilewalk/pkg/game/renderer/ebiten"
	"tilewalk/pkg/game/renderer/tui"
	"tilewalk/pkg/game/state"
)

func initGettext(locale string) {
	gotext.Configure("locales", locale, "default")
}

// overrides are the flags that take precedence over the config file.
type overrides struct {
	renderer   *string
	mapPath    *string
	atlasPath  *string
	spritePath *string
	inspect    *string
	scale      *float64
}

func registerOverrides(fs *flag.FlagSet) overrides {
	return overrides{
		renderer:   fs.String("renderer", "", "renderer to use: ebiten or tui"),
		mapPath:    fs.String("map", "", "JSON tile map to load instead of the built-in map"),
		atlasPath:  fs.String("atlas", "", "tile atlas image (PNG); generated when empty"),
		spritePath: fs.String("sprite", "", "actor sprite image (PNG); generated when empty"),
		inspect:    fs.String("inspect", "", "serve the developer inspector on this address, e.g. :8089"),
		scale:      fs.Float64("scale", 0, "zoom factor"),
	}
}

// applyFlags copies the flags explicitly set on fs over the loaded config.
func applyFlags(fs *flag.FlagSet, cfg *config.Config, o overrides) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "renderer":
			cfg.Renderer = *o.renderer
		case "map":
			cfg.MapPath = *o.mapPath
		case "atlas":
			cfg.AtlasPath = *o.atlasPath
		case "sprite":
			cfg.SpritePath = *o.spritePath
		case "inspect":
			cfg.InspectAddr = *o.inspect
		case "scale":
			cfg.Scale = *o.scale
		}
	})
}

// Size of generated maps
const (
	generatedRows = 40
	generatedCols = 60
)

// mapSource says where the map comes from when it is not a file.
type mapSource struct {
	devMap   bool
	generate bool
	seed     int64
}

// loadGrid returns the map to show and the actor start: the developer map,
// a generated map, a map file, or the built-in map.
func loadGrid(cfg *config.Config, src mapSource) (*world.Grid, int, int, error) {
	switch {
	case src.devMap:
		return devtools.DevGrid(50, 50, cfg.TilesPerRow*2), cfg.StartX, cfg.StartY, nil
	case src.generate:
		seed := src.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		log.Printf("Generating map with %s generator (seed %d)", generator.DefaultGenerator.Name(), seed)
		layout, err := generator.DefaultGenerator.Generate(generatedRows, generatedCols, rand.New(rand.NewSource(seed)))
		if err != nil {
			return nil, 0, 0, err
		}
		return layout.Grid, layout.StartX, layout.StartY, nil
	case cfg.MapPath != "":
		grid, err := world.LoadGrid(cfg.MapPath)
		return grid, cfg.StartX, cfg.StartY, err
	default:
		return world.DefaultGrid(), cfg.StartX, cfg.StartY, nil
	}
}

// newHost builds the renderer selected in cfg. status is shown on every
// frame; steps reports the move count for the step sound.
func newHost(cfg *config.Config, status func() string, steps func() int) renderer.Host {
	switch cfg.Renderer {
	case "tui":
		h := tui.New(cfg.TileSize, cfg.TerminalFPS)
		h.Status = status
		return h
	default:
		h := ebitenrenderer.New(cfg.WindowWidth, cfg.WindowHeight, cfg.Scale)
		h.Status = status
		h.Steps = steps
		return h
	}
}

func main() {
	configPath := flag.String("config", "", "path to a JSON settings file (default: user config dir)")
	flags := registerOverrides(flag.CommandLine)
	devMap := flag.Bool("devmap", false, "show the 50x50 developer testing map (for developer testing)")
	generate := flag.Bool("generate", false, "generate a random map instead of loading one")
	seed := flag.Int64("seed", 0, "seed for -generate (0 picks one from the clock)")
	keys := flag.Bool("keys", false, "print the key bindings and exit")
	save := flag.Bool("save", false, "write the effective settings back to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	applyFlags(flag.CommandLine, cfg, flags)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}
	config.SetCurrent(cfg)

	if *save {
		if err := cfg.Save(); err != nil {
			log.Printf("Warning: could not save preferences: %v", err)
		}
	}

	initGettext(cfg.Locale)

	if *keys {
		fmt.Print(menu.FormatBindings())
		return
	}

	grid, startX, startY, err := loadGrid(cfg, mapSource{devMap: *devMap, generate: *generate, seed: *seed})
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}

	var g *state.Game
	host := newHost(cfg, func() string {
		return gotext.Get("STATUS_LINE", g.Actor.GridX, g.Actor.GridY, g.Moves)
	}, func() int {
		return g.Moves
	})

	atlas, sprite, err := host.LoadAssets(renderer.AssetSpec{
		AtlasPath:   cfg.AtlasPath,
		SpritePath:  cfg.SpritePath,
		TileSize:    cfg.TileSize,
		TilesPerRow: cfg.TilesPerRow,
		AtlasRows:   assets.RowsFor(int(grid.MaxTileID()), cfg.TilesPerRow),
	})
	if err != nil {
		log.Fatalf("Failed to load assets: %v", err)
	}

	// Out-of-atlas ids are not guarded when drawing.
	if capacity := renderer.AtlasCapacity(atlas, cfg.TileSize); int(grid.MaxTileID()) >= capacity {
		log.Printf("Warning: map uses tile id %d but the atlas only holds %d tiles", grid.MaxTileID(), capacity)
	}

	g = state.NewGame(grid, cfg.TileSize, cfg.TilesPerRow, cfg.Scale, startX, startY)
	loop := gameplay.NewLoop(g, atlas, sprite)

	if cfg.InspectAddr != "" {
		mon := devtools.NewMonitor(grid)
		loop.OnFrame = mon.Publish
		srv := devtools.Serve(cfg.InspectAddr, mon)
		defer srv.Close()
	}

	if err := host.Run(loop); err != nil {
		log.Fatalf("Renderer stopped: %v", err)
	}

	fmt.Println(gotext.Get("GOODBYE", g.Moves))
}
