// Command mapdebug builds a Map from a JSON-encoded NewMapRequest and
// prints its climb and choke label grids, for inspecting a terrain raster
// without wiring up a full host integration.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"maptool"
	"maptool/config"
	"maptool/logging"
	loggingSinks "maptool/logging/sinks"
	"maptool/logging/zapsink"
)

func main() {
	var (
		inPath     string
		configPath string
		mode       string
	)
	flag.StringVar(&inPath, "in", "", "path to a JSON-encoded NewMapRequest")
	flag.StringVar(&configPath, "config", "", "optional YAML analyzer config")
	flag.StringVar(&mode, "mode", "climbs", "grid to print: climbs or chokes")
	flag.Parse()

	if inPath == "" {
		fmt.Fprintln(os.Stderr, "mapdebug: -in is required")
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("mapdebug: load config: %v", err)
	}

	req, err := readRequest(inPath)
	if err != nil {
		log.Fatalf("mapdebug: %v", err)
	}

	fallback := log.New(os.Stderr, "mapdebug: ", log.LstdFlags)
	router, err := buildRouter(cfg, fallback)
	if err != nil {
		log.Fatalf("mapdebug: build logging router: %v", err)
	}
	defer func() {
		if cerr := router.Close(context.Background()); cerr != nil {
			fallback.Printf("close logging router: %v", cerr)
		}
	}()

	m, err := maptool.New(req, cfg, router)
	if err != nil {
		log.Fatalf("mapdebug: build map: %v", err)
	}

	var grid [][]int
	switch strings.ToLower(mode) {
	case "climbs":
		grid = m.DrawClimbs()
	case "chokes":
		grid = m.DrawChokes()
	default:
		log.Fatalf("mapdebug: unknown -mode %q (want climbs or chokes)", mode)
	}

	printGrid(grid)
	fmt.Printf("chokes: %d  overlord spots: %d\n", len(m.Chokes()), len(m.OverlordSpots()))
}

// buildRouter constructs the sinks named in cfg.Logging.EnabledSinks and
// wires them into a Router, mirroring the teacher's internal/app.Run, which
// builds its sink map directly from its logging.Config rather than through
// an indirection layer.
func buildRouter(cfg config.Analyzer, fallback *log.Logger) (*logging.Router, error) {
	available := make(map[string]logging.Sink, len(cfg.Logging.EnabledSinks))
	for _, name := range cfg.Logging.EnabledSinks {
		switch name {
		case "console":
			available[name] = loggingSinks.NewConsoleSink(os.Stdout, logging.ConsoleConfig{Prefix: "mapdebug: "})
		case "json":
			sink, err := loggingSinks.NewJSONSink(logging.JSONConfig{FilePath: cfg.Logging.JSONPath})
			if err != nil {
				return nil, fmt.Errorf("build json sink: %w", err)
			}
			available[name] = sink
		case "memory":
			available[name] = loggingSinks.NewMemorySink(256)
		case "zap":
			level := zapsink.ParseLevel(cfg.Logging.MinSeverity)
			sink, err := zapsink.New(zapsink.FileConfig{Path: cfg.Logging.ZapLogPath}, level, level)
			if err != nil {
				return nil, fmt.Errorf("build zap sink: %w", err)
			}
			available[name] = sink
		default:
			fallback.Printf("mapdebug: unknown sink %q in config, ignoring", name)
		}
	}

	routerCfg := logging.DefaultConfig()
	routerCfg.EnabledSinks = cfg.Logging.EnabledSinks
	routerCfg.MinSeverity = logging.ParseSeverity(cfg.Logging.MinSeverity)

	return logging.NewRouter(routerCfg, logging.SystemClock{}, fallback, available)
}

func readRequest(path string) (maptool.NewMapRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return maptool.NewMapRequest{}, fmt.Errorf("read %s: %w", path, err)
	}
	var req maptool.NewMapRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return maptool.NewMapRequest{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return req, nil
}

func printGrid(grid [][]int) {
	for _, row := range grid {
		b := strings.Builder{}
		for i, v := range row {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%3d", v)
		}
		fmt.Println(b.String())
	}
}
