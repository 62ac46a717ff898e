package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/openuas/airspace/internal/config"
	"github.com/openuas/airspace/internal/lib/geo"
	"github.com/openuas/airspace/internal/lib/kmlgen"
	"github.com/openuas/airspace/internal/lib/obstacle"
	"github.com/openuas/airspace/internal/lib/telemetry"
	"github.com/openuas/airspace/internal/logging"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "contains":
		handleContains()
	case "track":
		handleTrack()
	case "export-kml":
		handleExportKML()
	case "help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func handleContains() {
	fs := flag.NewFlagSet("contains", flag.ExitOnError)
	obs := obstacleFlags(fs)
	lat := fs.Float64("lat", 0, "Sample latitude")
	lng := fs.Float64("lng", 0, "Sample longitude")
	alt := fs.Float64("alt", 0, "Sample altitude MSL in feet")
	fs.Parse(os.Args[2:])

	sample := telemetry.Sample{
		Position:    geo.Point{Latitude: *lat, Longitude: *lng},
		AltitudeMSL: *alt,
		Timestamp:   time.Now(),
	}

	fmt.Printf("contains: %v\n", obs.Contains(sample))
}

func handleTrack() {
	fs := flag.NewFlagSet("track", flag.ExitOnError)
	obs := obstacleFlags(fs)
	trackPath := fs.String("track", "", "Path to a JSON track file")
	configPath := fs.String("config", "", "Optional YAML config file")
	fs.Parse(os.Args[2:])

	track := loadTrack(*trackPath)

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	logger := logging.New(os.Stderr, logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	eval, err := obstacle.NewEvaluator(cfg.EvaluatorConfig(), obstacle.WithLogger(logger))
	if err != nil {
		fatalf("Failed to create evaluator: %v", err)
	}

	collides, err := eval.TrackCollides(context.Background(), *obs, track)
	if err != nil {
		fatalf("Evaluation failed: %v", err)
	}

	fmt.Printf("collision: %v (samples: %d)\n", collides, len(track))
}

func handleExportKML() {
	fs := flag.NewFlagSet("export-kml", flag.ExitOnError)
	obs := obstacleFlags(fs)
	trackPath := fs.String("track", "", "Path to a JSON track file")
	outPath := fs.String("out", "", "Output KML path (stdout if empty)")
	fs.Parse(os.Args[2:])

	track := loadTrack(*trackPath)

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		out = f
	}

	if err := kmlgen.Write(out, *obs, track); err != nil {
		fatalf("Failed to write KML: %v", err)
	}
}

func obstacleFlags(fs *flag.FlagSet) *obstacle.Obstacle {
	obs := &obstacle.Obstacle{}
	fs.Float64Var(&obs.Center.Latitude, "obstacle-lat", 38.0, "Obstacle center latitude")
	fs.Float64Var(&obs.Center.Longitude, "obstacle-lng", -76.0, "Obstacle center longitude")
	fs.Float64Var(&obs.CylinderRadius, "radius", 100, "Cylinder radius in feet")
	fs.Float64Var(&obs.CylinderHeight, "height", 200, "Cylinder height in feet")
	return obs
}

func loadTrack(path string) telemetry.Track {
	if path == "" {
		fatalf("--track is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fatalf("Failed to read track file: %v", err)
	}
	var track telemetry.Track
	if err := json.Unmarshal(data, &track); err != nil {
		fatalf("Failed to parse track file: %v", err)
	}
	return track
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func printUsage() {
	fmt.Println("Usage: test-collision <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  contains     Test whether a single sample is inside the obstacle")
	fmt.Println("  track        Evaluate a JSON track file against the obstacle")
	fmt.Println("  export-kml   Render the obstacle and track as KML")
	fmt.Println("  help         Show this help")
	fmt.Println()
	fmt.Println("Example:")
	fmt.Println("  test-collision track --obstacle-lat 38.0 --obstacle-lng -76.0 --radius 100 --height 200 --track flight.json")
}
