package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	astar "github.com/pdrpinto/astar-maze"
	"github.com/pdrpinto/astar-maze/config"
	"github.com/pdrpinto/astar-maze/internal/logging"
	"github.com/pdrpinto/astar-maze/internal/ui"
	"github.com/pdrpinto/astar-maze/maze"
	"github.com/pdrpinto/astar-maze/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	mazeFile := flag.String("maze", cfg.MazeFile, "maze file with one or more layouts separated by ---")
	index := flag.Int("index", 0, "layout to use from the maze file")
	random := flag.Bool("random", false, "solve a randomly generated maze instead")
	rows := flag.Int("rows", 18, "rows of a random maze")
	cols := flag.Int("cols", 20, "columns of a random maze")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for -random and GUI regeneration")
	pngOut := flag.String("png", "", "write the solved maze to this PNG file")
	gui := flag.Bool("gui", false, "open the animated viewer")
	flag.Parse()

	log := logging.New("MAZESOLVER", cfg.LogLevel)

	g, err := loadGrid(*mazeFile, *index, *random, *rows, *cols, *seed, cfg.WallDensity)
	if err != nil {
		log.WithError(err).Error("loading maze")
		os.Exit(1)
	}

	if *gui {
		err := ui.Run(ui.Options{
			Grid:        g,
			CellSize:    cfg.CellSize,
			MoveDelay:   cfg.MoveDelay,
			WallDensity: cfg.WallDensity,
			Seed:        *seed,
			Logger:      log,
		})
		if err != nil {
			log.WithError(err).Error("running viewer")
			os.Exit(1)
		}
		return
	}

	sol, err := maze.SolveGrid(g, astar.WithLogger(log))
	if err != nil {
		log.WithError(err).Error("solving maze")
		os.Exit(1)
	}

	fmt.Print(g.Overlay(sol.Path))
	if !sol.Found {
		fmt.Println("no path from start to goal")
	} else {
		fmt.Printf("path: %d cells, %d steps, %d nodes expanded\n", len(sol.Path), sol.Cost, sol.Expanded)
	}
	log.WithFields(logrus.Fields{"found": sol.Found, "expanded": sol.Expanded}).Debug("solve finished")

	if *pngOut != "" {
		if err := writePNG(*pngOut, g, sol.Path, cfg.CellSize); err != nil {
			log.WithError(err).Error("writing png")
			os.Exit(1)
		}
		log.WithField("file", *pngOut).Info("image written")
	}
}

func loadGrid(file string, index int, random bool, rows, cols int, seed int64, density float64) (*maze.Grid, error) {
	if random {
		return maze.Generate(rand.New(rand.NewSource(seed)), rows, cols, maze.Coord{Row: 1, Col: 1},
			maze.GenerateOptions{WallDensity: density})
	}
	if file == "" {
		return maze.Default(), nil
	}
	layouts, err := maze.LoadFile(file)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(layouts) {
		return nil, fmt.Errorf("%s has %d layouts, index %d out of range", file, len(layouts), index)
	}
	return layouts[index].Grid, nil
}

func writePNG(path string, g *maze.Grid, p maze.Path, cellSize int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	start, _ := g.Start()
	if err := render.WritePNG(f, g, p, &start, render.Options{CellSize: cellSize}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
