package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"unicode/utf8"

	"github.com/hailam/chessmodel/internal/board"
	"github.com/hailam/chessmodel/internal/render"
	"github.com/hailam/chessmodel/internal/storage"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	fenFlag    = flag.String("fen", "", "FEN piece placement to load instead of the starting position")
	loadFlag   = flag.String("load", "", "snapshot id to load")
	saveFlag   = flag.String("save", "", "save the position as a snapshot with this name")
	deleteFlag = flag.String("delete", "", "snapshot id to delete")
	listFlag   = flag.Bool("list", false, "list stored snapshots and exit")
	dbFlag     = flag.String("db", "", "snapshot store directory (default $CHESSMODEL_DB or the user data dir)")
	pngFlag    = flag.String("png", "", "also write the board as PNG to this path")
	sizeFlag   = flag.Int("size", 64, "PNG square size in pixels")
	coordsFlag = flag.Bool("coords", true, "draw coordinates in PNG output")
	colorFlag  = flag.Bool("color", false, "colorize text output")
	fillerFlag = flag.String("filler", "#", "character for empty squares in text output")
	validate   = flag.Bool("validate", false, "report off-board and overlapping pieces")
)

func main() {
	flag.Parse()

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	if err := run(); err != nil {
		pprof.StopCPUProfile()
		log.Fatal(err)
	}
}

func run() error {
	store, err := openStore()
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	prefs, err := loadPreferences(store)
	if err != nil {
		return err
	}

	if store != nil && *deleteFlag != "" {
		if err := store.DeleteSnapshot(*deleteFlag); err != nil {
			return err
		}
		log.Printf("Deleted snapshot %s", *deleteFlag)
		return nil
	}

	if store != nil && *listFlag {
		return listSnapshots(store)
	}

	state, err := loadState(store)
	if err != nil {
		return err
	}

	if *validate {
		if err := state.Validate(); err != nil {
			log.Printf("Position has problems:\n%v", err)
		}
	}

	text := render.TextRenderer{Filler: prefs.fillerRune(), Color: prefs.Color}
	fmt.Print(text.Render(state.GenerateBoard(nil)))

	if *pngFlag != "" {
		if err := writePNG(*pngFlag, state, prefs); err != nil {
			return err
		}
		log.Printf("Wrote %s", *pngFlag)
	}

	if store != nil && *saveFlag != "" {
		snap, err := store.SaveSnapshot(*saveFlag, state)
		if err != nil {
			return err
		}
		log.Printf("Saved snapshot %s (%s)", snap.ID, snap.Name)
	}

	return nil
}

// needsStore reports whether any flag requires the snapshot store.
func needsStore() bool {
	return *dbFlag != "" || *loadFlag != "" || *saveFlag != "" || *deleteFlag != "" || *listFlag
}

// openStore opens the store requested by flags. Without store flags it
// opens an existing default store so saved preferences apply, and runs
// without one when that is missing or busy.
func openStore() (*storage.Storage, error) {
	if !needsStore() {
		store, err := storage.OpenExisting()
		if err != nil {
			log.Printf("Warning: stored preferences unavailable: %v", err)
			return nil, nil
		}
		return store, nil
	}
	if *dbFlag != "" {
		return storage.Open(*dbFlag)
	}
	return storage.NewStorage()
}

type preferences struct {
	*storage.Preferences
}

func (p preferences) fillerRune() rune {
	r, _ := utf8.DecodeRuneInString(p.Filler)
	if r == utf8.RuneError {
		return render.DefaultFiller
	}
	return r
}

// loadPreferences returns stored preferences overridden by flags given on
// the command line.
func loadPreferences(store *storage.Storage) (preferences, error) {
	prefs := storage.DefaultPreferences()
	if store != nil {
		var err error
		if prefs, err = store.LoadPreferences(); err != nil {
			return preferences{}, fmt.Errorf("load preferences: %w", err)
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			prefs.SquareSize = *sizeFlag
		case "coords":
			prefs.ShowCoordinates = *coordsFlag
		case "color":
			prefs.Color = *colorFlag
		case "filler":
			prefs.Filler = *fillerFlag
		}
	})

	return preferences{prefs}, nil
}

func loadState(store *storage.Storage) (*board.GameState, error) {
	switch {
	case *fenFlag != "" && *loadFlag != "":
		return nil, fmt.Errorf("-fen and -load are mutually exclusive")
	case *fenFlag != "":
		return board.ParsePlacement(*fenFlag)
	case *loadFlag != "":
		snap, err := store.LoadSnapshot(*loadFlag)
		if err != nil {
			return nil, err
		}
		return snap.GameState()
	default:
		return board.NewGameState(), nil
	}
}

func listSnapshots(store *storage.Storage) error {
	snaps, err := store.ListSnapshots()
	if err != nil {
		return err
	}
	for _, snap := range snaps {
		fmt.Printf("%s  %s  %-20s %d pieces\n",
			snap.ID, snap.CreatedAt.Format("2006-01-02 15:04:05"), snap.Name, len(snap.Pieces))
	}
	return nil
}

func writePNG(path string, state *board.GameState, prefs preferences) error {
	r, err := render.NewImageRenderer(prefs.SquareSize, prefs.ShowCoordinates)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.EncodePNG(f, r.Render(state.GenerateBoard(nil))); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
