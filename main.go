// Command nvisposter renders print-quality posters of NVIS magnetic-loop
// antenna installations on vehicle roofs. The five built-in posters come
// from the embedded catalog; -catalog swaps in a user supplied one.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/posterforge/nvisposter/internal/catalog"
	"github.com/posterforge/nvisposter/internal/humanize"
	"github.com/posterforge/nvisposter/internal/poster"
)

const (
	appName = "nvisposter"
	version = "1.1.0"
)

// defined flags
var (
	levelFlag   logLevelFlag
	fmtFlag     formatFlag
	allFlag     = flag.Bool("all", false, "Render every poster in the catalog")
	listFlag    = flag.Bool("list", false, "List the available posters and exit")
	outFlag     = flag.String("o", ".", "Output directory")
	scaleFlag   = flag.Float64("scale", 1.0, "Resolution scale factor for preview renders (0 < scale <= 1)")
	catalogFlag = flag.String("catalog", "", "Replace the built-in catalog with a YAML file")
	logFileFlag = flag.Bool("logfile", false, "Write logs to a rotating file in the output directory instead of the console")
	versionFlag = flag.Bool("v", false, "Print version and exit")
)

func init() {
	levelFlag.value = slog.LevelInfo
	flag.Var(&levelFlag, "loglevel", "set log level")
	fmtFlag.value = poster.FormatJPG
	flag.Var(&fmtFlag, "format", "output format: jpg, png or webp")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [poster name ...]\n", appName)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	slog.SetLogLoggerLevel(levelFlag.value)
	if *versionFlag {
		fmt.Printf("%s %s\n", appName, version)
		return
	}
	defs, err := loadCatalog(*catalogFlag)
	if err != nil {
		log.Fatal(err)
	}
	if *listFlag {
		listPosters(os.Stdout, defs)
		return
	}
	if *scaleFlag <= 0 || *scaleFlag > 1 {
		log.Fatalf("invalid -scale %v: must be in (0, 1]", *scaleFlag)
	}
	picked, err := pickPosters(defs, flag.Args(), *allFlag)
	if err != nil {
		log.Fatal(err)
	}
	if len(picked) == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if err := os.MkdirAll(*outFlag, 0o755); err != nil {
		log.Fatal(err)
	}
	if *logFileFlag {
		log.SetOutput(&lumberjack.Logger{
			Filename:   filepath.Join(*outFlag, appName+".log"),
			MaxSize:    50, // megabytes
			MaxBackups: 3,
		})
	}
	r := poster.New(poster.Params{Scale: *scaleFlag})
	if err := renderAll(context.Background(), r, picked, *outFlag, fmtFlag.value); err != nil {
		slog.Error("rendering failed", "error", err)
		os.Exit(1)
	}
}

// listPosters prints one line per poster with its print size and the
// pixel count of a full resolution render.
func listPosters(w io.Writer, defs []catalog.Definition) {
	dpi := poster.New(poster.Params{}).DPI()
	for _, d := range defs {
		px := int(d.WidthIn*dpi) * int(d.HeightIn*dpi)
		fmt.Fprintf(w, "%-22s %gx%g in  %spx  %s\n",
			d.Name, d.WidthIn, d.HeightIn, humanize.Number(px, 1), d.Title)
	}
}

// loadCatalog returns the built-in posters, or the posters from a user
// supplied catalog file when one is given.
func loadCatalog(path string) ([]catalog.Definition, error) {
	if path == "" {
		return catalog.All()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	defs, err := catalog.Load(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return defs, nil
}

// pickPosters resolves the requested poster names against the catalog.
// Unknown names fail here, before any rendering starts.
func pickPosters(defs []catalog.Definition, names []string, all bool) ([]catalog.Definition, error) {
	if all {
		return defs, nil
	}
	byName := make(map[string]catalog.Definition, len(defs))
	for _, d := range defs {
		byName[d.Name] = d
	}
	picked := make([]catalog.Definition, 0, len(names))
	for _, n := range names {
		d, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("%w: %q (use -list to see the catalog)", catalog.ErrNotFound, n)
		}
		picked = append(picked, d)
	}
	return picked, nil
}

// renderAll renders the posters concurrently, one worker per CPU at
// most. The first failure cancels the remaining renders.
func renderAll(ctx context.Context, r *poster.Renderer, defs []catalog.Definition, dir, format string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(min(runtime.NumCPU(), len(defs)))
	var mu sync.Mutex // keeps the two status lines of a poster together
	for _, def := range defs {
		g.Go(func() error {
			path, err := r.RenderFile(ctx, def, dir, format)
			if err != nil {
				return fmt.Errorf("render %s: %w", def.Name, err)
			}
			mu.Lock()
			defer mu.Unlock()
			printStatus(def, path, r.DPI())
			return nil
		})
	}
	return g.Wait()
}

// printStatus prints the two per-poster status lines.
func printStatus(def catalog.Definition, path string, dpi float64) {
	fmt.Printf("Saved: %s\n", filepath.Base(path))
	var size string
	if fi, err := os.Stat(path); err == nil {
		size = humanize.Bytes(fi.Size())
	}
	fmt.Printf("Size: %.0f x %.0f px = %gx%g in @ %g DPI (%s)\n",
		def.WidthIn*dpi, def.HeightIn*dpi, def.WidthIn, def.HeightIn, dpi, size)
}
