// Command cluster-report performs agglomerative clustering of 2-D labeled
// points. It reads a flat text file of "id x y" lines, starts with one
// cluster per point, and repeatedly merges the two closest clusters (by
// average pairwise distance) until the requested cluster count is reached,
// then prints the result and optionally renders it as a PNG or HTML scatter.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/banshee-data/cluster.report/internal/cluster"
	"github.com/banshee-data/cluster.report/internal/config"
	"github.com/banshee-data/cluster.report/internal/pointfile"
	"github.com/banshee-data/cluster.report/internal/render"
)

var (
	targetCount = flag.Int("n", 1, "Number of clusters to stop at")
	configPath  = flag.String("config", "", "Optional JSON params file")
	plotPath    = flag.String("plot", "", "Write a PNG scatter of the final clusters to this path")
	htmlPath    = flag.String("html", "", "Write an interactive HTML scatter of the final clusters to this path")
	summary     = flag.Bool("summary", false, "Print per-cluster metrics after the cluster listing")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <pointfile>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), os.Stdout); err != nil {
		log.Fatalf("cluster-report: %v", err)
	}
}

// run loads the input file, reduces it to the target cluster count, and
// renders the result on out plus any requested plot outputs.
func run(path string, out io.Writer) error {
	var params *config.Params
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		params = loaded
	}

	col, err := pointfile.LoadFile(path, params.GetGrowthChunk())
	if err != nil {
		return err
	}
	log.Printf("loaded %d points from %s", col.TotalPoints(), path)

	if err := cluster.Reduce(col, *targetCount); err != nil {
		return fmt.Errorf("clustering: %w", err)
	}

	if err := render.WriteClusters(out, col); err != nil {
		return fmt.Errorf("printing clusters: %w", err)
	}
	if *summary {
		if err := render.WriteSummaries(out, col); err != nil {
			return fmt.Errorf("printing summaries: %w", err)
		}
	}

	if *plotPath != "" {
		if err := render.ScatterPNG(*plotPath, col, params); err != nil {
			return err
		}
		log.Printf("wrote plot to %s", *plotPath)
	}
	if *htmlPath != "" {
		if err := render.ScatterHTML(*htmlPath, col, params); err != nil {
			return err
		}
		log.Printf("wrote chart to %s", *htmlPath)
	}

	return nil
}
