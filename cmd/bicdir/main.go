// Command bicdir converts an ISO BIC directory PDF to CSV or XLSX.
//
// Usage:
//
//	bicdir [-out file.csv] [-xlsx file.xlsx] [-config cfg.yaml] input.pdf
//
// Without -out or -xlsx the output is a CSV named after the input file.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fintools-oss/bicdir"
)

func main() {
	var (
		out    = flag.String("out", "", "output CSV file path (defaults to the input name with .csv)")
		xlsx   = flag.String("xlsx", "", "output XLSX file path (writes a workbook instead of CSV)")
		config = flag.String("config", "", "YAML file with layout option overrides")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-out file.csv] [-xlsx file.xlsx] [-config cfg.yaml] input.pdf\n", filepath.Base(os.Args[0]))
		os.Exit(1)
	}
	input := flag.Arg(0)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	opts := bicdir.DefaultOptions()
	if *config != "" {
		loaded, err := bicdir.OptionsFromYAML(*config)
		if err != nil {
			logger.Error("failed to load config", "path", *config, "error", err)
			os.Exit(1)
		}
		opts = loaded
	}

	destination := *out
	format := "csv"
	if *xlsx != "" {
		destination = *xlsx
		format = "xlsx"
	} else if destination == "" {
		destination = strings.TrimSuffix(input, filepath.Ext(input)) + ".csv"
	}

	start := time.Now()
	count, err := run(input, destination, format, opts)
	if err != nil {
		logger.Error("conversion failed", "input", input, "error", err)
		os.Exit(1)
	}

	logger.Info("conversion complete",
		"input", input,
		"output", destination,
		"format", format,
		"records", count,
		"duration", time.Since(start).String())
}

func run(input, destination, format string, opts bicdir.ExtractOptions) (int, error) {
	extractor := bicdir.Open(input).WithOptions(opts)

	f, err := os.Create(destination)
	if err != nil {
		return 0, fmt.Errorf("create output file: %w", err)
	}

	var count int
	if format == "xlsx" {
		count, err = extractor.WriteXLSX(f)
	} else {
		count, err = extractor.WriteCSV(f)
	}
	if err != nil {
		f.Close()
		os.Remove(destination)
		return 0, err
	}

	return count, f.Close()
}
