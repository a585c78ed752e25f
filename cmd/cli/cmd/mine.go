package cmd

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yshekhar/cliquecoloc/internal/colocation"
	"github.com/yshekhar/cliquecoloc/internal/service"
	"github.com/yshekhar/cliquecoloc/internal/statistics"
	"github.com/yshekhar/cliquecoloc/pkg/compression"
)

var (
	mineInput    string
	mineOutput   string
	mineScheme   string
	mineMinDist  float64
	mineMinPrev  float64
	mineWorkers  int
	minePersist  bool
	mineTop      int
	mineMinSize  int
	mineCompress string
)

// mineCmd represents the mine command
var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Mine co-location patterns from a spatial instance file",
	Long: `Mine runs the full co-location pipeline against a CSV instance table:
materialize neighborhoods within min-dist, enumerate maximal cliques with
the requested scheme, index them, and filter down to patterns whose
participation index clears min-prev.`,
	RunE: runMine,
}

func init() {
	rootCmd.AddCommand(mineCmd)

	binName := BinName()
	mineCmd.Example = fmt.Sprintf(`  # Mine with default scheme and thresholds
  %s mine -i ./instances.csv

  # Neighborhood-driven scheme with a tighter distance threshold
  %s mine -i ./instances.csv --scheme nds --min-dist 5

  # Persist the run and its patterns to the configured database
  %s mine -i ./instances.csv --persist

  # Write the discovered patterns to a file
  %s mine -i ./instances.csv -o ./patterns.csv

  # Keep only the 10 strongest patterns of at least 3 features
  %s mine -i ./instances.csv --top 10 --min-size 3

  # Write a zstd-compressed patterns file
  %s mine -i ./instances.csv -o ./patterns.csv --compress zstd`,
		binName, binName, binName, binName, binName, binName)

	mineCmd.Flags().StringVarP(&mineInput, "input", "i", "", "Input instance CSV file (required)")
	mineCmd.Flags().StringVarP(&mineOutput, "output", "o", "", "Output file for discovered patterns (CSV); printed to stdout if empty")
	mineCmd.Flags().StringVar(&mineScheme, "scheme", "", "Clique enumeration scheme: ids or nds (defaults to the configured mining.default_scheme)")
	mineCmd.Flags().Float64Var(&mineMinDist, "min-dist", 0, "Neighbor distance threshold (defaults to mining.default_min_dist)")
	mineCmd.Flags().Float64Var(&mineMinPrev, "min-prev", 0, "Minimum participation index (defaults to mining.default_min_prev)")
	mineCmd.Flags().IntVar(&mineWorkers, "workers", 0, "Worker goroutines for neighborhood materialization (defaults to mining.workers)")
	mineCmd.Flags().BoolVar(&minePersist, "persist", false, "Persist the run and its prevalent patterns to the database")
	mineCmd.Flags().IntVar(&mineTop, "top", 0, "Keep only the N strongest patterns by participation index (0 keeps all)")
	mineCmd.Flags().IntVar(&mineMinSize, "min-size", 0, "Drop patterns with fewer than N features (0 keeps all sizes)")
	mineCmd.Flags().StringVar(&mineCompress, "compress", "none", "Compress the written patterns file: none, gzip, or zstd")
	mineCmd.MarkFlagRequired("input")
}

func runMine(cmd *cobra.Command, args []string) error {
	log := GetLogger()
	config := GetConfig()

	if _, err := os.Stat(mineInput); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", mineInput)
	}

	scheme := colocation.Scheme(mineScheme)
	if scheme == "" {
		scheme = colocation.Scheme(config.Mining.DefaultScheme)
	}

	minDist := mineMinDist
	if minDist <= 0 {
		minDist = config.Mining.DefaultMinDist
	}

	minPrev := mineMinPrev
	if !cmd.Flags().Changed("min-prev") {
		minPrev = config.Mining.DefaultMinPrev
	}

	workers := mineWorkers
	if workers <= 0 {
		workers = config.Mining.Workers
	}

	// Point local storage at the input file's own directory so the pipeline
	// can resolve it as a plain storage key.
	config.Storage.Type = "local"
	config.Storage.LocalPath = filepath.Dir(mineInput)

	svc, err := service.New(config, log)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	if minePersist {
		if err := svc.Initialize(cmd.Context()); err != nil {
			return fmt.Errorf("failed to initialize service: %w", err)
		}
		defer svc.Stop()
	} else {
		if err := svc.InitializeStorageOnly(); err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
	}

	log.Info("=== Co-location Mining ===")
	log.Info("Input file:  %s", mineInput)
	log.Info("Scheme:      %s", scheme)
	log.Info("Min dist:    %.4f", minDist)
	log.Info("Min prev:    %.4f", minPrev)
	log.Info("Workers:     %d", workers)
	log.Info("")

	result, err := svc.Run(cmd.Context(), service.RunParams{
		SourceKey: filepath.Base(mineInput),
		MinDist:   minDist,
		MinPrev:   minPrev,
		Scheme:    scheme,
		Workers:   workers,
		Persist:   minePersist,
	})
	if err != nil {
		return fmt.Errorf("mining failed: %w", err)
	}

	log.Info("Instances:   %d", result.InstanceCount)
	log.Info("Cliques:     %d", result.CliqueCount)
	log.Info("Patterns:    %d", len(result.Patterns))
	log.Info("")

	ranked := statistics.NewTopPatternsCalculator(
		statistics.WithTopN(mineTop),
		statistics.WithMinSize(mineMinSize),
	).Calculate(result.Patterns)

	log.Info("Ranked:      %d (of %d mined)", len(ranked.Patterns), ranked.TotalMined)

	return writeMiningResult(ranked.Patterns, mineOutput, mineCompress)
}

func writeMiningResult(patterns []statistics.PatternEntry, outputPath, compressName string) error {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write([]string{"features", "feature_count", "pi"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, p := range patterns {
		row := []string{
			joinFeatures(p.Features),
			strconv.Itoa(len(p.Features)),
			strconv.FormatFloat(p.PI, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	payload, ext, err := compressPayload(buf.Bytes(), compressName)
	if err != nil {
		return err
	}

	if outputPath == "" {
		_, err := os.Stdout.Write(payload)
		return err
	}
	if ext != "" && filepath.Ext(outputPath) != ext {
		outputPath += ext
	}
	return os.WriteFile(outputPath, payload, 0644)
}

// compressPayload runs data through the compressor named by name ("none",
// "gzip", or "zstd"), returning the result and the file extension that
// conventionally marks it so callers can name the output file accordingly.
func compressPayload(data []byte, name string) ([]byte, string, error) {
	switch name {
	case "", "none":
		return data, "", nil
	case "gzip":
		out, err := compression.NewGzipCompressor(compression.LevelDefault).Compress(data)
		if err != nil {
			return nil, "", fmt.Errorf("gzip compression: %w", err)
		}
		return out, ".gz", nil
	case "zstd":
		comp, err := compression.NewZstdCompressor(compression.LevelDefault)
		if err != nil {
			return nil, "", fmt.Errorf("zstd compression: %w", err)
		}
		defer comp.Close()
		out, err := comp.Compress(data)
		if err != nil {
			return nil, "", fmt.Errorf("zstd compression: %w", err)
		}
		return out, ".zst", nil
	default:
		return nil, "", fmt.Errorf("unknown --compress value %q (want none, gzip, or zstd)", name)
	}
}

func joinFeatures(features []string) string {
	out := ""
	for i, f := range features {
		if i > 0 {
			out += "+"
		}
		out += f
	}
	return out
}
