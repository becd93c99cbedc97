package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/marigoldlabs/lottieslim/internal/lottie"
	"github.com/marigoldlabs/lottieslim/internal/optimizer"
	"github.com/marigoldlabs/lottieslim/internal/utils"
)

var (
	batchOutDir string
	batchQuiet  bool
)

// batchEntry records the outcome for one input file in report.json.
type batchEntry struct {
	File          string  `json:"file"`
	Output        string  `json:"output,omitempty"`
	Digest        string  `json:"digest"`
	DuplicateOf   string  `json:"duplicate_of,omitempty"`
	SkippedReason string  `json:"skipped,omitempty"`
	OriginalSize  int     `json:"original_size,omitempty"`
	OptimizedSize int     `json:"optimized_size,omitempty"`
	Savings       int     `json:"savings,omitempty"`
	SavingsPct    float64 `json:"savings_pct,omitempty"`
}

type batchReport struct {
	RunID          string       `json:"run_id"`
	StartedAt      time.Time    `json:"started_at"`
	InputDir       string       `json:"input_dir"`
	OutputDir      string       `json:"output_dir"`
	Entries        []batchEntry `json:"entries"`
	TotalOriginal  int          `json:"total_original"`
	TotalOptimized int          `json:"total_optimized"`
}

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Optimize every .json animation under a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		outDir := batchOutDir
		if outDir == "" && cfg != nil && cfg.BatchOutputDir != "" {
			outDir = cfg.BatchOutputDir
		}
		if outDir == "" {
			outDir = strings.TrimSuffix(dir, string(filepath.Separator)) + "-optimized"
		}
		suffix := ".min"
		if cfg != nil && cfg.BatchSuffix != "" {
			suffix = cfg.BatchSuffix
		}

		files, err := utils.ListJSONFiles(dir)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no .json files found under %s", dir)
		}

		opts := optionsFromFlags(cmd)
		report := batchReport{
			RunID:     uuid.NewString(),
			StartedAt: time.Now().UTC(),
			InputDir:  dir,
			OutputDir: outDir,
		}
		// digest -> first file carrying those bytes
		seen := map[string]string{}

		for _, path := range files {
			entry := batchEntry{File: path}
			data, err := os.ReadFile(path)
			if err != nil {
				entry.SkippedReason = fmt.Sprintf("read: %v", err)
				report.Entries = append(report.Entries, entry)
				continue
			}
			entry.Digest = utils.Fingerprint(data)
			if first, dup := seen[entry.Digest]; dup {
				entry.DuplicateOf = first
				report.Entries = append(report.Entries, entry)
				if !batchQuiet {
					fmt.Printf("⚠ %s: byte-identical to %s, skipped\n", path, first)
				}
				continue
			}
			seen[entry.Digest] = path

			doc, err := lottie.Parse(data)
			if err != nil || !lottie.Validate(doc) {
				entry.SkippedReason = "not a valid Lottie animation"
				report.Entries = append(report.Entries, entry)
				if !batchQuiet {
					fmt.Printf("⚠ %s: not a valid Lottie animation, skipped\n", path)
				}
				continue
			}

			res, err := optimizer.Optimize(doc, opts)
			if err != nil {
				entry.SkippedReason = fmt.Sprintf("optimize: %v", err)
				report.Entries = append(report.Entries, entry)
				continue
			}

			rel, err := filepath.Rel(dir, path)
			if err != nil {
				rel = filepath.Base(path)
			}
			out := filepath.Join(outDir, strings.TrimSuffix(rel, ".json")+suffix+".json")
			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return fmt.Errorf("mkdir output dir: %w", err)
			}
			b, err := lottie.Canonical(res.Optimized)
			if err != nil {
				return err
			}
			if err := utils.SafeWriteFile(out, b); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			entry.Output = out
			entry.OriginalSize = res.OriginalSize
			entry.OptimizedSize = res.OptimizedSize
			entry.Savings = res.Savings
			entry.SavingsPct = res.SavingsPct
			report.Entries = append(report.Entries, entry)
			report.TotalOriginal += res.OriginalSize
			report.TotalOptimized += res.OptimizedSize
			if !batchQuiet {
				fmt.Printf("✓ %s: %d → %d bytes (%.1f%%)\n", path, res.OriginalSize, res.OptimizedSize, res.SavingsPct)
			}
		}

		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("mkdir output dir: %w", err)
		}
		rb, err := utils.PrettyJSON(report)
		if err != nil {
			return err
		}
		reportPath := filepath.Join(outDir, "report.json")
		if err := utils.SafeWriteFile(reportPath, rb); err != nil {
			return fmt.Errorf("write report: %w", err)
		}

		saved := report.TotalOriginal - report.TotalOptimized
		fmt.Printf("✓ Batch complete: %d files, %d → %d bytes (saved %d)\n",
			len(files), report.TotalOriginal, report.TotalOptimized, saved)
		fmt.Printf("✓ Report: %s\n", reportPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVarP(&batchOutDir, "out", "o", "", "output directory (default <dir>-optimized)")
	batchCmd.Flags().BoolVarP(&batchQuiet, "quiet", "q", false, "suppress per-file progress")
	registerPassFlags(batchCmd)
}
