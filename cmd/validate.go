package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marigoldlabs/lottieslim/internal/lottie"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file...>",
	Short: "Check files for the required Lottie structure",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				fmt.Printf("✗ %s: %v\n", path, err)
				failed++
				continue
			}
			doc, err := lottie.Parse(data)
			if err != nil || !lottie.Validate(doc) {
				fmt.Printf("✗ %s: not a valid Lottie animation\n", path)
				failed++
				continue
			}
			fmt.Printf("✓ %s\n", path)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed validation", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
