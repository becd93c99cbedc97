package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marigoldlabs/lottieslim/internal/lottie"
	"github.com/marigoldlabs/lottieslim/internal/optimizer"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show layer/asset/keyframe statistics without modifying anything",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read animation: %w", err)
		}
		doc, err := lottie.Parse(data)
		if err != nil {
			return err
		}
		if !lottie.Validate(doc) {
			return fmt.Errorf("%s is not a valid Lottie animation (missing required fields)", path)
		}
		st, err := optimizer.Inspect(doc)
		if err != nil {
			return err
		}
		fmt.Println(st.Markdown(path))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
