package cmd

import (
	"fmt"

	"github.com/jsphweid/chordid/file"
	"github.com/spf13/cobra"
)

var everyChange bool

func init() {
	inspectCmd.Flags().BoolVar(&everyChange, "every", false, "print every change of held notes, even when the name repeats")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Names the chords in a MIDI file",
	Long:  `Names the chords in a MIDI file`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func inspect(path string) error {
	report, err := file.NewAnalyzer(preferFlats).Analyze(path)
	if err != nil {
		return err
	}

	labels := report.Collapse()
	if everyChange {
		labels = report.Labels
	}
	for _, l := range labels {
		fmt.Printf("%9.3fs  %-14s %v\n", float64(l.Offset)/1000, l.Result.Short(), l.Result.Notes)
	}
	return nil
}
