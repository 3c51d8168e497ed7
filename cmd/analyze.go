package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/jsphweid/chordid/chord"
	"github.com/spf13/cobra"
)

var (
	showAll bool
	explain bool
)

func init() {
	analyzeCmd.Flags().BoolVar(&showAll, "all", false, "also list every matching chord name")
	analyzeCmd.Flags().BoolVar(&explain, "explain", false, "print the score breakdown of each candidate")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:     "analyze <note>...",
	Short:   "Names the chord formed by notes",
	Long:    `Names the chord formed by notes such as C E G, Bb3 D4 F4 or "C#,E,G#".`,
	Example: "  chordid analyze E3 G3 C4\n  chordid analyze --flats Db F Ab C",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return analyze(splitNotes(args))
	},
}

func splitNotes(args []string) []string {
	var notes []string
	for _, arg := range args {
		for _, n := range strings.Split(arg, ",") {
			if n = strings.TrimSpace(n); n != "" {
				notes = append(notes, n)
			}
		}
	}
	return notes
}

func analyze(notes []string) error {
	res, labels, err := chord.AnalyzeAll(notes, preferFlats)
	if err != nil {
		return err
	}
	fmt.Println(res.String())

	if showAll && len(labels) > 0 {
		fmt.Printf("Candidates: %v\n", strings.Join(labels, " "))
	}
	if !explain {
		return nil
	}
	ranked, err := chord.Explain(notes, preferFlats)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "label\tscore\tcoverage\tthird\tseventh\tcomplexity\tbass\trealism\ttriad")
	for _, sc := range ranked {
		t := sc.Terms
		fmt.Fprintf(w, "%s\t%.3f\t%.3f\t%.2f\t%.2f\t%.3f\t%.2f\t%.2f\t%.2f\n",
			sc.Label, sc.Score, t.Coverage, t.MissingThird, t.MissingSeven,
			t.Complexity, t.BassFit, t.Realism, t.CleanTriad)
	}
	return w.Flush()
}
