package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/jsphweid/chordid/theory"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Lists the chord qualities that can be recognized",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "quality\tsymbol\tintervals")
		for _, t := range theory.Templates() {
			var names []string
			for _, iv := range t.Intervals.Slice() {
				names = append(names, theory.NameInterval(iv))
			}
			fmt.Fprintf(w, "%s\tC%s\t%s\n", t.Quality, t.Symbol, strings.Join(names, " "))
		}
		w.Flush()
	},
}
