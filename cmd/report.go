package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/jsphweid/chordid/file"
	"github.com/jsphweid/chordid/logging"
	"github.com/jsphweid/chordid/model"
	"github.com/jsphweid/chordid/util"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

var top int

func init() {
	reportCmd.Flags().IntVar(&top, "top", 20, "number of chord names to list")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <dir> [max files]",
	Short: "Creates a report of the chords in a directory of MIDI files",
	Long:  `Creates a report of the chords in a directory of MIDI files`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var maxNum int
		if len(args) == 2 {
			arg1, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			maxNum = arg1
		}
		return report(args[0], maxNum)
	},
}

type labelCount struct {
	label string
	count int
}

type chordsReport struct {
	numFiles      int
	skippedFiles  int
	chordsPerFile []int
	noChord       int
	counts        map[string]int
}

func (r chordsReport) topLabels(n int) []labelCount {
	var res []labelCount
	for _, label := range util.GetKeys(r.counts) {
		res = append(res, labelCount{label, r.counts[label]})
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].count > res[j].count
	})
	return res[:util.Min(n, len(res))]
}

func analyzeFiles(analyzer *file.Analyzer, paths []string) chordsReport {
	r := chordsReport{counts: make(map[string]int)}
	for i, path := range paths {
		logging.WithFields(logging.Fields{"file": path}).Debugf("Processing %v of %v midi files", i+1, len(paths))
		rep, err := analyzer.Analyze(path)
		if err != nil {
			logging.WithFields(logging.Fields{"file": path}).Warnf("Skipping because: %v", err)
			r.skippedFiles++
			continue
		}
		r.numFiles++
		r.chordsPerFile = append(r.chordsPerFile, len(rep.Labels))
		for _, l := range rep.Labels {
			if l.Result.Kind == model.NoChord {
				r.noChord++
				continue
			}
			r.counts[l.Result.Short()]++
		}
	}
	return r
}

func report(dir string, maxNum int) error {
	paths, err := util.GatherAllMidiPaths(dir, maxNum)
	if err != nil {
		return err
	}
	analyzer := file.NewAnalyzer(preferFlats)
	r := analyzeFiles(analyzer, paths)

	perFile := make([]float64, len(r.chordsPerFile))
	for i, n := range r.chordsPerFile {
		perFile[i] = float64(n)
	}

	fmt.Printf("files analyzed: %v (skipped %v)\n", r.numFiles, r.skippedFiles)
	fmt.Printf("chords: %v (no chord: %v, cache hits: %v)\n", util.Sum(r.chordsPerFile), r.noChord, analyzer.CacheHits())
	if len(perFile) > 0 {
		mean, std := stat.MeanStdDev(perFile, nil)
		fmt.Printf("chords per file: mean %.1f, std dev %.1f\n", mean, std)
	}
	fmt.Printf("top %v chord names:\n", top)
	for _, lc := range r.topLabels(top) {
		fmt.Printf("  %-14s %v\n", lc.label, lc.count)
	}
	return nil
}
