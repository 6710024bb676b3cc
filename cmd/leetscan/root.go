package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"leetscan"
	"leetscan/report"
	"leetscan/scan"
	"leetscan/subsfile"
	"leetscan/wordlist"
)

var (
	flagInput   string
	flagMode    string
	flagMinLen  int
	flagMaxLen  int
	flagWorkers int
	flagOutput  string
	flagVerbose bool
	flagSubs    string
)

var rootCmd = &cobra.Command{
	Use:   "leetscan",
	Short: "map words or word suffixes to leet-speak digit strings",
	Long: `leetscan reads a word list from a file or URL and finds every word (mode
word) or word suffix (mode suffix) that expands entirely into digits under
a per-letter substitution map, keeping digit strings whose length falls
into [minlen, maxlen]. Results are grouped by digit string and written as
YAML.`,
	SilenceUsage: true,
	RunE:         runScan,
}

func init() {
	rootCmd.Flags().StringVarP(&flagInput, "input", "i", "", "URL (http:// or https://) or path of the word list")
	rootCmd.MarkFlagRequired("input")
	rootCmd.Flags().StringVar(&flagMode, "mode", "word", "matching mode: word or suffix")
	rootCmd.Flags().IntVar(&flagMinLen, "minlen", 6, "minimum digit-string length")
	rootCmd.Flags().IntVar(&flagMaxLen, "maxlen", 9, "maximum digit-string length")
	rootCmd.Flags().IntVarP(&flagWorkers, "workers", "w", runtime.NumCPU(), "number of concurrent scan workers")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output YAML file (default <mode>_<minlen>_<maxlen>.yaml)")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "also print the result to the console")
	rootCmd.Flags().StringVar(&flagSubs, "subs", "", "YAML file with substitution-map overrides")
}

func runScan(cmd *cobra.Command, args []string) error {
	// Configuration errors surface before any loading or scanning work.
	mode, err := leetscan.ParseMode(flagMode)
	if err != nil {
		return err
	}
	rng, err := leetscan.NewRange(flagMinLen, flagMaxLen)
	if err != nil {
		return err
	}
	overrides, err := subsfile.Load(flagSubs)
	if err != nil {
		return err
	}
	subs, err := leetscan.Build(overrides)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	words, err := wordlist.Load(ctx, flagInput)
	if err != nil {
		return err
	}
	slog.Info("scanning", "words", len(words), "mode", mode.String(), "range",
		fmt.Sprintf("[%d,%d]", rng.Min, rng.Max), "workers", flagWorkers)
	index, err := scan.Run(ctx, subs, words, mode, rng, flagWorkers)
	if err != nil {
		return err
	}
	output := flagOutput
	if output == "" {
		output = fmt.Sprintf("%s_%d_%d.yaml", mode, flagMinLen, flagMaxLen)
	}
	if err := report.Write(index, output); err != nil {
		return err
	}
	slog.Info("result written", "file", output, "digit_strings", index.Len())
	if flagVerbose {
		return report.Render(index, os.Stdout)
	}
	return nil
}
