package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"leetscan/digitindex"
	"leetscan/report"
)

var (
	lookupResults string
	lookupPrefix  bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <digits>",
	Short: "find which words produced a digit string in a result file",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookup,
}

func init() {
	lookupCmd.Flags().StringVar(&lookupResults, "results", "", "result YAML file written by a previous scan")
	lookupCmd.MarkFlagRequired("results")
	lookupCmd.Flags().BoolVar(&lookupPrefix, "prefix", false, "treat the argument as a digit-string prefix")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	result, err := report.Read(lookupResults)
	if err != nil {
		return err
	}
	index := digitindex.New(result)
	if lookupPrefix {
		entries := index.WithPrefix(args[0])
		if len(entries) == 0 {
			return fmt.Errorf("no digit strings with prefix %q in %s", args[0], lookupResults)
		}
		for _, entry := range entries {
			fmt.Printf("%s: %s\n", entry.Digits, strings.Join(entry.Words, " "))
		}
		return nil
	}
	words := index.Words(args[0])
	if len(words) == 0 {
		return fmt.Errorf("no words for digit string %q in %s", args[0], lookupResults)
	}
	for _, word := range words {
		fmt.Println(word)
	}
	return nil
}
