// Command leetscan scans a word list for words (or word suffixes) whose
// leet-speak substitution is a pure digit string of bounded length, and
// groups the findings by digit string in a YAML result file.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("leetscan failed", "error", err)
		os.Exit(1)
	}
}
