package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "aitoolhub",
		Short: "A directory of AI tools with reviews and news",
		Long:  "AI Tool Hub is the REST backend for a catalog of AI tools, user reviews, and an AI news feed.",
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newRefreshNewsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
