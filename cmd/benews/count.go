package main

import (
	"fmt"
	"os"

	"github.com/obentoo/benews/internal/common/logger"
	"github.com/spf13/cobra"
)

var countRefreshFirst bool

var countCmd = &cobra.Command{
	Use:   "count <repository>",
	Short: "Print the number of unread news items",
	Args:  cobra.ExactArgs(1),
	Run:   runCount,
}

func init() {
	countCmd.Flags().BoolVar(&countRefreshFirst, "refresh", false, "Run a refresh pass first")
	rootCmd.AddCommand(countCmd)
}

func runCount(cmd *cobra.Command, args []string) {
	repoID := args[0]

	mgr, env, err := buildContext()
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	if countRefreshFirst {
		if err := mgr.EnsureTimestamp(); err != nil {
			logger.Error("preparing timestamp cache: %v", err)
			os.Exit(1)
		}
	}

	count, err := mgr.CountUnread(repoID, countRefreshFirst, env)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	fmt.Println(count)
}
