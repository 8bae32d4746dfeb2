package main

import (
	"os"

	"github.com/obentoo/benews/internal/common/logger"
	"github.com/obentoo/benews/internal/common/output"
	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh <repository>",
	Short: "Scan a repository for new relevant news items",
	Long:  `Scan the repository's news directory for items newer than the last pass, evaluate which ones apply to this system, and record them as unread.`,
	Args:  cobra.ExactArgs(1),
	Run:   runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, args []string) {
	repoID := args[0]

	mgr, env, err := buildContext()
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	if err := mgr.EnsureTimestamp(); err != nil {
		logger.Error("preparing timestamp cache: %v", err)
		os.Exit(1)
	}

	if err := mgr.Refresh(repoID, env); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	count, err := mgr.CountUnread(repoID, false, env)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	output.PrintSuccess("%s: %d unread news item(s)", repoID, count)
}
