package main

import (
	"fmt"
	"os"

	"github.com/obentoo/benews/internal/common/logger"
	"github.com/obentoo/benews/internal/common/output"
	"github.com/spf13/cobra"
)

var readKeepUnread bool

var readCmd = &cobra.Command{
	Use:   "read <repository>",
	Short: "Print unread news items and mark them read",
	Args:  cobra.ExactArgs(1),
	Run:   runRead,
}

func init() {
	readCmd.Flags().BoolVar(&readKeepUnread, "keep", false, "Do not mark the items as read")
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) {
	repoID := args[0]

	mgr, _, err := buildContext()
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	paths, err := mgr.UnreadPaths(repoID)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	if len(paths) == 0 {
		output.PrintInfo("no unread news items for %s", repoID)
		return
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("reading %s: %v", path, err)
			os.Exit(1)
		}
		output.Header.Println("── " + path)
		fmt.Println(string(data))
	}

	if readKeepUnread {
		return
	}
	if err := mgr.MarkRead(repoID, paths); err != nil {
		logger.Error("marking items read: %v", err)
		os.Exit(1)
	}
	output.PrintSuccess("marked %d item(s) read", len(paths))
}
