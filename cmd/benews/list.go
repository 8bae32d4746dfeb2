package main

import (
	"fmt"
	"os"

	"github.com/obentoo/benews/internal/common/logger"
	"github.com/obentoo/benews/internal/common/output"
	"github.com/obentoo/benews/internal/news"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <repository>",
	Short: "List unread news items",
	Args:  cobra.ExactArgs(1),
	Run:   runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) {
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
		title, err := news.NewItem(path).Title()
		if err != nil || title == "" {
			title = "(no title)"
		}
		fmt.Printf("%s  %s\n", output.FormatTitle(title), output.Dim.Sprint(path))
	}
}
