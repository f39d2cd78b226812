// Copyright 2026 The ScreenPilot Authors
//
// Overview workflow: print the desktop state and the focused window's tree

package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	screenpilot "github.com/screenpilot/screenpilot-go"
	"github.com/screenpilot/screenpilot-go/internal/config"
)

var overviewMaxDepth int

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Print all windows and the focused window's automation tree",
	RunE:  runOverview,
}

func init() {
	overviewCmd.Flags().IntVar(&overviewMaxDepth, "depth", 4, "automation tree depth to print")
}

func runOverview(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client, _, err := newClient(cfg)
	if err != nil {
		return err
	}
	defer client.Close()
	ctx := context.Background()

	fmt.Println("=== Step 1: Starting the automation server ===")
	if err := client.StartServer(ctx); err != nil {
		log.Printf("ERROR: %s", screenpilot.DescribeError(err))
		return err
	}
	defer stopServer(client)

	fmt.Println("\n=== Step 2: Desktop overview ===")
	overview, err := client.System.GetOverview(ctx)
	if err != nil {
		log.Printf("ERROR: %s", screenpilot.DescribeError(err))
		return err
	}
	fmt.Printf("Found %d window(s):\n", len(overview.Windows))
	for _, w := range overview.Windows {
		marker := " "
		if w.IsFocused || w.ID == overview.FocusedWindowID {
			marker = "*"
		}
		fmt.Printf("%s %-40q %s (pid %d)\n", marker, w.Title, w.AppName, w.PID)
	}

	focused := overview.FocusedWindow()
	if focused == nil {
		fmt.Println("\nNo window has focus; done.")
		return nil
	}

	fmt.Printf("\n=== Step 3: Automation tree of %q ===\n", focused.Title)
	details, err := client.System.GetWindowDetails(ctx, focused.ID)
	if err != nil {
		log.Printf("ERROR: %s", screenpilot.DescribeError(err))
		return err
	}
	if details.Root == nil {
		fmt.Println("(empty tree)")
		return nil
	}
	fmt.Printf("%d elements total\n", details.Root.Count())
	details.Root.Walk(func(n *screenpilot.UINode, depth int) {
		if depth > overviewMaxDepth {
			return
		}
		caps := ""
		if n.SupportsSetValue {
			caps += " [set-value]"
		}
		if n.SupportsInvoke {
			caps += " [invoke]"
		}
		fmt.Printf("%s%s %q%s\n", strings.Repeat("  ", depth), n.Role, n.Name, caps)
	})

	printStats(cfg, client)
	return nil
}
