// Copyright 2026 The ScreenPilot Authors
//
// Screenshot workflow: capture the screen and describe it

package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	screenpilot "github.com/screenpilot/screenpilot-go"
	"github.com/screenpilot/screenpilot-go/internal/config"
)

var screenshotCmd = &cobra.Command{
	Use:   "screenshot",
	Short: "Capture the screen and have the AI describe it",
	RunE:  runScreenshot,
}

func runScreenshot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client, runID, err := newClient(cfg)
	if err != nil {
		return err
	}
	defer client.Close()
	aiClient := newAI(cfg)
	ctx := context.Background()

	fmt.Println("=== Step 1: Starting the automation server ===")
	if err := client.StartServer(ctx); err != nil {
		log.Printf("ERROR: %s", screenpilot.DescribeError(err))
		return err
	}
	defer stopServer(client)

	fmt.Println("\n=== Step 2: Capturing the screen ===")
	shot, err := client.Screenshot.Take(ctx)
	if err != nil {
		log.Printf("ERROR: %s", screenpilot.DescribeError(err))
		return err
	}
	path, err := saveImage(shot, runID)
	if err != nil {
		log.Printf("ERROR: could not save screenshot: %v", err)
		return err
	}
	fmt.Printf("Screenshot (%dx%d) saved to %s\n", shot.Width, shot.Height, path)

	fmt.Println("\n=== Step 3: Describing the screen ===")
	if aiClient == nil {
		fmt.Println("AI branch unavailable; skipping the description")
	} else {
		png, err := shot.Decode()
		if err != nil {
			log.Printf("WARNING: could not decode screenshot: %v", err)
		} else {
			answer, err := aiClient.CompleteVision(ctx, "Describe what is visible on this screen in two sentences.", png)
			if err != nil {
				log.Printf("WARNING: description failed: %v", err)
			} else {
				fmt.Println(answer)
			}
		}
	}

	printStats(cfg, client)
	fmt.Println("\n=== Workflow complete ===")
	return nil
}
