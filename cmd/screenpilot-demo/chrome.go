// Copyright 2026 The ScreenPilot Authors
//
// Chrome workflow: open a page, extract its text, AI-summarize it

package main

import (
	"context"
	"fmt"
	"log"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"

	screenpilot "github.com/screenpilot/screenpilot-go"
	"github.com/screenpilot/screenpilot-go/internal/config"
)

const summarySystemPrompt = `Summarize the following web page text in three short bullet points.
Plain text only, no markdown.`

// Page text beyond this is cut before prompting, to stay inside the model's
// context window.
const maxPromptTextLen = 12000

var chromeURL string

var chromeCmd = &cobra.Command{
	Use:   "chrome",
	Short: "Open a page in Chrome, extract its text, and summarize it",
	RunE:  runChrome,
}

func init() {
	chromeCmd.Flags().StringVar(&chromeURL, "url", "https://en.wikipedia.org/wiki/Special:Random", "page to open")
}

func runChrome(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client, _, err := newClient(cfg)
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

	fmt.Printf("\n=== Step 2: Opening %s ===\n", chromeURL)
	if _, err := client.OpenChrome(ctx, chromeURL, screenpilot.StrategyIsolated); err != nil {
		log.Printf("ERROR: %s", screenpilot.DescribeError(err))
		return err
	}
	// Let the page load and render.
	time.Sleep(3 * time.Second)

	fmt.Println("\n=== Step 3: Extracting the page text ===")
	text, err := client.Chrome.GetText(ctx)
	if err != nil {
		log.Printf("ERROR: %s", screenpilot.DescribeError(err))
		return err
	}
	if text == "" {
		log.Println("WARNING: page produced no text; nothing to summarize")
		return nil
	}
	fmt.Printf("Extracted %d characters\n", len(text))

	fmt.Println("\n=== Step 4: Summarizing ===")
	if aiClient == nil {
		fmt.Println("AI branch unavailable; first part of the raw text follows:")
		fmt.Println(truncate(text, 500))
	} else {
		summary, err := aiClient.Complete(ctx, summarySystemPrompt, truncate(text, maxPromptTextLen))
		if err != nil {
			log.Printf("WARNING: summarization failed (%v); first part of the raw text follows", err)
			fmt.Println(truncate(text, 500))
		} else {
			fmt.Println(summary)
		}
	}

	printStats(cfg, client)
	fmt.Println("\n=== Workflow complete ===")
	return nil
}

// truncate cuts s to at most max bytes, backing up to a rune boundary so
// the result stays valid UTF-8.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
