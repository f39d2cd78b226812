// Copyright 2026 The ScreenPilot Authors
//
// Form-filling workflow: AI-generated order entered into the sample form

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	screenpilot "github.com/screenpilot/screenpilot-go"
	"github.com/screenpilot/screenpilot-go/ai"
	"github.com/screenpilot/screenpilot-go/internal/config"
)

const fieldMapSystemPrompt = `You are given the JSON automation tree of an order form window.
Identify the entry fields and the submit button and answer with a single JSON
object mapping these logical names to the element_id values from the tree:
"customer_name", "article", "quantity", "unit_price", "submit".
Only include fields you can actually find. Answer with JSON only.`

const orderSystemPrompt = `Invent a small, plausible retail order and answer with a single JSON object:
{"customer_name": string, "items": [{"article": string, "quantity": integer, "unit_price": number}]}.
One to three items, quantities between 1 and 10, prices between 1 and 500. Answer with JSON only.`

var formfillCmd = &cobra.Command{
	Use:   "formfill",
	Short: "Fill the sample order form with an AI-generated order",
	RunE:  runFormfill,
}

func runFormfill(cmd *cobra.Command, args []string) error {
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

	fmt.Println("=== Step 1: Fetching the sample form application ===")
	demoURL := cfg.DemoAppURL
	if demoURL == "" {
		demoURL = screenpilot.DefaultDemoAppURL
	}
	appPath, err := screenpilot.EnsureDemoApp(ctx, demoURL)
	if err != nil {
		log.Printf("ERROR: %s", screenpilot.DescribeError(err))
		return err
	}
	fmt.Printf("Sample application: %s\n", appPath)

	fmt.Println("\n=== Step 2: Starting the automation server ===")
	if err := client.StartServer(ctx); err != nil {
		log.Printf("ERROR: %s", screenpilot.DescribeError(err))
		return err
	}
	defer stopServer(client)

	fmt.Println("\n=== Step 3: Opening the form ===")
	if _, err := client.OpenApplication(ctx, appPath); err != nil {
		log.Printf("ERROR: %s", screenpilot.DescribeError(err))
		return err
	}
	// Give the form time to paint before inspecting it.
	time.Sleep(2 * time.Second)

	fmt.Println("\n=== Step 4: Reading the automation tree ===")
	details, err := formWindowDetails(ctx, client)
	if err != nil {
		log.Printf("ERROR: %s", screenpilot.DescribeError(err))
		return err
	}
	fmt.Printf("Window %q: %d elements\n", details.Window.Title, details.Root.Count())

	fmt.Println("\n=== Step 5: Locating the form fields ===")
	fields := locateFields(ctx, aiClient, details)
	if len(fields) == 0 {
		log.Println("ERROR: could not locate any form fields; giving up")
		return fmt.Errorf("no usable form fields in window %q", details.Window.Title)
	}
	fmt.Printf("Located fields: %s\n", fieldNames(fields))

	fmt.Println("\n=== Step 6: Preparing the order ===")
	order := prepareOrder(ctx, aiClient)
	fmt.Printf("Order for %s with %d item(s)\n", order.CustomerName, len(order.Items))

	fmt.Println("\n=== Step 7: Entering the order ===")
	if err := enterOrder(ctx, client, fields, order); err != nil {
		log.Printf("ERROR: %s", screenpilot.DescribeError(err))
		return err
	}

	fmt.Println("\n=== Step 8: Submitting ===")
	if submitID, ok := fields["submit"]; ok {
		if err := client.Automation.Invoke(ctx, submitID); err != nil {
			log.Printf("ERROR: %s", screenpilot.DescribeError(err))
			return err
		}
	} else {
		log.Println("WARNING: no submit button located; leaving the form open")
	}
	time.Sleep(1 * time.Second)

	fmt.Println("\n=== Step 9: Capturing the result ===")
	shot, err := client.Screenshot.Take(ctx)
	if err != nil {
		log.Printf("WARNING: screenshot failed: %s", screenpilot.DescribeError(err))
	} else {
		path, err := saveImage(shot, runID)
		if err != nil {
			log.Printf("WARNING: could not save screenshot: %v", err)
		} else {
			fmt.Printf("Screenshot saved to %s\n", path)
		}
		if aiClient != nil {
			verifyScreenshot(ctx, aiClient, shot, order)
		}
	}

	printStats(cfg, client)
	fmt.Println("\n=== Workflow complete ===")
	return nil
}

// formWindowDetails finds the sample form window (falling back to whatever
// has focus) and fetches its automation tree.
func formWindowDetails(ctx context.Context, client *screenpilot.Client) (*screenpilot.WindowDetails, error) {
	overview, err := client.System.GetOverview(ctx)
	if err != nil {
		return nil, err
	}
	win := overview.FindWindow("FormPilot")
	if win == nil {
		win = overview.FocusedWindow()
	}
	if win == nil {
		return nil, fmt.Errorf("no form window found among %d windows", len(overview.Windows))
	}
	details, err := client.System.GetWindowDetails(ctx, win.ID)
	if err != nil {
		return nil, err
	}
	if details.Root == nil {
		return nil, fmt.Errorf("window %q has an empty automation tree", win.Title)
	}
	return details, nil
}

// locateFields maps logical field names to element IDs, asking the model
// first and falling back to name-based tree matching when the AI branch is
// unavailable or its answer is unusable.
func locateFields(ctx context.Context, aiClient *ai.Client, details *screenpilot.WindowDetails) ai.FieldMap {
	if aiClient != nil {
		tree, err := json.Marshal(details.Root)
		if err == nil {
			answer, err := aiClient.CompleteJSON(ctx, fieldMapSystemPrompt, string(tree))
			if err != nil {
				log.Printf("WARNING: field mapping request failed (%v); falling back to tree matching", err)
			} else if fields := ai.ParseFieldMap(answer); fields != nil {
				return fields
			} else {
				log.Println("WARNING: field mapping response was unusable; falling back to tree matching")
			}
		}
	}
	return heuristicFieldMap(details.Root)
}

// heuristicFieldMap matches form fields by element name. It is the non-AI
// fallback and only understands the sample form's labels.
func heuristicFieldMap(root *screenpilot.UINode) ai.FieldMap {
	fields := make(ai.FieldMap)
	byName := map[string][]string{
		"customer_name": {"customer"},
		"article":       {"article"},
		"quantity":      {"quantity", "qty"},
		"unit_price":    {"price"},
	}
	for logical, parts := range byName {
		for _, part := range parts {
			node := root.Find(func(n *screenpilot.UINode) bool {
				return n.SupportsSetValue && strings.Contains(strings.ToLower(n.Name), part)
			})
			if node != nil {
				fields[logical] = node.ElementID
				break
			}
		}
	}
	submit := root.Find(func(n *screenpilot.UINode) bool {
		name := strings.ToLower(n.Name)
		return n.SupportsInvoke && (strings.Contains(name, "submit") || strings.Contains(name, "ok"))
	})
	if submit != nil {
		fields["submit"] = submit.ElementID
	}
	if _, ok := fields["customer_name"]; !ok {
		return nil
	}
	return fields
}

// prepareOrder asks the model for an order, falling back to a canned one
// when the AI branch is unavailable or its answer does not parse.
func prepareOrder(ctx context.Context, aiClient *ai.Client) *ai.Order {
	if aiClient != nil {
		answer, err := aiClient.CompleteJSON(ctx, orderSystemPrompt, "Generate the order now.")
		if err != nil {
			log.Printf("WARNING: order request failed (%v); using the canned order", err)
		} else if order := ai.ParseOrder(answer); order != nil {
			return order
		} else {
			log.Println("WARNING: order response was unusable; using the canned order")
		}
	}
	return fallbackOrder()
}

// fallbackOrder is the canned order used when the AI branch is skipped.
func fallbackOrder() *ai.Order {
	return &ai.Order{
		CustomerName: "Erika Mustermann",
		Items: []ai.LineItem{
			{Article: "Fountain pen", Quantity: 2, UnitPrice: 24.90},
			{Article: "Notebook A5", Quantity: 3, UnitPrice: 7.50},
		},
	}
}

// enterOrder writes the order into the located fields. The sample form holds
// one line item at a time; only the first item is entered.
func enterOrder(ctx context.Context, client *screenpilot.Client, fields ai.FieldMap, order *ai.Order) error {
	if err := client.Automation.SetValue(ctx, fields["customer_name"], order.CustomerName); err != nil {
		return err
	}
	if len(order.Items) == 0 {
		return nil
	}
	item := order.Items[0]
	entries := []struct {
		field string
		value string
	}{
		{"article", item.Article},
		{"quantity", strconv.Itoa(item.Quantity)},
		{"unit_price", strconv.FormatFloat(item.UnitPrice, 'f', 2, 64)},
	}
	for _, entry := range entries {
		id, ok := fields[entry.field]
		if !ok {
			log.Printf("WARNING: no element located for %s; skipping it", entry.field)
			continue
		}
		if err := client.Automation.SetValue(ctx, id, entry.value); err != nil {
			return err
		}
		// Let the form's change handlers run between fields.
		time.Sleep(300 * time.Millisecond)
	}
	return nil
}

// verifyScreenshot asks the vision model whether the submitted order is
// visible. Purely informational; failures only log.
func verifyScreenshot(ctx context.Context, aiClient *ai.Client, shot *screenpilot.ScreenshotResult, order *ai.Order) {
	png, err := shot.Decode()
	if err != nil {
		log.Printf("WARNING: could not decode screenshot for verification: %v", err)
		return
	}
	prompt := fmt.Sprintf("Does this screen show a submitted order form for customer %q? Answer in one sentence.", order.CustomerName)
	answer, err := aiClient.CompleteVision(ctx, prompt, png)
	if err != nil {
		log.Printf("WARNING: vision check failed: %v", err)
		return
	}
	fmt.Printf("Vision check: %s\n", answer)
}

func fieldNames(fields ai.FieldMap) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	// Deterministic output for logs.
	sort.Strings(names)
	return strings.Join(names, ", ")
}
