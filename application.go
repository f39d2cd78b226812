// Copyright 2026 The ScreenPilot Authors
//
// Application launching operations

package screenpilot

import "context"

// ChromeStrategy controls how OpenChrome behaves when a Chrome instance is
// already running.
type ChromeStrategy string

const (
	// StrategyReuse opens the URL in the existing Chrome instance.
	StrategyReuse ChromeStrategy = "reuse"
	// StrategyNewWindow opens a new window in the existing instance.
	StrategyNewWindow ChromeStrategy = "new_window"
	// StrategyIsolated starts a separate instance with a throwaway profile,
	// so the automation cannot disturb the user's session.
	StrategyIsolated ChromeStrategy = "isolated"
)

type openApplicationRequest struct {
	Identifier string `json:"identifier"`
}

type openChromeRequest struct {
	URL      string         `json:"url"`
	Strategy ChromeStrategy `json:"strategy,omitempty"`
}

// OpenApplication launches an application by executable path or registered
// name and waits for its main window to appear.
func (c *Client) OpenApplication(ctx context.Context, pathOrName string) (*ActionResponse, error) {
	var resp ActionResponse
	if err := c.call(ctx, "/application/open", openApplicationRequest{Identifier: pathOrName}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// OpenChrome opens Google Chrome at the given URL. An empty strategy lets
// the server pick (it reuses an existing instance when it can).
func (c *Client) OpenChrome(ctx context.Context, url string, strategy ChromeStrategy) (*ActionResponse, error) {
	var resp ActionResponse
	if err := c.call(ctx, "/chrome/open", openChromeRequest{URL: url, Strategy: strategy}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
