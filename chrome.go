// Copyright 2026 The ScreenPilot Authors
//
// Chrome browser operations

package screenpilot

import "context"

// ChromeAPI drives the Chrome instance opened via Client.OpenChrome.
type ChromeAPI struct {
	c *Client
}

type navigateRequest struct {
	URL string `json:"url"`
}

type chromeTextResponse struct {
	envelope
	Text string `json:"text"`
}

// Navigate points the active tab at the given URL.
func (ch *ChromeAPI) Navigate(ctx context.Context, url string) (*ActionResponse, error) {
	var resp ActionResponse
	if err := ch.c.call(ctx, "/chrome/navigate", navigateRequest{URL: url}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetText returns the visible text of the active tab.
func (ch *ChromeAPI) GetText(ctx context.Context) (string, error) {
	var resp chromeTextResponse
	if err := ch.c.call(ctx, "/chrome/text", nil, &resp); err != nil {
		return "", err
	}
	return resp.Text, nil
}
