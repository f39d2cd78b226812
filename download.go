// Copyright 2026 The ScreenPilot Authors
//
// Demo application download

package screenpilot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
)

// DefaultDemoAppURL is where the sample order-form application used by the
// demo workflows is published.
const DefaultDemoAppURL = "https://get.screenpilot.dev/samples/FormPilotDemo.exe"

// EnsureDemoApp makes sure the demo application from downloadURL is present
// under the system temp directory and returns its path. The download is
// skipped entirely when the file already exists.
func EnsureDemoApp(ctx context.Context, downloadURL string) (string, error) {
	return EnsureDemoAppIn(ctx, downloadURL, filepath.Join(os.TempDir(), "screenpilot"))
}

// EnsureDemoAppIn is EnsureDemoApp with an explicit destination directory.
func EnsureDemoAppIn(ctx context.Context, downloadURL, dir string) (string, error) {
	parsed, err := url.Parse(downloadURL)
	if err != nil {
		return "", fmt.Errorf("invalid demo app URL %q: %w", downloadURL, err)
	}
	name := path.Base(parsed.Path)
	if name == "" || name == "." || name == "/" {
		return "", fmt.Errorf("demo app URL %q has no file name", downloadURL)
	}

	dest := filepath.Join(dir, name)
	if _, err := os.Stat(dest); err == nil {
		return dest, nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to check for %s: %w", dest, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build download request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download demo app: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("demo app download failed with status %d", resp.StatusCode)
	}

	// Write to a partial file and rename, so an interrupted download never
	// lands at the final path.
	partial := dest + ".partial"
	f, err := os.OpenFile(partial, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o755)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", partial, err)
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(partial)
		return "", fmt.Errorf("failed to write demo app: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(partial)
		return "", fmt.Errorf("failed to close %s: %w", partial, err)
	}
	if err := os.Rename(partial, dest); err != nil {
		os.Remove(partial)
		return "", fmt.Errorf("failed to move demo app into place: %w", err)
	}
	return dest, nil
}
