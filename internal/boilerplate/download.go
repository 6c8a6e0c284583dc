package boilerplate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Download fetches url into destPath. A partially written file is removed
// when the transfer fails.
func (u *Unpacker) Download(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating download request: %w", err)
	}
	req.Header.Set("User-Agent", u.userAgent)

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	f, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("creating download file: %w", err)
	}

	n, err := io.Copy(f, resp.Body)
	if err != nil {
		f.Close()
		os.Remove(destPath)
		return fmt.Errorf("reading download stream: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(destPath)
		return fmt.Errorf("writing download file: %w", err)
	}

	u.logger.Debug("downloaded archive", "url", url, "path", destPath, "bytes", n)
	return nil
}
