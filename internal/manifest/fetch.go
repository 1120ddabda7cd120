package manifest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

const fetchTimeout = 5 * time.Second

// Fetcher retrieves one document by site-relative path, e.g.
// content/blog/en/index.json. Implementations report any non-success
// outcome as an error; callers never retry.
type Fetcher interface {
	Fetch(ctx context.Context, p string) ([]byte, error)
}

// Client fetches documents from a remote origin over HTTP.
type Client struct {
	base string
	http *http.Client
}

// NewClient constructs a Client for the given origin.
func NewClient(base string) *Client {
	return &Client{
		base: strings.TrimRight(strings.TrimSpace(base), "/"),
		http: &http.Client{Timeout: fetchTimeout},
	}
}

func (c *Client) Fetch(ctx context.Context, p string) ([]byte, error) {
	endpoint, err := url.JoinPath(c.base, p)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch %s: status %d", p, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// Dir serves documents from a local content tree, for deployments that
// ship the manifests alongside the binary instead of a remote origin.
type Dir struct {
	root string
}

// NewDir constructs a Dir rooted at the directory holding the content/
// and settings/ trees.
func NewDir(root string) *Dir {
	root = strings.TrimSpace(root)
	if root == "" {
		root = "."
	}
	return &Dir{root: root}
}

func (d *Dir) Fetch(_ context.Context, p string) ([]byte, error) {
	// Clean against traversal before touching the filesystem.
	clean := strings.TrimPrefix(path.Clean("/"+p), "/")
	return os.ReadFile(filepath.Join(d.root, filepath.FromSlash(clean)))
}
