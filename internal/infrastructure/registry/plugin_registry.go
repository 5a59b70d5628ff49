// Package registry fetches the remote plugin index.
package registry

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"

	"taskmill.dev/cli/internal/core/plugin"
)

// indexPath is the registry endpoint serving the plugin index.
const indexPath = "/v1/plugins/index"

// Index is the document the registry serves
type Index struct {
	Version string                 `json:"version"`
	Updated time.Time              `json:"updated"`
	Plugins map[string]plugin.Info `json:"plugins"`
}

// Client reads the plugin index from a remote registry. It only lists;
// downloading and installing plugins is not its concern.
type Client struct {
	client *resty.Client
}

// NewClient creates a registry client for the given base URL
func NewClient(baseURL string) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(15 * time.Second)

	return &Client{client: client}
}

// FetchIndex retrieves the plugin index
func (c *Client) FetchIndex(ctx context.Context) (*Index, error) {
	var index Index

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&index).
		Get(indexPath)
	if err != nil {
		return nil, fmt.Errorf("fetching plugin index: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("plugin index request failed: %s", resp.Status())
	}

	return &index, nil
}

// ListPlugins returns the index's plugins sorted by name
func (c *Client) ListPlugins(ctx context.Context) ([]plugin.Info, error) {
	index, err := c.FetchIndex(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]plugin.Info, 0, len(index.Plugins))
	for _, info := range index.Plugins {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}
