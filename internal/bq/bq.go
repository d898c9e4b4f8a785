// Package bq manages the platform's BigQuery staging dataset and load jobs.
package bq

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"cloud.google.com/go/bigquery"
	"github.com/0chandansharma/dataengg/internal/cloudlog"
	"google.golang.org/api/googleapi"
)

// Client wraps a BigQuery client for one project. Operations mirror the
// platform's dual reporting: results go to the returned values and, when a
// logger is present, to Cloud Logging.
type Client struct {
	bq  *bigquery.Client
	log *cloudlog.Logger

	project string
}

// NewClient creates a BigQuery client for the project using application
// default credentials. The logger may be nil.
func NewClient(ctx context.Context, project string, log *cloudlog.Logger) (*Client, error) {
	client, err := bigquery.NewClient(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("failed to create BigQuery client: %w", err)
	}

	return &Client{bq: client, log: log, project: project}, nil
}

// Close releases the underlying client.
func (c *Client) Close() error {
	return c.bq.Close()
}

// DatasetExists reports whether the dataset exists in the project.
func (c *Client) DatasetExists(ctx context.Context, dataset string) (bool, error) {
	_, err := c.bq.Dataset(dataset).Metadata(ctx)
	if err == nil {
		return true, nil
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
		return false, nil
	}

	c.log.Error("failed to check dataset", map[string]any{
		"dataset": dataset,
		"error":   err.Error(),
	})
	return false, fmt.Errorf("failed to check dataset %q: %w", dataset, err)
}

// CreateDataset creates the dataset at the given location.
func (c *Client) CreateDataset(ctx context.Context, dataset, location string) error {
	meta := &bigquery.DatasetMetadata{Location: location}
	if err := c.bq.Dataset(dataset).Create(ctx, meta); err != nil {
		c.log.Error("failed to create dataset", map[string]any{
			"dataset": dataset,
			"error":   err.Error(),
		})
		return fmt.Errorf("failed to create dataset %q: %w", dataset, err)
	}

	c.log.Info("dataset created", map[string]any{
		"dataset":  dataset,
		"project":  c.project,
		"location": location,
	})
	return nil
}

// DeleteDataset deletes the dataset and its contents. Deleting a dataset
// that does not exist is not an error.
func (c *Client) DeleteDataset(ctx context.Context, dataset string) error {
	err := c.bq.Dataset(dataset).DeleteWithContents(ctx)
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
			return nil
		}
		c.log.Error("failed to delete dataset", map[string]any{
			"dataset": dataset,
			"error":   err.Error(),
		})
		return fmt.Errorf("failed to delete dataset %q: %w", dataset, err)
	}

	c.log.Info("dataset deleted", map[string]any{
		"dataset": dataset,
		"project": c.project,
	})
	return nil
}
