// Package iamcheck verifies project IAM permissions through the Resource
// Manager API.
package iamcheck

import (
	"context"
	"fmt"
	"slices"

	"cloud.google.com/go/iam/apiv1/iampb"
	resourcemanager "cloud.google.com/go/resourcemanager/apiv3"
	"google.golang.org/api/option"
)

// LoggingPermissions are the permissions implied by roles/logging.logWriter.
var LoggingPermissions = []string{
	"logging.logEntries.create",
}

// TestPermissions asks Resource Manager which of the requested permissions
// the caller holds on the project, and partitions the request into granted
// and missing.
func TestPermissions(ctx context.Context, project string, permissions []string, opts ...option.ClientOption) (granted, missing []string, err error) {
	if len(permissions) == 0 {
		return nil, nil, fmt.Errorf("permissions are required")
	}

	client, err := resourcemanager.NewProjectsClient(ctx, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Resource Manager client: %w", err)
	}
	defer client.Close()

	resp, err := client.TestIamPermissions(ctx, &iampb.TestIamPermissionsRequest{
		Resource:    "projects/" + project,
		Permissions: permissions,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to test IAM permissions: %w", err)
	}

	granted, missing = partition(permissions, resp.Permissions)
	return granted, missing, nil
}

// partition splits requested into the permissions present in held and the
// rest, preserving request order.
func partition(requested, held []string) (granted, missing []string) {
	for _, p := range requested {
		if slices.Contains(held, p) {
			granted = append(granted, p)
		} else {
			missing = append(missing, p)
		}
	}
	return granted, missing
}
