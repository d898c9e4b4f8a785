package iamcheck

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"cloud.google.com/go/iam/apiv1/iampb"
	"cloud.google.com/go/resourcemanager/apiv3/resourcemanagerpb"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func testOptions(t *testing.T, srv *testResourceServer) []option.ClientOption {
	t.Helper()

	gsrv := newGRPCServer()
	resourcemanagerpb.RegisterProjectsServer(gsrv.Server, srv)
	addr, err := gsrv.Start()
	if err != nil {
		t.Fatalf("failed to start test server: %v", err)
	}
	t.Cleanup(gsrv.Stop)

	return []option.ClientOption{
		option.WithEndpoint(addr),
		option.WithoutAuthentication(),
		option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	}
}

func TestTestPermissions(t *testing.T) {
	tests := []struct {
		name        string
		requested   []string
		response    *iampb.TestIamPermissionsResponse
		responseErr error
		wantGranted []string
		wantMissing []string
		wantErr     bool
	}{
		{
			name:      "all granted",
			requested: []string{"logging.logEntries.create"},
			response: &iampb.TestIamPermissionsResponse{
				Permissions: []string{"logging.logEntries.create"},
			},
			wantGranted: []string{"logging.logEntries.create"},
		},
		{
			name:        "none granted",
			requested:   []string{"logging.logEntries.create"},
			response:    &iampb.TestIamPermissionsResponse{},
			wantMissing: []string{"logging.logEntries.create"},
		},
		{
			name:      "partially granted",
			requested: []string{"logging.logEntries.create", "bigquery.datasets.create"},
			response: &iampb.TestIamPermissionsResponse{
				Permissions: []string{"bigquery.datasets.create"},
			},
			wantGranted: []string{"bigquery.datasets.create"},
			wantMissing: []string{"logging.logEntries.create"},
		},
		{
			name:        "api error",
			requested:   []string{"logging.logEntries.create"},
			responseErr: errors.New("permission denied"),
			wantErr:     true,
		},
		{
			name:      "empty request",
			requested: nil,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := &testResourceServer{
				testIamPermissionsResponse: tt.response,
				testIamPermissionsError:    tt.responseErr,
			}

			granted, missing, err := TestPermissions(context.Background(), "dataengg-staging", tt.requested, testOptions(t, srv)...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("TestPermissions() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(granted, tt.wantGranted) {
				t.Errorf("granted = %v, want %v", granted, tt.wantGranted)
			}
			if !reflect.DeepEqual(missing, tt.wantMissing) {
				t.Errorf("missing = %v, want %v", missing, tt.wantMissing)
			}
		})
	}
}

func TestPartition(t *testing.T) {
	granted, missing := partition(
		[]string{"a", "b", "c"},
		[]string{"c", "a"},
	)
	if !reflect.DeepEqual(granted, []string{"a", "c"}) {
		t.Errorf("granted = %v, want [a c]", granted)
	}
	if !reflect.DeepEqual(missing, []string{"b"}) {
		t.Errorf("missing = %v, want [b]", missing)
	}
}
