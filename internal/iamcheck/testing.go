package iamcheck

import (
	"context"
	"fmt"
	"net"

	"cloud.google.com/go/iam/apiv1/iampb"
	"cloud.google.com/go/resourcemanager/apiv3/resourcemanagerpb"
	"google.golang.org/grpc"
)

type testResourceServer struct {
	resourcemanagerpb.UnimplementedProjectsServer
	testIamPermissionsResponse *iampb.TestIamPermissionsResponse
	testIamPermissionsError    error
}

func (f *testResourceServer) TestIamPermissions(context.Context, *iampb.TestIamPermissionsRequest) (*iampb.TestIamPermissionsResponse, error) {
	return f.testIamPermissionsResponse, f.testIamPermissionsError
}

type grpcServer struct {
	*grpc.Server
}

func newGRPCServer() *grpcServer {
	return &grpcServer{Server: grpc.NewServer()}
}

func (s *grpcServer) Start() (string, error) {
	l, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return "", fmt.Errorf("failed to listen: %v", err)
	}
	go func() {
		if err := s.Serve(l); err != nil {
			panic(err)
		}
	}()
	return l.Addr().String(), nil
}
