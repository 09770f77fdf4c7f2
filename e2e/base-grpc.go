package e2e

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	pb "sockchat/proto/chat"
)

type BaseGrpcSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests.
// The whole suite is skipped when no server address is configured, so the
// package stays runnable in environments without a live server.
func (s *BaseGrpcSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.ServerAddr == "" {
		s.T().Skip("SERVER_ADDR not set, skipping e2e suite")
	}
}

// GrpcConn initializes a gRPC connection with logging, colors, and JSON debugging
func (s *BaseGrpcSuite) GrpcConn(t *testing.T, name string) *grpc.ClientConn {
	// 1. Print a colorized header for the connection step in logs
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	// 2. Setup JSON marshaler for debugging protobuf messages
	marshaler := protojson.MarshalOptions{
		UseProtoNames:   true,
		Multiline:       true,
		EmitUnpopulated: true,
	}

	// 3. Create the client with a Unary Interceptor for logging
	conn, err := grpc.NewClient(s.Config.ServerAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			start := time.Now()
			err := invoker(ctx, method, req, reply, cc, opts...)

			logBuilder := strings.Builder{}
			fmt.Fprintf(&logBuilder, "GRPC %s [%s] in %v", method, status.Code(err), time.Since(start))

			// Log full JSON request/response bodies if E2E_DEBUG_JSON is enabled
			if s.Config.DebugJSON {
				fmt.Fprintln(&logBuilder, "\nREQUEST:")
				fmt.Fprintln(&logBuilder, marshaler.Format(req.(proto.Message)))
				if err != nil {
					fmt.Fprintln(&logBuilder, "ERROR:", err)
				} else {
					fmt.Fprintln(&logBuilder, "RESPONSE:")
					fmt.Fprintln(&logBuilder, marshaler.Format(reply.(proto.Message)))
				}
			}
			t.Log(logBuilder.String())
			return err
		}),
	)
	s.Require().NoError(err, "Failed to connect to gRPC server at "+s.Config.ServerAddr)
	return conn
}

// WithChat provides a ChatService client within a contextual test step
func (s *BaseGrpcSuite) WithChat(name string, fn func(ctx context.Context, client pb.ChatServiceClient)) {
	conn := s.GrpcConn(s.T(), name)
	defer conn.Close()

	client := pb.NewChatServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fn(ctx, client)
}

// Register opens a Connect stream and sends the register event for username.
func (s *BaseGrpcSuite) Register(ctx context.Context, client pb.ChatServiceClient, username string) pb.ChatService_ConnectClient {
	stream, err := client.Connect(ctx)
	s.Require().NoError(err)

	err = stream.Send(&pb.ClientEvent{Payload: &pb.ClientEvent_RegisterUser{
		RegisterUser: &pb.RegisterUser{Username: username},
	}})
	s.Require().NoError(err)
	return stream
}

// WaitFor receives from the stream until match returns true or the timeout
// elapses. Unmatched events are discarded, which keeps scenarios robust
// against interleaved presence traffic from other connections.
func (s *BaseGrpcSuite) WaitFor(stream pb.ChatService_ConnectClient, timeout time.Duration,
	match func(*pb.ServerEvent) bool) *pb.ServerEvent {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		evt, err := stream.Recv()
		s.Require().NoError(err)
		if match(evt) {
			return evt
		}
	}
	s.FailNow("expected event not received before timeout")
	return nil
}
