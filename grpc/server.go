package grpc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"sockchat/domain"
	"sockchat/domain/event"
	pb "sockchat/proto/chat"
	"sockchat/services"
)

type ChatServer struct {
	pb.UnimplementedChatServiceServer
	chatService          services.IChatService
	connectionBufferSize int
	log                  *slog.Logger
}

func NewChatServer(log *slog.Logger, chatService services.IChatService, connectionBufferSize int) *ChatServer {
	return &ChatServer{chatService: chatService, connectionBufferSize: connectionBufferSize, log: log}
}

// Connect establishes the long-lived bidirectional stream carrying every
// named event of the protocol. The connection stays anonymous until the
// first register event lands; closing the stream is the disconnect signal,
// there is no explicit leave event.
//
// Reads run in a dedicated goroutine so the writer loop below keeps
// draining the sink even while a client is silent. Proper cleanup is
// ensured via deferred disconnection to prevent leaks in the registry.
func (s *ChatServer) Connect(stream pb.ChatService_ConnectServer) error {
	sink := NewGrpcSink(s.connectionBufferSize)
	connID := domain.ConnectionID(uuid.NewString())

	// The stream context dies with the connection; finalization must
	// still reach storage, hence the detached context.
	defer s.chatService.Disconnect(context.WithoutCancel(stream.Context()), connID)

	recvDone := make(chan error, 1)
	go func() { recvDone <- s.readLoop(stream, connID, sink) }()

	for {
		select {
		case <-stream.Context().Done():
			s.log.Info(fmt.Sprintf("Client %s disconnected", connID))
			return nil
		case err := <-recvDone:
			if err != nil && !errors.Is(err, io.EOF) {
				s.log.Warn("Receive loop ended", "connection_id", string(connID), "error", err)
			}
			return nil
		case evt := <-sink.ConnectedUserEvent:
			wire := toServerEvent(evt)
			if wire == nil {
				continue
			}
			if err := stream.Send(wire); err != nil {
				s.log.Error("failed to push event to stream",
					"connection_id", string(connID),
					"event", evt.Name(),
					"error", err)
				return err
			}
		}
	}
}

// readLoop dispatches every inbound client event to the service. Malformed
// or out-of-order events are ignored rather than fatal; only a broken
// stream ends the loop.
func (s *ChatServer) readLoop(stream pb.ChatService_ConnectServer, connID domain.ConnectionID, sink *Sink) error {
	ctx := stream.Context()
	for {
		in, err := stream.Recv()
		if err != nil {
			return err
		}

		switch payload := in.Payload.(type) {
		case *pb.ClientEvent_RegisterUser:
			if err := s.chatService.Register(ctx, connID, sink, payload.RegisterUser.Username); err != nil {
				// Surfaced to the registering connection only
				_ = sink.Consume(ctx, event.Error{Reason: err.Error()})
			}
		case *pb.ClientEvent_ChatMessage:
			s.chatService.SendPublic(ctx, connID, payload.ChatMessage.Message)
		case *pb.ClientEvent_PrivateMessage:
			s.chatService.SendPrivate(ctx, connID, payload.PrivateMessage.To, payload.PrivateMessage.Message)
		case *pb.ClientEvent_Typing:
			s.chatService.SetTyping(ctx, connID, payload.Typing.IsTyping)
		default:
			s.log.Debug("Ignoring unknown client event", "connection_id", string(connID))
		}
	}
}

// PrivateHistory exposes the direct-message log between two usernames as a
// unary call, outside the event stream.
func (s *ChatServer) PrivateHistory(ctx context.Context, req *pb.PrivateHistoryRequest) (*pb.PrivateHistoryResponse, error) {
	messages, err := s.chatService.PrivateHistory(ctx, req.UserA, req.UserB, int(req.Limit))
	if err != nil {
		return nil, err
	}
	return &pb.PrivateHistoryResponse{
		Messages: lo.Map(messages, func(m domain.PrivateMessage, _ int) *pb.PrivateMessage {
			return toPrivateMessage(m)
		}),
	}, nil
}
