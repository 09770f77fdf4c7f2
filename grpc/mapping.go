package grpc

import (
	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/timestamppb"

	"sockchat/domain"
	"sockchat/domain/event"
	pb "sockchat/proto/chat"
)

// toServerEvent translates a domain event into its wire envelope. Unknown
// event types map to nil and are skipped by the stream writer.
func toServerEvent(evt event.DomainEvent) *pb.ServerEvent {
	switch e := evt.(type) {
	case event.ChatHistory:
		return &pb.ServerEvent{Payload: &pb.ServerEvent_ChatHistory{
			ChatHistory: &pb.ChatHistory{
				Messages: lo.Map(e.Messages, func(m domain.Message, _ int) *pb.ChatMessage {
					return toChatMessage(m)
				}),
			},
		}}
	case event.UserStatus:
		status := &pb.UserStatus{
			Username: e.Username,
			Status:   string(e.Status),
		}
		if e.LastSeen != nil {
			status.LastSeen = timestamppb.New(*e.LastSeen)
		}
		return &pb.ServerEvent{Payload: &pb.ServerEvent_UserStatus{UserStatus: status}}
	case event.OnlineUsers:
		return &pb.ServerEvent{Payload: &pb.ServerEvent_OnlineUsers{
			OnlineUsers: &pb.OnlineUsers{
				Sessions: lo.Map(e.Sessions, func(s domain.Session, _ int) *pb.SessionInfo {
					return toSessionInfo(s)
				}),
			},
		}}
	case event.ChatMessage:
		return &pb.ServerEvent{Payload: &pb.ServerEvent_ChatMessage{
			ChatMessage: toChatMessage(e.Message),
		}}
	case event.PrivateMessage:
		return &pb.ServerEvent{Payload: &pb.ServerEvent_PrivateMessage{
			PrivateMessage: toPrivateMessage(e.Message),
		}}
	case event.TypingUsers:
		return &pb.ServerEvent{Payload: &pb.ServerEvent_TypingUsers{
			TypingUsers: &pb.TypingUsers{Usernames: e.Usernames},
		}}
	case event.Error:
		return &pb.ServerEvent{Payload: &pb.ServerEvent_Error{
			Error: &pb.Error{Reason: e.Reason},
		}}
	default:
		return nil
	}
}

func toChatMessage(m domain.Message) *pb.ChatMessage {
	return &pb.ChatMessage{
		MessageId: m.ID.String(),
		Username:  m.Username,
		Content:   m.Content,
		CreatedAt: timestamppb.New(m.At),
	}
}

func toPrivateMessage(m domain.PrivateMessage) *pb.PrivateMessage {
	return &pb.PrivateMessage{
		MessageId: m.ID.String(),
		Sender:    m.Sender,
		Receiver:  m.Receiver,
		Content:   m.Content,
		CreatedAt: timestamppb.New(m.At),
	}
}

func toSessionInfo(s domain.Session) *pb.SessionInfo {
	info := &pb.SessionInfo{
		Username: s.Username,
		Status:   string(s.Status),
	}
	if s.LastSeen != nil {
		info.LastSeen = timestamppb.New(*s.LastSeen)
	}
	return info
}
