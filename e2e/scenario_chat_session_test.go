package e2e

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	pb "sockchat/proto/chat"
)

type testChatSessionSuite struct {
	BaseGrpcSuite
}

func TestChatSessionSuite(t *testing.T) {
	suite.Run(t, &testChatSessionSuite{})
}

func (s *testChatSessionSuite) TestFullChatSessionFlow() {
	// Unique usernames so reruns against a long-lived server stay isolated
	alice := fmt.Sprintf("alice-%s", uuid.NewString()[:8])
	bob := fmt.Sprintf("bob-%s", uuid.NewString()[:8])

	s.WithChat("Two users chat over one public channel", func(ctx context.Context, client pb.ChatServiceClient) {
		// --- STEP 1: REGISTRATION & HISTORY SNAPSHOT ---
		aliceStream := s.Register(ctx, client, alice)

		// SEQUENCE CHECK: the snapshot MUST be the first event on a fresh stream
		first := s.WaitFor(aliceStream, 10*time.Second, func(evt *pb.ServerEvent) bool {
			return true
		})
		s.Require().NotNil(first.GetChatHistory(), "Protocol error: first event must be the history snapshot")

		// --- STEP 2: SECOND USER SEES THE FIRST ONE ---
		bobStream := s.Register(ctx, client, bob)
		s.WaitFor(bobStream, 10*time.Second, func(evt *pb.ServerEvent) bool {
			return evt.GetChatHistory() != nil
		})

		roster := s.WaitFor(bobStream, 10*time.Second, func(evt *pb.ServerEvent) bool {
			return evt.GetOnlineUsers() != nil
		})
		s.Require().True(containsUser(roster.GetOnlineUsers(), alice), "Roster must list the earlier user")

		// --- STEP 3: TYPING THEN PUBLIC MESSAGE ---
		err := aliceStream.Send(&pb.ClientEvent{Payload: &pb.ClientEvent_Typing{
			Typing: &pb.Typing{IsTyping: true},
		}})
		s.Require().NoError(err)

		s.WaitFor(bobStream, 10*time.Second, func(evt *pb.ServerEvent) bool {
			typing := evt.GetTypingUsers()
			return typing != nil && contains(typing.Usernames, alice)
		})

		content := "hello from " + alice
		err = aliceStream.Send(&pb.ClientEvent{Payload: &pb.ClientEvent_ChatMessage{
			ChatMessage: &pb.SendChatMessage{Message: content},
		}})
		s.Require().NoError(err)

		// The message implicitly clears the typing state before it lands
		s.WaitFor(bobStream, 10*time.Second, func(evt *pb.ServerEvent) bool {
			typing := evt.GetTypingUsers()
			return typing != nil && !contains(typing.Usernames, alice)
		})
		msg := s.WaitFor(bobStream, 10*time.Second, func(evt *pb.ServerEvent) bool {
			m := evt.GetChatMessage()
			return m != nil && m.Username == alice
		})
		s.Require().Equal(content, msg.GetChatMessage().Content)

		// The sender receives its own broadcast too
		s.WaitFor(aliceStream, 10*time.Second, func(evt *pb.ServerEvent) bool {
			m := evt.GetChatMessage()
			return m != nil && m.Username == alice
		})

		// --- STEP 4: PRIVATE MESSAGE, BOTH ENDS ---
		secret := "just between us"
		err = aliceStream.Send(&pb.ClientEvent{Payload: &pb.ClientEvent_PrivateMessage{
			PrivateMessage: &pb.SendPrivateMessage{To: bob, Message: secret},
		}})
		s.Require().NoError(err)

		for name, stream := range map[string]pb.ChatService_ConnectClient{alice: aliceStream, bob: bobStream} {
			private := s.WaitFor(stream, 10*time.Second, func(evt *pb.ServerEvent) bool {
				return evt.GetPrivateMessage() != nil
			})
			s.Require().Equal(secret, private.GetPrivateMessage().Content, "missing private copy for %s", name)
		}

		// --- STEP 5: PRIVATE HISTORY RPC ---
		history, err := client.PrivateHistory(ctx, &pb.PrivateHistoryRequest{
			UserA: alice, UserB: bob, Limit: 10,
		})
		s.Require().NoError(err)
		s.Require().Len(history.Messages, 1)
		s.Require().Equal(secret, history.Messages[0].Content)

		// --- STEP 6: DISCONNECT ANNOUNCEMENT ---
		s.Require().NoError(aliceStream.CloseSend())

		offline := s.WaitFor(bobStream, 10*time.Second, func(evt *pb.ServerEvent) bool {
			status := evt.GetUserStatus()
			return status != nil && status.Username == alice && status.Status == "offline"
		})
		s.Require().NotNil(offline.GetUserStatus().LastSeen, "Offline presence must carry last_seen")
	})
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func containsUser(roster *pb.OnlineUsers, name string) bool {
	for _, s := range roster.Sessions {
		if s.Username == name {
			return true
		}
	}
	return false
}
