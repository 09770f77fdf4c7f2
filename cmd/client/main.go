package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "sockchat/proto/chat"
)

type Config struct {
	ServerAddr string `env:"SERVER_ADDR,default=localhost:8080"`
	Username   string `env:"USERNAME,required=true"`
}

// Interactive terminal client. Plain lines go to the public channel,
// "/msg <user> <text>" sends a direct message, "/typing on|off" flips the
// typing indicator (line-buffered stdin cannot observe keystrokes, so the
// indicator is explicit here), "/quit" leaves.
func main() {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	conn, err := grpc.Dial(config.ServerAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Connection failed: %v", err)
	}
	defer conn.Close()

	client := pb.NewChatServiceClient(conn)
	stream, err := client.Connect(context.Background())
	if err != nil {
		log.Fatalf("Stream opening failed: %v", err)
	}

	err = stream.Send(&pb.ClientEvent{Payload: &pb.ClientEvent_RegisterUser{
		RegisterUser: &pb.RegisterUser{Username: config.Username},
	}})
	if err != nil {
		log.Fatalf("Registration failed: %v", err)
	}

	go receive(stream)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" {
			_ = stream.CloseSend()
			return
		}

		var evt *pb.ClientEvent
		if after, ok := strings.CutPrefix(line, "/typing "); ok {
			if after != "on" && after != "off" {
				color.Red.Println("usage: /typing on|off")
				continue
			}
			evt = &pb.ClientEvent{Payload: &pb.ClientEvent_Typing{
				Typing: &pb.Typing{IsTyping: after == "on"},
			}}
		} else if after, ok := strings.CutPrefix(line, "/msg "); ok {
			to, text, found := strings.Cut(after, " ")
			if !found {
				color.Red.Println("usage: /msg <user> <text>")
				continue
			}
			evt = &pb.ClientEvent{Payload: &pb.ClientEvent_PrivateMessage{
				PrivateMessage: &pb.SendPrivateMessage{To: to, Message: text},
			}}
		} else {
			evt = &pb.ClientEvent{Payload: &pb.ClientEvent_ChatMessage{
				ChatMessage: &pb.SendChatMessage{Message: line},
			}}
		}

		if err := stream.Send(evt); err != nil {
			log.Fatalf("Send failed: %v", err)
		}
		// A sent message always ends the local typing state server-side,
		// so no explicit typing=false is needed here.
	}
}

func receive(stream pb.ChatService_ConnectClient) {
	for {
		in, err := stream.Recv()
		if err == io.EOF {
			return
		}
		if err != nil {
			log.Fatalf("Stream closed: %v", err)
		}
		render(in)
	}
}

func render(evt *pb.ServerEvent) {
	switch payload := evt.Payload.(type) {
	case *pb.ServerEvent_ChatHistory:
		color.Gray.Printf("--- %d messages of history ---\n", len(payload.ChatHistory.Messages))
		for _, m := range payload.ChatHistory.Messages {
			color.Gray.Printf("[%s] %s: %s\n", stamp(m.CreatedAt.AsTime()), m.Username, m.Content)
		}
	case *pb.ServerEvent_ChatMessage:
		m := payload.ChatMessage
		fmt.Printf("[%s] %s: %s\n", stamp(m.CreatedAt.AsTime()), m.Username, m.Content)
	case *pb.ServerEvent_PrivateMessage:
		m := payload.PrivateMessage
		color.Magenta.Printf("[%s] %s -> %s: %s\n", stamp(m.CreatedAt.AsTime()), m.Sender, m.Receiver, m.Content)
	case *pb.ServerEvent_UserStatus:
		s := payload.UserStatus
		if s.Status == "online" {
			color.Green.Printf("* %s is online\n", s.Username)
		} else {
			color.Yellow.Printf("* %s went offline\n", s.Username)
		}
	case *pb.ServerEvent_OnlineUsers:
		names := make([]string, 0, len(payload.OnlineUsers.Sessions))
		for _, s := range payload.OnlineUsers.Sessions {
			names = append(names, s.Username)
		}
		color.Cyan.Printf("* online: %s\n", strings.Join(names, ", "))
	case *pb.ServerEvent_TypingUsers:
		if len(payload.TypingUsers.Usernames) > 0 {
			color.Gray.Printf("* typing: %s\n", strings.Join(payload.TypingUsers.Usernames, ", "))
		}
	case *pb.ServerEvent_Error:
		color.Red.Printf("! %s\n", payload.Error.Reason)
	}
}

func stamp(at time.Time) string {
	return at.Local().Format("15:04")
}
