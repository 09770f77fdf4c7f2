// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: chat.proto

package chat

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ClientEvent struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Payload:
	//
	//	*ClientEvent_RegisterUser
	//	*ClientEvent_ChatMessage
	//	*ClientEvent_PrivateMessage
	//	*ClientEvent_Typing
	Payload       isClientEvent_Payload `protobuf_oneof:"payload"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClientEvent) Reset() {
	*x = ClientEvent{}
	mi := &file_chat_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClientEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClientEvent) ProtoMessage() {}

func (x *ClientEvent) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClientEvent.ProtoReflect.Descriptor instead.
func (*ClientEvent) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{0}
}

func (x *ClientEvent) GetPayload() isClientEvent_Payload {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *ClientEvent) GetRegisterUser() *RegisterUser {
	if x != nil {
		if x, ok := x.Payload.(*ClientEvent_RegisterUser); ok {
			return x.RegisterUser
		}
	}
	return nil
}

func (x *ClientEvent) GetChatMessage() *SendChatMessage {
	if x != nil {
		if x, ok := x.Payload.(*ClientEvent_ChatMessage); ok {
			return x.ChatMessage
		}
	}
	return nil
}

func (x *ClientEvent) GetPrivateMessage() *SendPrivateMessage {
	if x != nil {
		if x, ok := x.Payload.(*ClientEvent_PrivateMessage); ok {
			return x.PrivateMessage
		}
	}
	return nil
}

func (x *ClientEvent) GetTyping() *Typing {
	if x != nil {
		if x, ok := x.Payload.(*ClientEvent_Typing); ok {
			return x.Typing
		}
	}
	return nil
}

type isClientEvent_Payload interface {
	isClientEvent_Payload()
}

type ClientEvent_RegisterUser struct {
	RegisterUser *RegisterUser `protobuf:"bytes,1,opt,name=register_user,json=registerUser,proto3,oneof"`
}

type ClientEvent_ChatMessage struct {
	ChatMessage *SendChatMessage `protobuf:"bytes,2,opt,name=chat_message,json=chatMessage,proto3,oneof"`
}

type ClientEvent_PrivateMessage struct {
	PrivateMessage *SendPrivateMessage `protobuf:"bytes,3,opt,name=private_message,json=privateMessage,proto3,oneof"`
}

type ClientEvent_Typing struct {
	Typing *Typing `protobuf:"bytes,4,opt,name=typing,proto3,oneof"`
}

func (*ClientEvent_RegisterUser) isClientEvent_Payload() {}

func (*ClientEvent_ChatMessage) isClientEvent_Payload() {}

func (*ClientEvent_PrivateMessage) isClientEvent_Payload() {}

func (*ClientEvent_Typing) isClientEvent_Payload() {}

type RegisterUser struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Username      string                 `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterUser) Reset() {
	*x = RegisterUser{}
	mi := &file_chat_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterUser) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterUser) ProtoMessage() {}

func (x *RegisterUser) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterUser.ProtoReflect.Descriptor instead.
func (*RegisterUser) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{1}
}

func (x *RegisterUser) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

type SendChatMessage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Message       string                 `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SendChatMessage) Reset() {
	*x = SendChatMessage{}
	mi := &file_chat_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SendChatMessage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SendChatMessage) ProtoMessage() {}

func (x *SendChatMessage) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SendChatMessage.ProtoReflect.Descriptor instead.
func (*SendChatMessage) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{2}
}

func (x *SendChatMessage) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type SendPrivateMessage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	To            string                 `protobuf:"bytes,1,opt,name=to,proto3" json:"to,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SendPrivateMessage) Reset() {
	*x = SendPrivateMessage{}
	mi := &file_chat_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SendPrivateMessage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SendPrivateMessage) ProtoMessage() {}

func (x *SendPrivateMessage) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SendPrivateMessage.ProtoReflect.Descriptor instead.
func (*SendPrivateMessage) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{3}
}

func (x *SendPrivateMessage) GetTo() string {
	if x != nil {
		return x.To
	}
	return ""
}

func (x *SendPrivateMessage) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type Typing struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	IsTyping      bool                   `protobuf:"varint,1,opt,name=is_typing,json=isTyping,proto3" json:"is_typing,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Typing) Reset() {
	*x = Typing{}
	mi := &file_chat_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Typing) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Typing) ProtoMessage() {}

func (x *Typing) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Typing.ProtoReflect.Descriptor instead.
func (*Typing) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{4}
}

func (x *Typing) GetIsTyping() bool {
	if x != nil {
		return x.IsTyping
	}
	return false
}

type ServerEvent struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Payload:
	//
	//	*ServerEvent_ChatHistory
	//	*ServerEvent_UserStatus
	//	*ServerEvent_OnlineUsers
	//	*ServerEvent_ChatMessage
	//	*ServerEvent_PrivateMessage
	//	*ServerEvent_TypingUsers
	//	*ServerEvent_Error
	Payload       isServerEvent_Payload `protobuf_oneof:"payload"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ServerEvent) Reset() {
	*x = ServerEvent{}
	mi := &file_chat_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ServerEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ServerEvent) ProtoMessage() {}

func (x *ServerEvent) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ServerEvent.ProtoReflect.Descriptor instead.
func (*ServerEvent) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{5}
}

func (x *ServerEvent) GetPayload() isServerEvent_Payload {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *ServerEvent) GetChatHistory() *ChatHistory {
	if x != nil {
		if x, ok := x.Payload.(*ServerEvent_ChatHistory); ok {
			return x.ChatHistory
		}
	}
	return nil
}

func (x *ServerEvent) GetUserStatus() *UserStatus {
	if x != nil {
		if x, ok := x.Payload.(*ServerEvent_UserStatus); ok {
			return x.UserStatus
		}
	}
	return nil
}

func (x *ServerEvent) GetOnlineUsers() *OnlineUsers {
	if x != nil {
		if x, ok := x.Payload.(*ServerEvent_OnlineUsers); ok {
			return x.OnlineUsers
		}
	}
	return nil
}

func (x *ServerEvent) GetChatMessage() *ChatMessage {
	if x != nil {
		if x, ok := x.Payload.(*ServerEvent_ChatMessage); ok {
			return x.ChatMessage
		}
	}
	return nil
}

func (x *ServerEvent) GetPrivateMessage() *PrivateMessage {
	if x != nil {
		if x, ok := x.Payload.(*ServerEvent_PrivateMessage); ok {
			return x.PrivateMessage
		}
	}
	return nil
}

func (x *ServerEvent) GetTypingUsers() *TypingUsers {
	if x != nil {
		if x, ok := x.Payload.(*ServerEvent_TypingUsers); ok {
			return x.TypingUsers
		}
	}
	return nil
}

func (x *ServerEvent) GetError() *Error {
	if x != nil {
		if x, ok := x.Payload.(*ServerEvent_Error); ok {
			return x.Error
		}
	}
	return nil
}

type isServerEvent_Payload interface {
	isServerEvent_Payload()
}

type ServerEvent_ChatHistory struct {
	ChatHistory *ChatHistory `protobuf:"bytes,1,opt,name=chat_history,json=chatHistory,proto3,oneof"`
}

type ServerEvent_UserStatus struct {
	UserStatus *UserStatus `protobuf:"bytes,2,opt,name=user_status,json=userStatus,proto3,oneof"`
}

type ServerEvent_OnlineUsers struct {
	OnlineUsers *OnlineUsers `protobuf:"bytes,3,opt,name=online_users,json=onlineUsers,proto3,oneof"`
}

type ServerEvent_ChatMessage struct {
	ChatMessage *ChatMessage `protobuf:"bytes,4,opt,name=chat_message,json=chatMessage,proto3,oneof"`
}

type ServerEvent_PrivateMessage struct {
	PrivateMessage *PrivateMessage `protobuf:"bytes,5,opt,name=private_message,json=privateMessage,proto3,oneof"`
}

type ServerEvent_TypingUsers struct {
	TypingUsers *TypingUsers `protobuf:"bytes,6,opt,name=typing_users,json=typingUsers,proto3,oneof"`
}

type ServerEvent_Error struct {
	Error *Error `protobuf:"bytes,7,opt,name=error,proto3,oneof"`
}

func (*ServerEvent_ChatHistory) isServerEvent_Payload() {}

func (*ServerEvent_UserStatus) isServerEvent_Payload() {}

func (*ServerEvent_OnlineUsers) isServerEvent_Payload() {}

func (*ServerEvent_ChatMessage) isServerEvent_Payload() {}

func (*ServerEvent_PrivateMessage) isServerEvent_Payload() {}

func (*ServerEvent_TypingUsers) isServerEvent_Payload() {}

func (*ServerEvent_Error) isServerEvent_Payload() {}

type ChatMessage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MessageId     string                 `protobuf:"bytes,1,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	Username      string                 `protobuf:"bytes,2,opt,name=username,proto3" json:"username,omitempty"`
	Content       string                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChatMessage) Reset() {
	*x = ChatMessage{}
	mi := &file_chat_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChatMessage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChatMessage) ProtoMessage() {}

func (x *ChatMessage) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChatMessage.ProtoReflect.Descriptor instead.
func (*ChatMessage) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{6}
}

func (x *ChatMessage) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

func (x *ChatMessage) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *ChatMessage) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *ChatMessage) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type PrivateMessage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MessageId     string                 `protobuf:"bytes,1,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	Sender        string                 `protobuf:"bytes,2,opt,name=sender,proto3" json:"sender,omitempty"`
	Receiver      string                 `protobuf:"bytes,3,opt,name=receiver,proto3" json:"receiver,omitempty"`
	Content       string                 `protobuf:"bytes,4,opt,name=content,proto3" json:"content,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PrivateMessage) Reset() {
	*x = PrivateMessage{}
	mi := &file_chat_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PrivateMessage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PrivateMessage) ProtoMessage() {}

func (x *PrivateMessage) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PrivateMessage.ProtoReflect.Descriptor instead.
func (*PrivateMessage) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{7}
}

func (x *PrivateMessage) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

func (x *PrivateMessage) GetSender() string {
	if x != nil {
		return x.Sender
	}
	return ""
}

func (x *PrivateMessage) GetReceiver() string {
	if x != nil {
		return x.Receiver
	}
	return ""
}

func (x *PrivateMessage) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *PrivateMessage) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type ChatHistory struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Messages      []*ChatMessage         `protobuf:"bytes,1,rep,name=messages,proto3" json:"messages,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChatHistory) Reset() {
	*x = ChatHistory{}
	mi := &file_chat_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChatHistory) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChatHistory) ProtoMessage() {}

func (x *ChatHistory) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChatHistory.ProtoReflect.Descriptor instead.
func (*ChatHistory) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{8}
}

func (x *ChatHistory) GetMessages() []*ChatMessage {
	if x != nil {
		return x.Messages
	}
	return nil
}

type UserStatus struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Username      string                 `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	LastSeen      *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=last_seen,json=lastSeen,proto3" json:"last_seen,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UserStatus) Reset() {
	*x = UserStatus{}
	mi := &file_chat_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UserStatus) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UserStatus) ProtoMessage() {}

func (x *UserStatus) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UserStatus.ProtoReflect.Descriptor instead.
func (*UserStatus) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{9}
}

func (x *UserStatus) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *UserStatus) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *UserStatus) GetLastSeen() *timestamppb.Timestamp {
	if x != nil {
		return x.LastSeen
	}
	return nil
}

type SessionInfo struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Username      string                 `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	LastSeen      *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=last_seen,json=lastSeen,proto3" json:"last_seen,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SessionInfo) Reset() {
	*x = SessionInfo{}
	mi := &file_chat_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SessionInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SessionInfo) ProtoMessage() {}

func (x *SessionInfo) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SessionInfo.ProtoReflect.Descriptor instead.
func (*SessionInfo) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{10}
}

func (x *SessionInfo) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *SessionInfo) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *SessionInfo) GetLastSeen() *timestamppb.Timestamp {
	if x != nil {
		return x.LastSeen
	}
	return nil
}

type OnlineUsers struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sessions      []*SessionInfo         `protobuf:"bytes,1,rep,name=sessions,proto3" json:"sessions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OnlineUsers) Reset() {
	*x = OnlineUsers{}
	mi := &file_chat_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OnlineUsers) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OnlineUsers) ProtoMessage() {}

func (x *OnlineUsers) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OnlineUsers.ProtoReflect.Descriptor instead.
func (*OnlineUsers) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{11}
}

func (x *OnlineUsers) GetSessions() []*SessionInfo {
	if x != nil {
		return x.Sessions
	}
	return nil
}

type TypingUsers struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Usernames     []string               `protobuf:"bytes,1,rep,name=usernames,proto3" json:"usernames,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TypingUsers) Reset() {
	*x = TypingUsers{}
	mi := &file_chat_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TypingUsers) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TypingUsers) ProtoMessage() {}

func (x *TypingUsers) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TypingUsers.ProtoReflect.Descriptor instead.
func (*TypingUsers) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{12}
}

func (x *TypingUsers) GetUsernames() []string {
	if x != nil {
		return x.Usernames
	}
	return nil
}

type Error struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reason        string                 `protobuf:"bytes,1,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Error) Reset() {
	*x = Error{}
	mi := &file_chat_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Error) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Error) ProtoMessage() {}

func (x *Error) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Error.ProtoReflect.Descriptor instead.
func (*Error) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{13}
}

func (x *Error) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type PrivateHistoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserA         string                 `protobuf:"bytes,1,opt,name=user_a,json=userA,proto3" json:"user_a,omitempty"`
	UserB         string                 `protobuf:"bytes,2,opt,name=user_b,json=userB,proto3" json:"user_b,omitempty"`
	Limit         int64                  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PrivateHistoryRequest) Reset() {
	*x = PrivateHistoryRequest{}
	mi := &file_chat_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PrivateHistoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PrivateHistoryRequest) ProtoMessage() {}

func (x *PrivateHistoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PrivateHistoryRequest.ProtoReflect.Descriptor instead.
func (*PrivateHistoryRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{14}
}

func (x *PrivateHistoryRequest) GetUserA() string {
	if x != nil {
		return x.UserA
	}
	return ""
}

func (x *PrivateHistoryRequest) GetUserB() string {
	if x != nil {
		return x.UserB
	}
	return ""
}

func (x *PrivateHistoryRequest) GetLimit() int64 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type PrivateHistoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Messages      []*PrivateMessage      `protobuf:"bytes,1,rep,name=messages,proto3" json:"messages,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PrivateHistoryResponse) Reset() {
	*x = PrivateHistoryResponse{}
	mi := &file_chat_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PrivateHistoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PrivateHistoryResponse) ProtoMessage() {}

func (x *PrivateHistoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PrivateHistoryResponse.ProtoReflect.Descriptor instead.
func (*PrivateHistoryResponse) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{15}
}

func (x *PrivateHistoryResponse) GetMessages() []*PrivateMessage {
	if x != nil {
		return x.Messages
	}
	return nil
}

var File_chat_proto protoreflect.FileDescriptor

const file_chat_proto_rawDesc = "" +
	"\n" +
	"\n" +
	"chat.proto\x12\rsockchat.chat\x1a\x1fgoogle/protobuf/timestamp.proto\"\xa0\x02\n" +
	"\vClientEvent\x12B\n" +
	"\rregister_user\x18\x01 \x01(\v2\x1b.sockchat.chat.RegisterUserH\x00R\fregisterUser\x12C\n" +
	"\fchat_message\x18\x02 \x01(\v2\x1e.sockchat.chat.SendChatMessageH\x00R\vchatMessage\x12L\n" +
	"\x0fprivate_message\x18\x03 \x01(\v2!.sockchat.chat.SendPrivateMessageH\x00R\x0eprivateMessage\x12/\n" +
	"\x06typing\x18\x04 \x01(\v2\x15.sockchat.chat.TypingH\x00R\x06typingB\t\n" +
	"\apayload\"*\n" +
	"\fRegisterUser\x12\x1a\n" +
	"\busername\x18\x01 \x01(\tR\busername\"+\n" +
	"\x0fSendChatMessage\x12\x18\n" +
	"\amessage\x18\x01 \x01(\tR\amessage\">\n" +
	"\x12SendPrivateMessage\x12\x0e\n" +
	"\x02to\x18\x01 \x01(\tR\x02to\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\"%\n" +
	"\x06Typing\x12\x1b\n" +
	"\tis_typing\x18\x01 \x01(\bR\bisTyping\"\xd2\x03\n" +
	"\vServerEvent\x12?\n" +
	"\fchat_history\x18\x01 \x01(\v2\x1a.sockchat.chat.ChatHistoryH\x00R\vchatHistory\x12<\n" +
	"\vuser_status\x18\x02 \x01(\v2\x19.sockchat.chat.UserStatusH\x00R\n" +
	"userStatus\x12?\n" +
	"\fonline_users\x18\x03 \x01(\v2\x1a.sockchat.chat.OnlineUsersH\x00R\vonlineUsers\x12?\n" +
	"\fchat_message\x18\x04 \x01(\v2\x1a.sockchat.chat.ChatMessageH\x00R\vchatMessage\x12H\n" +
	"\x0fprivate_message\x18\x05 \x01(\v2\x1d.sockchat.chat.PrivateMessageH\x00R\x0eprivateMessage\x12?\n" +
	"\ftyping_users\x18\x06 \x01(\v2\x1a.sockchat.chat.TypingUsersH\x00R\vtypingUsers\x12,\n" +
	"\x05error\x18\a \x01(\v2\x14.sockchat.chat.ErrorH\x00R\x05errorB\t\n" +
	"\apayload\"\x9d\x01\n" +
	"\vChatMessage\x12\x1d\n" +
	"\n" +
	"message_id\x18\x01 \x01(\tR\tmessageId\x12\x1a\n" +
	"\busername\x18\x02 \x01(\tR\busername\x12\x18\n" +
	"\acontent\x18\x03 \x01(\tR\acontent\x129\n" +
	"\n" +
	"created_at\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\"\xb8\x01\n" +
	"\x0ePrivateMessage\x12\x1d\n" +
	"\n" +
	"message_id\x18\x01 \x01(\tR\tmessageId\x12\x16\n" +
	"\x06sender\x18\x02 \x01(\tR\x06sender\x12\x1a\n" +
	"\breceiver\x18\x03 \x01(\tR\breceiver\x12\x18\n" +
	"\acontent\x18\x04 \x01(\tR\acontent\x129\n" +
	"\n" +
	"created_at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\"E\n" +
	"\vChatHistory\x126\n" +
	"\bmessages\x18\x01 \x03(\v2\x1a.sockchat.chat.ChatMessageR\bmessages\"y\n" +
	"\n" +
	"UserStatus\x12\x1a\n" +
	"\busername\x18\x01 \x01(\tR\busername\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x127\n" +
	"\tlast_seen\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\blastSeen\"z\n" +
	"\vSessionInfo\x12\x1a\n" +
	"\busername\x18\x01 \x01(\tR\busername\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x127\n" +
	"\tlast_seen\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\blastSeen\"E\n" +
	"\vOnlineUsers\x126\n" +
	"\bsessions\x18\x01 \x03(\v2\x1a.sockchat.chat.SessionInfoR\bsessions\"+\n" +
	"\vTypingUsers\x12\x1c\n" +
	"\tusernames\x18\x01 \x03(\tR\tusernames\"\x1f\n" +
	"\x05Error\x12\x16\n" +
	"\x06reason\x18\x01 \x01(\tR\x06reason\"[\n" +
	"\x15PrivateHistoryRequest\x12\x15\n" +
	"\x06user_a\x18\x01 \x01(\tR\x05userA\x12\x15\n" +
	"\x06user_b\x18\x02 \x01(\tR\x05userB\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x03R\x05limit\"S\n" +
	"\x16PrivateHistoryResponse\x129\n" +
	"\bmessages\x18\x01 \x03(\v2\x1d.sockchat.chat.PrivateMessageR\bmessages2\xb3\x01\n" +
	"\vChatService\x12E\n" +
	"\aConnect\x12\x1a.sockchat.chat.ClientEvent\x1a\x1a.sockchat.chat.ServerEvent(\x010\x01\x12]\n" +
	"\x0ePrivateHistory\x12$.sockchat.chat.PrivateHistoryRequest\x1a%.sockchat.chat.PrivateHistoryResponseB\x15Z\x13sockchat/proto/chatb\x06proto3"

var (
	file_chat_proto_rawDescOnce sync.Once
	file_chat_proto_rawDescData []byte
)

func file_chat_proto_rawDescGZIP() []byte {
	file_chat_proto_rawDescOnce.Do(func() {
		file_chat_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_chat_proto_rawDesc), len(file_chat_proto_rawDesc)))
	})
	return file_chat_proto_rawDescData
}

var file_chat_proto_msgTypes = make([]protoimpl.MessageInfo, 16)
var file_chat_proto_goTypes = []any{
	(*ClientEvent)(nil),            // 0: sockchat.chat.ClientEvent
	(*RegisterUser)(nil),           // 1: sockchat.chat.RegisterUser
	(*SendChatMessage)(nil),        // 2: sockchat.chat.SendChatMessage
	(*SendPrivateMessage)(nil),     // 3: sockchat.chat.SendPrivateMessage
	(*Typing)(nil),                 // 4: sockchat.chat.Typing
	(*ServerEvent)(nil),            // 5: sockchat.chat.ServerEvent
	(*ChatMessage)(nil),            // 6: sockchat.chat.ChatMessage
	(*PrivateMessage)(nil),         // 7: sockchat.chat.PrivateMessage
	(*ChatHistory)(nil),            // 8: sockchat.chat.ChatHistory
	(*UserStatus)(nil),             // 9: sockchat.chat.UserStatus
	(*SessionInfo)(nil),            // 10: sockchat.chat.SessionInfo
	(*OnlineUsers)(nil),            // 11: sockchat.chat.OnlineUsers
	(*TypingUsers)(nil),            // 12: sockchat.chat.TypingUsers
	(*Error)(nil),                  // 13: sockchat.chat.Error
	(*PrivateHistoryRequest)(nil),  // 14: sockchat.chat.PrivateHistoryRequest
	(*PrivateHistoryResponse)(nil), // 15: sockchat.chat.PrivateHistoryResponse
	(*timestamppb.Timestamp)(nil),  // 16: google.protobuf.Timestamp
}
var file_chat_proto_depIdxs = []int32{
	1,  // 0: sockchat.chat.ClientEvent.register_user:type_name -> sockchat.chat.RegisterUser
	2,  // 1: sockchat.chat.ClientEvent.chat_message:type_name -> sockchat.chat.SendChatMessage
	3,  // 2: sockchat.chat.ClientEvent.private_message:type_name -> sockchat.chat.SendPrivateMessage
	4,  // 3: sockchat.chat.ClientEvent.typing:type_name -> sockchat.chat.Typing
	8,  // 4: sockchat.chat.ServerEvent.chat_history:type_name -> sockchat.chat.ChatHistory
	9,  // 5: sockchat.chat.ServerEvent.user_status:type_name -> sockchat.chat.UserStatus
	11, // 6: sockchat.chat.ServerEvent.online_users:type_name -> sockchat.chat.OnlineUsers
	6,  // 7: sockchat.chat.ServerEvent.chat_message:type_name -> sockchat.chat.ChatMessage
	7,  // 8: sockchat.chat.ServerEvent.private_message:type_name -> sockchat.chat.PrivateMessage
	12, // 9: sockchat.chat.ServerEvent.typing_users:type_name -> sockchat.chat.TypingUsers
	13, // 10: sockchat.chat.ServerEvent.error:type_name -> sockchat.chat.Error
	16, // 11: sockchat.chat.ChatMessage.created_at:type_name -> google.protobuf.Timestamp
	16, // 12: sockchat.chat.PrivateMessage.created_at:type_name -> google.protobuf.Timestamp
	6,  // 13: sockchat.chat.ChatHistory.messages:type_name -> sockchat.chat.ChatMessage
	16, // 14: sockchat.chat.UserStatus.last_seen:type_name -> google.protobuf.Timestamp
	16, // 15: sockchat.chat.SessionInfo.last_seen:type_name -> google.protobuf.Timestamp
	10, // 16: sockchat.chat.OnlineUsers.sessions:type_name -> sockchat.chat.SessionInfo
	7,  // 17: sockchat.chat.PrivateHistoryResponse.messages:type_name -> sockchat.chat.PrivateMessage
	0,  // 18: sockchat.chat.ChatService.Connect:input_type -> sockchat.chat.ClientEvent
	14, // 19: sockchat.chat.ChatService.PrivateHistory:input_type -> sockchat.chat.PrivateHistoryRequest
	5,  // 20: sockchat.chat.ChatService.Connect:output_type -> sockchat.chat.ServerEvent
	15, // 21: sockchat.chat.ChatService.PrivateHistory:output_type -> sockchat.chat.PrivateHistoryResponse
	20, // [20:22] is the sub-list for method output_type
	18, // [18:20] is the sub-list for method input_type
	18, // [18:18] is the sub-list for extension type_name
	18, // [18:18] is the sub-list for extension extendee
	0,  // [0:18] is the sub-list for field type_name
}

func init() { file_chat_proto_init() }
func file_chat_proto_init() {
	if File_chat_proto != nil {
		return
	}
	file_chat_proto_msgTypes[0].OneofWrappers = []any{
		(*ClientEvent_RegisterUser)(nil),
		(*ClientEvent_ChatMessage)(nil),
		(*ClientEvent_PrivateMessage)(nil),
		(*ClientEvent_Typing)(nil),
	}
	file_chat_proto_msgTypes[5].OneofWrappers = []any{
		(*ServerEvent_ChatHistory)(nil),
		(*ServerEvent_UserStatus)(nil),
		(*ServerEvent_OnlineUsers)(nil),
		(*ServerEvent_ChatMessage)(nil),
		(*ServerEvent_PrivateMessage)(nil),
		(*ServerEvent_TypingUsers)(nil),
		(*ServerEvent_Error)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_chat_proto_rawDesc), len(file_chat_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_chat_proto_goTypes,
		DependencyIndexes: file_chat_proto_depIdxs,
		MessageInfos:      file_chat_proto_msgTypes,
	}.Build()
	File_chat_proto = out.File
	file_chat_proto_goTypes = nil
	file_chat_proto_depIdxs = nil
}
