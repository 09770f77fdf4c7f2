// Package proto holds the wire and storage schema sources. Generated Go
// packages land in proto/chat and proto/storage.
package proto

//go:generate protoc --go_out=paths=source_relative:storage --go_opt=Mstorage.proto=sockchat/proto/storage storage.proto
//go:generate protoc --go_out=paths=source_relative:chat --go-grpc_out=paths=source_relative:chat --go_opt=Mchat.proto=sockchat/proto/chat --go-grpc_opt=Mchat.proto=sockchat/proto/chat chat.proto
