// Package captionv1 holds the captioning sidecar contract. The gRPC stubs
// are generated at build time, not committed.
package captionv1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative caption.proto
