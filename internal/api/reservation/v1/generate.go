// Package reservationv1 holds the generated protobuf and gRPC bindings for
// royalacademy.reservation.v1.
package reservationv1

//go:generate protoc -I ../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative reservation/v1/reservation.proto
