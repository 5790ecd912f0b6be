package iruntime

import "context"

// Runtime is a Client with a connection lifecycle.
type Runtime interface {
	Client
	Ping(ctx context.Context) error
	Close() error
}
