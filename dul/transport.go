package dul

import (
	"net"
	"time"
)

// Transport is the narrow slice of net.Conn the reactor needs. Defining
// it locally (rather than depending on net.Conn directly) lets tests
// substitute net.Pipe or an in-memory fake without standing up real
// sockets, the same seam the teacher's Association left to net.Conn
// directly. The deadline setters are part of the interface; the reactor
// itself never calls them.
type Transport interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Close() error
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
}

var _ Transport = (net.Conn)(nil)
