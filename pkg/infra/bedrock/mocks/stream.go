package mocks

import (
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"
)

// Stream replays a fixed list of agent events.
type Stream struct {
	events chan types.ResponseStream
	err    error
	Closed bool
}

func NewStream(err error, events ...types.ResponseStream) *Stream {
	ch := make(chan types.ResponseStream, len(events))
	for _, e := range events {
		ch <- e
	}
	close(ch)
	return &Stream{events: ch, err: err}
}

func (s *Stream) Events() <-chan types.ResponseStream {
	return s.events
}

func (s *Stream) Close() error {
	s.Closed = true
	return nil
}

func (s *Stream) Err() error {
	return s.err
}
