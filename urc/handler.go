package urc

import (
	"errors"
	"sync/atomic"
)

var ErrRegistered = errors.New("urc handler already registered")

// Handler receives unsolicited results.
type Handler interface {
	HandleURC(Event)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(Event)

func (f HandlerFunc) HandleURC(e Event) { f(e) }

var handler atomic.Pointer[Handler]

// Register installs the process-wide handler. It can be called once.
func Register(h Handler) error {
	if h == nil {
		return errors.New("nil urc handler")
	}
	if !handler.CompareAndSwap(nil, &h) {
		return ErrRegistered
	}
	return nil
}

// Notify delivers e to the registered handler, if any.
func Notify(e Event) {
	if h := handler.Load(); h != nil {
		(*h).HandleURC(e)
	}
}
