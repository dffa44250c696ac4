// Package chain shows the chain of responsibility: a request is passed
// along a list of handlers until one of them accepts it.
package chain

import (
	"fmt"
	"io"

	"github.com/sghaida/patterns/demo"
)

// Handler either handles a request or delegates it to the next link.
// Handle reports whether some link in the chain accepted the request.
type Handler interface {
	Handle(request string) bool
}

// FirstHandler accepts "Request1". Next ends the chain when it is nil. A
// typed nil pointer such as (*SecondHandler)(nil) is treated the same way.
type FirstHandler struct {
	Next Handler
	Out  io.Writer
}

// Handle accepts Request1 and forwards anything else to Next.
func (h *FirstHandler) Handle(request string) bool {
	if h == nil {
		return false
	}
	if request == "Request1" {
		fmt.Fprintf(h.Out, "FirstHandler handled %s\n", request)
		return true
	}
	return delegate(h.Next, request)
}

// SecondHandler accepts "Request2". Next follows the same rules as
// FirstHandler.Next.
type SecondHandler struct {
	Next Handler
	Out  io.Writer
}

// Handle accepts Request2 and forwards anything else to Next.
func (h *SecondHandler) Handle(request string) bool {
	if h == nil {
		return false
	}
	if request == "Request2" {
		fmt.Fprintf(h.Out, "SecondHandler handled %s\n", request)
		return true
	}
	return delegate(h.Next, request)
}

// delegate forwards to next; the end of the chain reports false. A nil
// handler pointer stored in next reaches its Handle, which reports false.
func delegate(next Handler, request string) bool {
	if next == nil {
		return false
	}
	return next.Handle(request)
}

// NewChain links FirstHandler -> SecondHandler.
func NewChain(out io.Writer) Handler {
	return &FirstHandler{Next: &SecondHandler{Out: out}, Out: out}
}

// Demo sends three requests through the chain; the last one falls off the end.
var Demo = demo.Define("chain-of-responsibility", demo.Behavioral,
	"Pass a request along handlers until one accepts it",
	func(w io.Writer) error {
		chain := NewChain(w)
		for _, req := range []string{"Request1", "Request2", "Request3"} {
			if !chain.Handle(req) {
				fmt.Fprintf(w, "%s was not handled\n", req)
			}
		}
		return nil
	})
