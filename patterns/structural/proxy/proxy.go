// Package proxy guards access to the internet behind a ban list.
package proxy

import (
	"fmt"
	"io"
	"slices"

	"github.com/sghaida/patterns/demo"
)

// Internet is implemented by the real connection and by the proxy.
type Internet interface {
	ConnectTo(url string)
}

// RealInternet connects to anything.
type RealInternet struct{ Out io.Writer }

func (r RealInternet) ConnectTo(url string) { fmt.Fprintf(r.Out, "Connecting to %s\n", url) }

// DefaultBannedSites are refused by a proxy built with NewInternetProxy.
var DefaultBannedSites = []string{"restricted.com", "blocked.org"}

// InternetProxy refuses banned sites and forwards the rest.
type InternetProxy struct {
	real   Internet
	out    io.Writer
	banned []string
}

// NewInternetProxy guards inner with DefaultBannedSites, printing refusals to out.
func NewInternetProxy(inner Internet, out io.Writer) *InternetProxy {
	return &InternetProxy{real: inner, out: out, banned: slices.Clone(DefaultBannedSites)}
}

// Allowed reports whether url passes the ban list.
func (p *InternetProxy) Allowed(url string) bool { return !slices.Contains(p.banned, url) }

// ConnectTo refuses banned sites and forwards the rest.
func (p *InternetProxy) ConnectTo(url string) {
	if !p.Allowed(url) {
		fmt.Fprintf(p.out, "Access to %s is restricted.\n", url)
		return
	}
	p.real.ConnectTo(url)
}

// Demo connects to two allowed and two banned sites.
var Demo = demo.Define("proxy", demo.Structural,
	"Control access to an object through a stand-in",
	func(w io.Writer) error {
		var internet Internet = NewInternetProxy(RealInternet{Out: w}, w)
		for _, url := range []string{"open.com", "restricted.com", "allowed.com", "blocked.org"} {
			internet.ConnectTo(url)
		}
		return nil
	})
