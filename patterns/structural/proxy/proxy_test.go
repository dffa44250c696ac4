package proxy_test

import (
	"testing"

	"github.com/sghaida/patterns/demo"
	"github.com/sghaida/patterns/patterns/structural/proxy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingInternet struct{ urls []string }

func (r *recordingInternet) ConnectTo(url string) { r.urls = append(r.urls, url) }

//
// -----------------------------------------------------------------------------
// InternetProxy
// -----------------------------------------------------------------------------

// TestInternetProxy_Forwards verifies allowed sites are forwarded and banned ones refused.
func TestInternetProxy_Forwards(t *testing.T) {
	t.Parallel()

	inner := &recordingInternet{}
	tr := demo.NewTranscript("", "proxy")
	p := proxy.NewInternetProxy(inner, tr)

	p.ConnectTo("a.com")
	p.ConnectTo("blocked.org")
	p.ConnectTo("b.com")

	assert.Equal(t, []string{"a.com", "b.com"}, inner.urls)
	assert.Equal(t, []string{"Access to blocked.org is restricted."}, tr.Lines())
	assert.False(t, p.Allowed("restricted.com"))
	assert.True(t, p.Allowed("sub.restricted.com"))
}

//
// -----------------------------------------------------------------------------
// Demo
// -----------------------------------------------------------------------------

// TestDemo verifies the scripted open, restricted, allowed and blocked connections.
func TestDemo(t *testing.T) {
	t.Parallel()

	tr := demo.NewTranscript("", proxy.Demo.Name())
	require.NoError(t, proxy.Demo.Run(tr))
	assert.Equal(t, []string{
		"Connecting to open.com",
		"Access to restricted.com is restricted.",
		"Connecting to allowed.com",
		"Access to blocked.org is restricted.",
	}, tr.Lines())
}
