package imagefetch

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	tls "github.com/refraction-networking/utls"
)

// chromeH1Spec is a Chrome-like TLS ClientHello with ALPN forced to http/1.1
// only. Computed once at init time and reused for every connection.
var chromeH1Spec tls.ClientHelloSpec

func init() {
	spec, err := tls.UTLSIdToSpec(tls.HelloChrome_Auto)
	if err != nil {
		return
	}
	// Go's http.Transport cannot speak h2 over a utls connection.
	for i, ext := range spec.Extensions {
		if alpn, ok := ext.(*tls.ALPNExtension); ok {
			alpn.AlpnProtocols = []string{"http/1.1"}
			spec.Extensions[i] = alpn
			break
		}
	}
	chromeH1Spec = spec
}

// newChromeTransport returns a transport whose TLS handshakes carry a Chrome
// fingerprint. Image CDNs behind bot protection reject Go's default hello.
// Plain http:// URLs use the default dialer.
func newChromeTransport() *http.Transport {
	return &http.Transport{
		DialTLSContext:      dialTLSChrome,
		ForceAttemptHTTP2:   false,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     90 * time.Second,
	}
}

func dialTLSChrome(ctx context.Context, network, addr string) (net.Conn, error) {
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}
	host, _, _ := net.SplitHostPort(addr)
	tlsConn := tls.UClient(conn, &tls.Config{ServerName: host}, tls.HelloCustom)
	if err := tlsConn.ApplyPreset(&chromeH1Spec); err != nil {
		conn.Close()
		return nil, fmt.Errorf("imagefetch: apply tls spec: %w", err)
	}
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return tlsConn, nil
}
