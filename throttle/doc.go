// Package throttle provides an [http.RoundTripper] that rate-limits
// outbound lookups using a token-bucket algorithm from
// [golang.org/x/time/rate].
//
// The remote geolocation API allows 45 requests per minute on the free
// tier, so callers issuing sustained traffic typically wrap the
// transport:
//
//	rt, err := throttle.NewRoundTripper(
//		1,   // requests per second
//		5,   // burst capacity
//		func() *slog.Logger { return slog.Default() },
//		http.DefaultTransport,
//	)
//	httpClient := &http.Client{Transport: rt}
//
// When the rate limit is exceeded, outbound requests block until a
// token becomes available or the request context is cancelled.
package throttle
