// Package ipapi is a client for the ip-api.com IP-geolocation API.
//
// Callers pick which response fields to request (keeping payloads
// small), select a response language, and resolve one target or a
// batch of targets in a single call.
//
// # Building a Config
//
// Start from one of three presets and toggle fields; every Config
// method returns an updated copy, so chain by reassignment:
//
//	cfg := ipapi.EmptyConfig().
//		Include(ipapi.FieldCountry, ipapi.FieldCurrency).
//		WithLanguage(ipapi.LangDE)
//
// [MinimumConfig] selects an important subset, [MaximumConfig] selects
// every field. Including an already included field is a no-op, as is
// excluding an absent one.
//
// # Making Requests
//
// Build a [Client] with functional options, then look up an IP
// address, a domain, or the empty string for the caller's own
// public address:
//
//	c, err := ipapi.Build(
//		ipapi.WithTimeout(10 * time.Second),
//		ipapi.WithUserAgent("myapp/1.0"),
//	)
//	record, err := c.Lookup(ctx, "1.1.1.1", cfg)
//	if record.Country != nil {
//		fmt.Println(*record.Country)
//	}
//
// Every [Record] attribute is a pointer and is non-nil only when the
// field was both requested and returned.
//
// # Batch Requests
//
// Up to 100 IP literals resolve in one round-trip, with results in
// input order:
//
//	records, err := c.LookupBatch(ctx, []string{"1.1.1.1", "8.8.8.8"}, cfg)
//
// # Rate Limits
//
// The free tier allows 45 requests per minute. A 429 response surfaces
// as a [RateLimitError] carrying the time until the window resets. The
// client never retries on its own; [WithThrottle] enables opt-in
// client-side token-bucket limiting.
package ipapi
