package ipapi_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/adamwoolhether/ipapi"
)

func ExampleBuild() {
	c, err := ipapi.Build(
		ipapi.WithTimeout(10*time.Second),
		ipapi.WithUserAgent("example/1.0"),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_ = c
	fmt.Println("client built")
	// Output: client built
}

func ExampleConfig_Query() {
	cfg := ipapi.EmptyConfig().
		Include(ipapi.FieldCountry, ipapi.FieldCurrency)

	fmt.Println(cfg.Query().Encode())
	// Output: fields=8437761
}

func ExampleConfig_Include() {
	cfg := ipapi.MinimumConfig().
		Exclude(ipapi.FieldISP).
		Include(ipapi.FieldCurrency)

	fmt.Println(cfg.Fields())
	// Output: country|region|city|lat|lon|currency
}

func ExampleClient_Lookup() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"success","country":"Australia","currency":"AUD"}`)
	}))
	defer ts.Close()

	c, _ := ipapi.Build(ipapi.WithBaseURL(ts.URL))

	cfg := ipapi.EmptyConfig().
		Include(ipapi.FieldCountry, ipapi.FieldCurrency).
		WithLanguage(ipapi.LangEN)

	record, err := c.Lookup(context.Background(), "1.1.1.1", cfg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%s's national currency is %s\n", *record.Country, *record.Currency)
	// Output: Australia's national currency is AUD
}

func ExampleClient_LookupBatch() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"status":"success","query":"1.1.1.1","isp":"Cloudflare, Inc"},
			{"status":"success","query":"8.8.8.8","isp":"Google LLC"}
		]`)
	}))
	defer ts.Close()

	c, _ := ipapi.Build(ipapi.WithBaseURL(ts.URL))

	records, err := c.LookupBatch(context.Background(), []string{"1.1.1.1", "8.8.8.8"}, ipapi.EmptyConfig().Include(ipapi.FieldQuery, ipapi.FieldISP))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, record := range records {
		fmt.Printf("%s belongs to %s\n", *record.Query, *record.ISP)
	}
	// Output:
	// 1.1.1.1 belongs to Cloudflare, Inc
	// 8.8.8.8 belongs to Google LLC
}
