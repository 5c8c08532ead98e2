package ipapi

// maxErrBodySize caps the amount of response body read when
// building an error for an unexpected status code. This prevents
// unbounded memory usage when a large response arrives with a
// wrong status.
const maxErrBodySize = 4 << 10 // 4KB

// envelope is the slice of the response the library always requests so
// it can distinguish a failed lookup from a successful one. The remote
// API reports per-target failures inside a 200 response.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Query   string `json:"query"`
}

const statusFail = "fail"

// Record is the deserialized result of one lookup. Every attribute is
// optional: it is non-nil only if it was requested and the remote API
// returned it. Callers must nil-check fields regardless of the Config
// used, since the API may omit fields on its own failure paths.
type Record struct {
	// Continent name and two-letter continent code.
	Continent     *string `json:"continent,omitempty"`
	ContinentCode *string `json:"continentCode,omitempty"`

	// Country name and ISO 3166-1 alpha-2 country code.
	Country     *string `json:"country,omitempty"`
	CountryCode *string `json:"countryCode,omitempty"`

	// Region short code (FIPS or ISO) and full region name.
	Region     *string `json:"region,omitempty"`
	RegionName *string `json:"regionName,omitempty"`

	City     *string `json:"city,omitempty"`
	District *string `json:"district,omitempty"`
	Zip      *string `json:"zip,omitempty"`

	Lat *float64 `json:"lat,omitempty"`
	Lon *float64 `json:"lon,omitempty"`

	// Timezone in tz database form, and its UTC DST offset in seconds.
	Timezone *string `json:"timezone,omitempty"`
	Offset   *int    `json:"offset,omitempty"`

	// Currency is the national currency code.
	Currency *string `json:"currency,omitempty"`

	ISP *string `json:"isp,omitempty"`
	Org *string `json:"org,omitempty"`

	// AS number and organization, separated by a space (RIR). Empty for
	// IP blocks not announced in BGP tables. The remote key is "as".
	AS     *string `json:"as,omitempty"`
	ASName *string `json:"asname,omitempty"`

	// Reverse DNS of the IP. Requesting it can delay the response.
	Reverse *string `json:"reverse,omitempty"`

	Mobile  *bool `json:"mobile,omitempty"`
	Proxy   *bool `json:"proxy,omitempty"`
	Hosting *bool `json:"hosting,omitempty"`

	// Query is the IP or domain the record answers for.
	Query *string `json:"query,omitempty"`
}
