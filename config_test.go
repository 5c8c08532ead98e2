package ipapi_test

import (
	"strconv"
	"testing"

	"github.com/adamwoolhether/ipapi"
)

// envelopeBits are the status/message bits every serialized query
// carries so failure responses can be recognized.
const envelopeBits = uint64(1<<14 | 1<<15)

func TestConfig_Presets(t *testing.T) {
	if got := ipapi.EmptyConfig().Fields(); got != 0 {
		t.Errorf("empty config should select nothing, got %s", got)
	}

	minimum := ipapi.MinimumConfig()
	expMin := []ipapi.Field{
		ipapi.FieldCountry, ipapi.FieldRegion, ipapi.FieldCity,
		ipapi.FieldLat, ipapi.FieldLon, ipapi.FieldISP,
	}
	for _, f := range expMin {
		if !minimum.Has(f) {
			t.Errorf("minimum config should include %s", f)
		}
	}
	for _, f := range []ipapi.Field{ipapi.FieldCurrency, ipapi.FieldReverse, ipapi.FieldProxy} {
		if minimum.Has(f) {
			t.Errorf("minimum config should not include %s", f)
		}
	}

	maximum := ipapi.MaximumConfig()
	all := []ipapi.Field{
		ipapi.FieldCountry, ipapi.FieldCountryCode, ipapi.FieldRegion,
		ipapi.FieldRegionName, ipapi.FieldCity, ipapi.FieldZip,
		ipapi.FieldLat, ipapi.FieldLon, ipapi.FieldTimezone,
		ipapi.FieldISP, ipapi.FieldOrg, ipapi.FieldAS,
		ipapi.FieldReverse, ipapi.FieldQuery, ipapi.FieldMobile,
		ipapi.FieldProxy, ipapi.FieldDistrict, ipapi.FieldContinent,
		ipapi.FieldContinentCode, ipapi.FieldASName, ipapi.FieldCurrency,
		ipapi.FieldHosting, ipapi.FieldOffset,
	}
	for _, f := range all {
		if !maximum.Has(f) {
			t.Errorf("maximum config should include %s", f)
		}
	}
}

func TestConfig_IncludeExcludeLastWriteWins(t *testing.T) {
	cfg := ipapi.EmptyConfig()

	cfg = cfg.Include(ipapi.FieldCountry)
	if !cfg.Has(ipapi.FieldCountry) {
		t.Error("country should be included after Include")
	}

	cfg = cfg.Exclude(ipapi.FieldCountry)
	if cfg.Has(ipapi.FieldCountry) {
		t.Error("country should be excluded after Exclude")
	}

	// Repetition is idempotent.
	cfg = cfg.Include(ipapi.FieldCountry).Include(ipapi.FieldCountry)
	if !cfg.Has(ipapi.FieldCountry) {
		t.Error("repeated Include should leave country included")
	}

	cfg = cfg.Exclude(ipapi.FieldISP).Exclude(ipapi.FieldISP)
	if cfg.Has(ipapi.FieldISP) {
		t.Error("repeated Exclude should leave isp excluded")
	}
}

func TestConfig_ValueSemantics(t *testing.T) {
	base := ipapi.EmptyConfig().Include(ipapi.FieldCountry)

	derived := base.Include(ipapi.FieldCurrency)

	if base.Has(ipapi.FieldCurrency) {
		t.Error("mutating the derived config must not change the base config")
	}
	if !derived.Has(ipapi.FieldCountry) || !derived.Has(ipapi.FieldCurrency) {
		t.Error("derived config should carry both fields")
	}
}

func TestConfig_QueryExactFields(t *testing.T) {
	cfg := ipapi.EmptyConfig().
		Include(ipapi.FieldCountry).
		Include(ipapi.FieldCurrency)

	q := cfg.Query()

	exp := strconv.FormatUint(uint64(ipapi.FieldCountry|ipapi.FieldCurrency)|envelopeBits, 10)
	if got := q.Get("fields"); got != exp {
		t.Errorf("expected fields=%s, got fields=%s", exp, got)
	}
	if q.Has("lang") {
		t.Errorf("default language should omit lang, got lang=%s", q.Get("lang"))
	}
}

func TestConfig_QueryMaximum(t *testing.T) {
	q := ipapi.MaximumConfig().Query()

	exp := strconv.FormatUint(uint64(ipapi.MaximumConfig().Fields())|envelopeBits, 10)
	if got := q.Get("fields"); got != exp {
		t.Errorf("expected fields=%s, got fields=%s", exp, got)
	}

	// Every selectable field must survive serialization.
	bits, err := strconv.ParseUint(q.Get("fields"), 10, 32)
	if err != nil {
		t.Fatalf("fields param is not numeric: %v", err)
	}
	for _, f := range []ipapi.Field{ipapi.FieldCountry, ipapi.FieldOffset, ipapi.FieldHosting} {
		if bits&uint64(f) == 0 {
			t.Errorf("maximum query should carry %s", f)
		}
	}
}

func TestConfig_LanguageLastWriteWins(t *testing.T) {
	cfg := ipapi.EmptyConfig().
		WithLanguage(ipapi.LangDE).
		WithLanguage(ipapi.LangEN)

	if q := cfg.Query(); q.Has("lang") {
		t.Errorf("english is the remote default and should omit lang, got lang=%s", q.Get("lang"))
	}

	cfg = cfg.WithLanguage(ipapi.LangPtBR)
	if got := cfg.Query().Get("lang"); got != "pt-BR" {
		t.Errorf("expected lang=pt-BR, got lang=%s", got)
	}
}

func TestField_String(t *testing.T) {
	got := (ipapi.FieldCountry | ipapi.FieldCurrency | ipapi.FieldISP).String()
	if got != "country|isp|currency" {
		t.Errorf("expected country|isp|currency, got %s", got)
	}

	if got := ipapi.Field(0).String(); got != "" {
		t.Errorf("expected empty string for empty set, got %q", got)
	}
}
