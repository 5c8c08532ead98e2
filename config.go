package ipapi

import (
	"net/url"
	"strconv"
)

// Config accumulates which optional response attributes a lookup should
// request, and in which language. The zero value requests nothing.
//
// Config has value semantics: every method returns an updated copy, so
// callers chain by reassignment and a Config handed to a lookup is a
// private snapshot. All Config operations are pure data mutation and
// cannot fail.
type Config struct {
	fields Field
	lang   Language
}

// EmptyConfig returns a Config with no selectable fields, for building
// a selection from scratch.
func EmptyConfig() Config {
	return Config{}
}

// MinimumConfig returns a Config that requests only the important
// subset: country, region, city, lat, lon and isp.
func MinimumConfig() Config {
	return Config{
		fields: FieldCountry | FieldRegion | FieldCity | FieldLat | FieldLon | FieldISP,
	}
}

// MaximumConfig returns a Config that requests every selectable field.
func MaximumConfig() Config {
	return Config{fields: fieldAll}
}

// Include adds the given fields to the selection. Including an already
// selected field is a no-op.
func (c Config) Include(fields ...Field) Config {
	for _, f := range fields {
		c.fields |= f
	}

	return c
}

// Exclude removes the given fields from the selection. Excluding an
// unselected field is a no-op.
func (c Config) Exclude(fields ...Field) Config {
	for _, f := range fields {
		c.fields &^= f
	}

	return c
}

// WithLanguage sets the response language. Last write wins.
func (c Config) WithLanguage(lang Language) Config {
	c.lang = lang

	return c
}

// Has reports whether a field is currently selected.
func (c Config) Has(f Field) bool {
	return c.fields&f == f && f != 0
}

// Fields returns the current selection.
func (c Config) Fields() Field {
	return c.fields
}

// Query serializes the selection into the query parameters the remote
// API expects: a decimal `fields` bitmask (the selection plus the
// status/message envelope) and, for non-default languages, `lang`.
func (c Config) Query() url.Values {
	v := url.Values{}
	v.Set("fields", strconv.FormatUint(uint64(c.fields|fieldEnvelope), 10))

	if !c.lang.isDefault() {
		v.Set("lang", string(c.lang))
	}

	return v
}
