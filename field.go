package ipapi

import "strings"

// Field identifies one selectable response attribute as a bit in the
// numeric `fields` query parameter the remote API understands. The bit
// values are fixed by the API documentation and must not be renumbered.
type Field uint32

const (
	FieldCountry       Field = 1 << 0
	FieldCountryCode   Field = 1 << 1
	FieldRegion        Field = 1 << 2
	FieldRegionName    Field = 1 << 3
	FieldCity          Field = 1 << 4
	FieldZip           Field = 1 << 5
	FieldLat           Field = 1 << 6
	FieldLon           Field = 1 << 7
	FieldTimezone      Field = 1 << 8
	FieldISP           Field = 1 << 9
	FieldOrg           Field = 1 << 10
	FieldAS            Field = 1 << 11
	FieldReverse       Field = 1 << 12
	FieldQuery         Field = 1 << 13
	FieldMobile        Field = 1 << 16
	FieldProxy         Field = 1 << 17
	FieldDistrict      Field = 1 << 19
	FieldContinent     Field = 1 << 20
	FieldContinentCode Field = 1 << 21
	FieldASName        Field = 1 << 22
	FieldCurrency      Field = 1 << 23
	FieldHosting       Field = 1 << 24
	FieldOffset        Field = 1 << 25
)

// The status/message envelope is requested on every call so that
// failure responses can be recognized. These bits are not part of the
// selectable surface.
const (
	fieldStatus  Field = 1 << 14
	fieldMessage Field = 1 << 15

	fieldEnvelope = fieldStatus | fieldMessage
)

// fieldAll is every selectable field, the membership of [MaximumConfig].
const fieldAll = FieldCountry | FieldCountryCode | FieldRegion | FieldRegionName |
	FieldCity | FieldZip | FieldLat | FieldLon | FieldTimezone | FieldISP |
	FieldOrg | FieldAS | FieldReverse | FieldQuery | FieldMobile | FieldProxy |
	FieldDistrict | FieldContinent | FieldContinentCode | FieldASName |
	FieldCurrency | FieldHosting | FieldOffset

// fieldNames is ordered by bit position for a stable String rendering.
var fieldNames = []struct {
	field Field
	name  string
}{
	{FieldCountry, "country"},
	{FieldCountryCode, "countryCode"},
	{FieldRegion, "region"},
	{FieldRegionName, "regionName"},
	{FieldCity, "city"},
	{FieldZip, "zip"},
	{FieldLat, "lat"},
	{FieldLon, "lon"},
	{FieldTimezone, "timezone"},
	{FieldISP, "isp"},
	{FieldOrg, "org"},
	{FieldAS, "as"},
	{FieldReverse, "reverse"},
	{FieldQuery, "query"},
	{FieldMobile, "mobile"},
	{FieldProxy, "proxy"},
	{FieldDistrict, "district"},
	{FieldContinent, "continent"},
	{FieldContinentCode, "continentCode"},
	{FieldASName, "asname"},
	{FieldCurrency, "currency"},
	{FieldHosting, "hosting"},
	{FieldOffset, "offset"},
}

// String renders the set as a pipe-separated list of the remote API's
// JSON key names, e.g. "country|currency". Envelope bits are omitted.
func (f Field) String() string {
	var names []string
	for _, fn := range fieldNames {
		if f&fn.field != 0 {
			names = append(names, fn.name)
		}
	}

	return strings.Join(names, "|")
}
