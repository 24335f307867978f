package constants

import "strings"

// Daftar lengkap storefront KDP yang dikenal sistem. Set ini tertutup;
// subset yang aktif dikontrol lewat env PUBLICATION_MARKETS (configs).
var KnownMarkets = map[string]string{
	"US": "amazon.com",
	"UK": "amazon.co.uk",
	"DE": "amazon.de",
	"FR": "amazon.fr",
	"ES": "amazon.es",
	"IT": "amazon.it",
	"NL": "amazon.nl",
	"JP": "amazon.co.jp",
	"BR": "amazon.com.br",
	"CA": "amazon.ca",
	"MX": "amazon.com.mx",
	"AU": "amazon.com.au",
	"IN": "amazon.in",
}

func IsKnownMarket(code string) bool {
	_, ok := KnownMarkets[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

func NormalizeMarket(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
