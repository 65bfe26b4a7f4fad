package geo

import (
	"net"

	"github.com/charmbracelet/log"
	"github.com/oschwald/geoip2-golang"
)

// Resolver maps origin addresses to ISO country codes for the admin view.
// It degrades to "N/A" whenever the database is missing or an address does
// not parse; the guestbook never depends on it.
type Resolver struct {
	db *geoip2.Reader
}

func NewResolver(path string) *Resolver {
	if path == "" {
		return &Resolver{}
	}

	db, err := geoip2.Open(path)
	if err != nil {
		log.Warn("GeoLite database unavailable, country lookups disabled", "path", path, "error", err)
		return &Resolver{}
	}
	return &Resolver{db: db}
}

func (r *Resolver) CountryCode(ipAddress string) string {
	if r == nil || r.db == nil {
		return "N/A"
	}

	ip := net.ParseIP(ipAddress)
	if ip == nil {
		return "N/A"
	}

	record, err := r.db.Country(ip)
	if err != nil || record.Country.IsoCode == "" {
		return "N/A"
	}
	return record.Country.IsoCode
}

func (r *Resolver) Close() {
	if r != nil && r.db != nil {
		_ = r.db.Close()
	}
}
