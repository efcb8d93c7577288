package utils

import "fmt"

// BuildMapsLink returns a Google Maps search link for nearby e-waste
// recycling centres, centred on the caller's coordinates when available
func BuildMapsLink(lat, lng *float64) string {
	if lat != nil && lng != nil {
		return fmt.Sprintf("https://www.google.com/maps/search/e-waste+recycling+centre/@%v,%v,14z", *lat, *lng)
	}
	return "https://www.google.com/maps/search/e-waste+recycling+centre+near+me"
}
