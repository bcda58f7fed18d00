// Package geocode resolves free-text city names against a fixed table of
// coordinates. It is a stand-in for a real geocoding service.
package geocode

import "strings"

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Fallback is used for every location missing from the table.
var Fallback = Coordinates{Latitude: 51.5074, Longitude: -0.1278}

const FallbackCity = "London"

var cities = map[string]Coordinates{
	"new york":      {40.7128, -74.0060},
	"nyc":           {40.7128, -74.0060},
	"london":        {51.5074, -0.1278},
	"paris":         {48.8566, 2.3522},
	"tokyo":         {35.6762, 139.6503},
	"sydney":        {-33.8688, 151.2093},
	"los angeles":   {34.0522, -118.2437},
	"la":            {34.0522, -118.2437},
	"chicago":       {41.8781, -87.6298},
	"melbourne":     {-37.8136, 144.9631},
	"dubai":         {25.2048, 55.2708},
	"singapore":     {1.3521, 103.8198},
	"miami":         {25.7617, -80.1918},
	"san francisco": {37.7749, -122.4194},
	"las vegas":     {36.1699, -115.1398},
	"toronto":       {43.6532, -79.3832},
	"berlin":        {52.5200, 13.4050},
	"rome":          {41.9028, 12.4964},
	"madrid":        {40.4168, -3.7038},
	"amsterdam":     {52.3676, 4.9041},
	"barcelona":     {41.3851, 2.1734},
}

// Lookup returns the coordinates for location, matched case-insensitively.
// ok is false when the fallback was used.
func Lookup(location string) (coords Coordinates, ok bool) {
	coords, ok = cities[strings.ToLower(location)]
	if !ok {
		return Fallback, false
	}

	return coords, true
}
