// Package geo places dashboard location buckets on a map using a static
// city and country table.
//
// Matching is best effort: a location matches the first entry whose name is
// equal to it, contains it, or is contained in it. A location such as
// "London, Ontario" therefore lands on London, UK.
package geo

import (
	"strings"

	"backoffice/internal/model"
)

// Globe is the flag shown for locations that match nothing.
const Globe = "🌍"

// Center is the map position used for unmatched locations.
var Center = Coordinate{Lat: 20, Lng: 0}

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Pin is a location bucket resolved to a map position.
type Pin struct {
	Location string     `json:"location"`
	Count    int64      `json:"count"`
	Position Coordinate `json:"position"`
	Flag     string     `json:"flag"`
	Matched  bool       `json:"matched"`
}

type place struct {
	name     string
	position Coordinate
	country  string
}

type country struct {
	name     string
	flag     string
	position Coordinate
}

// Cities are checked before countries, in slice order.
var cities = []place{
	{"addis ababa", Coordinate{9.03, 38.74}, "ethiopia"},
	{"bahir dar", Coordinate{11.59, 37.39}, "ethiopia"},
	{"gondar", Coordinate{12.6, 37.47}, "ethiopia"},
	{"hawassa", Coordinate{7.06, 38.48}, "ethiopia"},
	{"mekelle", Coordinate{13.5, 39.47}, "ethiopia"},
	{"dire dawa", Coordinate{9.6, 41.85}, "ethiopia"},
	{"london", Coordinate{51.51, -0.13}, "united kingdom"},
	{"washington", Coordinate{38.91, -77.04}, "united states"},
	{"seattle", Coordinate{47.61, -122.33}, "united states"},
	{"minneapolis", Coordinate{44.98, -93.27}, "united states"},
	{"atlanta", Coordinate{33.75, -84.39}, "united states"},
	{"dallas", Coordinate{32.78, -96.8}, "united states"},
	{"los angeles", Coordinate{34.05, -118.24}, "united states"},
	{"new york", Coordinate{40.71, -74.01}, "united states"},
	{"toronto", Coordinate{43.65, -79.38}, "canada"},
	{"calgary", Coordinate{51.05, -114.07}, "canada"},
	{"dubai", Coordinate{25.2, 55.27}, "united arab emirates"},
	{"riyadh", Coordinate{24.71, 46.68}, "saudi arabia"},
	{"jeddah", Coordinate{21.49, 39.19}, "saudi arabia"},
	{"frankfurt", Coordinate{50.11, 8.68}, "germany"},
	{"berlin", Coordinate{52.52, 13.41}, "germany"},
	{"stockholm", Coordinate{59.33, 18.07}, "sweden"},
	{"oslo", Coordinate{59.91, 10.75}, "norway"},
	{"amsterdam", Coordinate{52.37, 4.9}, "netherlands"},
	{"paris", Coordinate{48.86, 2.35}, "france"},
	{"rome", Coordinate{41.9, 12.5}, "italy"},
	{"tel aviv", Coordinate{32.09, 34.78}, "israel"},
	{"nairobi", Coordinate{-1.29, 36.82}, "kenya"},
	{"johannesburg", Coordinate{-26.2, 28.05}, "south africa"},
	{"melbourne", Coordinate{-37.81, 144.96}, "australia"},
}

var countries = []country{
	{"ethiopia", "🇪🇹", Coordinate{9.15, 40.49}},
	{"united kingdom", "🇬🇧", Coordinate{55.38, -3.44}},
	{"united states", "🇺🇸", Coordinate{37.09, -95.71}},
	{"usa", "🇺🇸", Coordinate{37.09, -95.71}},
	{"canada", "🇨🇦", Coordinate{56.13, -106.35}},
	{"united arab emirates", "🇦🇪", Coordinate{23.42, 53.85}},
	{"uae", "🇦🇪", Coordinate{23.42, 53.85}},
	{"saudi arabia", "🇸🇦", Coordinate{23.89, 45.08}},
	{"germany", "🇩🇪", Coordinate{51.17, 10.45}},
	{"sweden", "🇸🇪", Coordinate{60.13, 18.64}},
	{"norway", "🇳🇴", Coordinate{60.47, 8.47}},
	{"netherlands", "🇳🇱", Coordinate{52.13, 5.29}},
	{"france", "🇫🇷", Coordinate{46.23, 2.21}},
	{"italy", "🇮🇹", Coordinate{41.87, 12.57}},
	{"israel", "🇮🇱", Coordinate{31.05, 34.85}},
	{"kenya", "🇰🇪", Coordinate{-0.02, 37.91}},
	{"south africa", "🇿🇦", Coordinate{-30.56, 22.94}},
	{"australia", "🇦🇺", Coordinate{-25.27, 133.78}},
}

func matches(location, name string) bool {
	return location == name || strings.Contains(location, name) || strings.Contains(name, location)
}

func flagFor(countryName string) string {
	for _, c := range countries {
		if c.name == countryName {
			return c.flag
		}
	}
	return Globe
}

// Locate resolves one location string. Empty and "Unknown" locations are
// never matched.
func Locate(location string) (Coordinate, string, bool) {
	key := strings.ToLower(strings.TrimSpace(location))
	if key == "" || key == "unknown" {
		return Center, Globe, false
	}

	for _, c := range cities {
		if key == c.name {
			return c.position, flagFor(c.country), true
		}
	}
	for _, c := range countries {
		if key == c.name {
			return c.position, c.flag, true
		}
	}
	for _, c := range cities {
		if matches(key, c.name) {
			return c.position, flagFor(c.country), true
		}
	}
	for _, c := range countries {
		if matches(key, c.name) {
			return c.position, c.flag, true
		}
	}
	return Center, Globe, false
}

// Pins resolves every location bucket, preserving order.
func Pins(locations []model.LocationCount) []Pin {
	pins := make([]Pin, 0, len(locations))
	for _, l := range locations {
		pos, flag, ok := Locate(l.Location)
		pins = append(pins, Pin{Location: l.Location, Count: l.Count, Position: pos, Flag: flag, Matched: ok})
	}
	return pins
}
