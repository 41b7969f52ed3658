package domain

import "strings"

// A point of interest at a destination. Static catalog data.
type Attraction struct {
	ID              string
	Name            string
	Price           int
	DurationMinutes int
	Tags            []string
}

// A dining option at a destination. Static catalog data.
type Restaurant struct {
	Name  string
	Price int
	Tags  []string
}

// Catalog is an immutable snapshot of the reference data: destinations,
// their attractions and restaurants, and display labels.
//
// It is loaded once at startup and shared across concurrent planning calls;
// nothing mutates it after construction.
type Catalog struct {
	locations   []Location
	labels      map[string]string
	attractions map[string][]Attraction
	restaurants map[string][]Restaurant
}

func NewCatalog(
	locations []Location,
	attractions map[string][]Attraction,
	restaurants map[string][]Restaurant,
) *Catalog {
	labels := make(map[string]string, len(locations))
	for _, loc := range locations {
		labels[loc.Key] = loc.Label
	}

	return &Catalog{
		locations:   locations,
		labels:      labels,
		attractions: attractions,
		restaurants: restaurants,
	}
}

// Destinations returns all catalog locations in declaration order.
func (c *Catalog) Destinations() []Location {
	out := make([]Location, len(c.locations))
	copy(out, c.locations)
	return out
}

// HasLocation reports whether key is a known catalog location.
func (c *Catalog) HasLocation(key string) bool {
	_, ok := c.labels[key]
	return ok
}

// Attractions returns the attraction list for a location in declaration
// order. Unknown locations yield an empty list.
func (c *Catalog) Attractions(location string) []Attraction {
	src := c.attractions[location]
	out := make([]Attraction, len(src))
	copy(out, src)
	return out
}

// Restaurants returns the restaurant list for a location in declaration
// order. Unknown locations yield an empty list.
func (c *Catalog) Restaurants(location string) []Restaurant {
	src := c.restaurants[location]
	out := make([]Restaurant, len(src))
	copy(out, src)
	return out
}

// SelectAttraction picks the attraction to visit at a location.
//
// When interests is non-empty the list is narrowed to attractions sharing at
// least one tag; an empty filtered list means no pick at all, the filter is
// never relaxed back to the full catalog. Among candidates the first entry
// in declaration order wins, so selection is deterministic.
func (c *Catalog) SelectAttraction(location string, interests []string) (Attraction, bool) {
	candidates := c.attractions[location]

	if len(interests) > 0 {
		wanted := make(map[string]struct{}, len(interests))
		for _, i := range interests {
			wanted[i] = struct{}{}
		}

		filtered := make([]Attraction, 0, len(candidates))
		for _, a := range candidates {
			for _, tag := range a.Tags {
				if _, ok := wanted[tag]; ok {
					filtered = append(filtered, a)
					break
				}
			}
		}
		candidates = filtered
	}

	if len(candidates) == 0 {
		return Attraction{}, false
	}
	return candidates[0], true
}

// SelectRestaurant picks where to eat at a location: the first restaurant in
// declaration order. Dining is not filtered by interest.
func (c *Catalog) SelectRestaurant(location string) (Restaurant, bool) {
	list := c.restaurants[location]
	if len(list) == 0 {
		return Restaurant{}, false
	}
	return list[0], true
}

// Label returns the display label for a location key. Unknown keys fall back
// to a title-cased rendering of the key itself ("new_york" -> "New York").
func (c *Catalog) Label(key string) string {
	if label, ok := c.labels[key]; ok {
		return label
	}

	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
