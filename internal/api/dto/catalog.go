package dto

type AttractionResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Price           int      `json:"price"`
	DurationMinutes int      `json:"duration_minutes"`
	Tags            []string `json:"tags"`
}

type RestaurantResponse struct {
	Name  string   `json:"name"`
	Price int      `json:"price"`
	Tags  []string `json:"tags"`
}

type DestinationResponse struct {
	Key         string               `json:"key"`
	Label       string               `json:"label"`
	Attractions []AttractionResponse `json:"attractions"`
	Restaurants []RestaurantResponse `json:"restaurants"`
}

type ListDestinationsResponse struct {
	Destinations []DestinationResponse `json:"destinations"`
}
