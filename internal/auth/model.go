package auth

// User is the diner account entity. FavoriteCuisines feeds the discovery
// ranking; City pre-selects the city filter on the client.
type User struct {
	ID               string
	Name             string
	Email            string
	Password         string
	City             string
	FavoriteCuisines []string
	PhotoURL         string
}
