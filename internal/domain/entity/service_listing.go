// Package entity contains the core business objects of the project.
package entity

// ServiceListing is a bookable home-service catalog entry.
type ServiceListing struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	Photo       string  `json:"photo"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
}
