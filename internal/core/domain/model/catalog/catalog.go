// Package catalog lists the errand categories a customer can order.
package catalog

import "strings"

// OthersID is the fallback category for custom pickups and unknown ids.
const OthersID = "others"

// Service is one entry of the category catalog.
type Service struct {
	ID          string
	Name        string
	Description string
}

// IsOthers reports whether this is the free-form fallback category.
func (s Service) IsOthers() bool {
	return s.ID == OthersID
}

var services = []Service{
	{ID: "medicines", Name: "Medicines", Description: "Pharmacy pickups"},
	{ID: "household", Name: "Household Items", Description: "Groceries & more"},
	{ID: "documents", Name: "Documents & Files", Description: "Safe paper delivery"},
	{ID: "stationery", Name: "Stationery", Description: "Office/School supplies"},
	{ID: OthersID, Name: "Others", Description: "Custom pickups"},
}

// All returns the catalog in display order.
func All() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

// Others returns the fallback entry.
func Others() Service {
	return services[len(services)-1]
}

// Lookup finds a category by id, ignoring case. Unknown or empty ids resolve
// to Others, and the boolean reports whether the id was recognised.
func Lookup(id string) (Service, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return Others(), false
}
