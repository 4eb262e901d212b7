package catalog

import "github.com/cliqtrix/consulting-chatbot/internal/models"

// Seeded at startup, never mutated.
var services = []models.Service{
	{ID: 1, Name: "Medical Consultation", Duration: 30, Price: 500},
	{ID: 2, Name: "Business Advisory", Duration: 60, Price: 1000},
	{ID: 3, Name: "Legal Consultation", Duration: 45, Price: 750},
	{ID: 4, Name: "Financial Planning", Duration: 60, Price: 1200},
}

// All returns the full service catalog.
func All() []models.Service {
	out := make([]models.Service, len(services))
	copy(out, services)
	return out
}

// Find looks a service up by its catalog id.
func Find(id int) (models.Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return models.Service{}, false
}
