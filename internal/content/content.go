// Package content holds the static copy rendered on the informational
// pages. It changes with the venue's marketing, not with bookings.
package content

type Venue struct {
	Name      string   `json:"name"`
	Tagline   string   `json:"tagline"`
	Address   string   `json:"address"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
	Capacity  int      `json:"capacity"`
	TimeSlots []Slot   `json:"time_slots"`
	Amenities []string `json:"amenities"`
}

type Slot struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Price int64  `json:"price"`
}

type About struct {
	Heading    string   `json:"heading"`
	Story      string   `json:"story"`
	Highlights []string `json:"highlights"`
}

func VenueInfo() Venue {
	return Venue{
		Name:     "Manomangal Lawns",
		Tagline:  "Celebrate your special moments in our beautiful open-air venue",
		Address:  "Shingave Shivar, Shirpur, Maharashtra 425405",
		Phone:    "+91 9359525834",
		Email:    "bookings@manomangallawns.in",
		Capacity: 800,
		TimeSlots: []Slot{
			{Value: "morning", Label: "Morning (8:00 AM - 12:00 PM)", Price: 25000},
			{Value: "evening", Label: "Evening (4:00 PM - 10:00 PM)", Price: 35000},
			{Value: "fullday", Label: "Full Day (8:00 AM - 10:00 PM)", Price: 50000},
		},
		Amenities: []string{
			"Spacious open lawn",
			"In-house catering",
			"Decorated stage and mandap",
			"Ample parking",
			"Backup power",
		},
	}
}

func AboutInfo() About {
	return About{
		Heading: "About Manomangal Lawns",
		Story:   "A family-run lawn in Shirpur hosting weddings, receptions and corporate gatherings for over a decade.",
		Highlights: []string{
			"Up to 800 guests",
			"Three bookable time slots per day",
			"Customizable catering menus",
		},
	}
}

// EventTypes lists the choices offered on the booking form.
func EventTypes() []string {
	return []string{
		"Wedding Ceremony",
		"Reception Party",
		"Birthday Celebration",
		"Corporate Event",
		"Anniversary",
		"Other",
	}
}
