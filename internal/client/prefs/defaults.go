package prefs

import "github.com/ifti227i/RideShareX/internal/client/models"

func defaultLocations() []models.SavedLocation {
	return []models.SavedLocation{
		{ID: "1", Name: "Home", Address: "123 Home Street, Dhanmondi", Icon: "🏠"},
		{ID: "2", Name: "Work", Address: "456 Office Avenue, Gulshan", Icon: "🏢"},
		{ID: "3", Name: "Gym", Address: "789 Fitness Road, Banani", Icon: "🏋️"},
	}
}

func defaultPayments() []models.PaymentMethod {
	return []models.PaymentMethod{
		{ID: "1", Type: models.PaymentCard, Name: "Personal Visa", Number: "****-****-****-4821", Expiry: "09/26"},
		{ID: "2", Type: models.PaymentMobile, Name: "bKash", Number: "****5738", Expiry: models.NoExpiry},
	}
}

func defaultRides() []models.RideRecord {
	rating := func(n int) *int { return &n }
	return []models.RideRecord{
		{ID: "1", From: "Dhanmondi", To: "Airport", Date: "2025-08-15", Price: "৳350", Rating: rating(5)},
		{ID: "2", From: "Gulshan", To: "Mirpur", Date: "2025-08-10", Price: "৳220", Rating: rating(4)},
		{ID: "3", From: "Uttara", To: "Farmgate", Date: "2025-08-05", Price: "৳280", Rating: rating(5)},
		{ID: "4", From: "Banani", To: "Gulshan", Date: "2025-07-30", Price: "৳150", Rating: rating(3)},
		{ID: "5", From: "Mohakhali", To: "Dhanmondi", Date: "2025-07-25", Price: "৳200", Rating: rating(4)},
	}
}
