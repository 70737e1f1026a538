package catalog

import "snabbit/models"

// seedServices returns the fixed 12-service catalog.
func seedServices() []models.Service {
	return []models.Service{
		{ID: 1, Name: "Tech Support", Icon: "💻", BasePrice: 40, DurationRange: "30-60 min", Category: "Technology", EmergencyEligible: true, Description: "Computer repairs, software issues, setup"},
		{ID: 2, Name: "Furniture Assembly", Icon: "🔧", BasePrice: 50, DurationRange: "45-90 min", Category: "Home", EmergencyEligible: false, Description: "IKEA, furniture setup, mounting"},
		{ID: 3, Name: "House Cleaning", Icon: "🧹", BasePrice: 35, DurationRange: "60-120 min", Category: "Home", EmergencyEligible: false, Description: "Deep cleaning, regular maintenance"},
		{ID: 4, Name: "Delivery Service", Icon: "📦", BasePrice: 25, DurationRange: "15-45 min", Category: "Logistics", EmergencyEligible: true, Description: "Same-day delivery, pickup service"},
		{ID: 5, Name: "Pet Care", Icon: "🐕", BasePrice: 30, DurationRange: "30-90 min", Category: "Pet Services", EmergencyEligible: true, Description: "Walking, sitting, emergency care"},
		{ID: 6, Name: "Tutoring", Icon: "📚", BasePrice: 45, DurationRange: "45-90 min", Category: "Education", EmergencyEligible: false, Description: "Academic help, test prep, languages"},
		{ID: 7, Name: "Plumbing", Icon: "🔧", BasePrice: 60, DurationRange: "30-120 min", Category: "Home", EmergencyEligible: true, Description: "Leaks, repairs, installations"},
		{ID: 8, Name: "Electrical Work", Icon: "⚡", BasePrice: 70, DurationRange: "30-90 min", Category: "Home", EmergencyEligible: true, Description: "Wiring, outlets, lighting"},
		{ID: 9, Name: "Locksmith", Icon: "🔐", BasePrice: 80, DurationRange: "15-30 min", Category: "Security", EmergencyEligible: true, Description: "24/7 lockout service, key cutting"},
		{ID: 10, Name: "Car Help", Icon: "🚗", BasePrice: 90, DurationRange: "30-60 min", Category: "Automotive", EmergencyEligible: true, Description: "Jump start, flat tire, towing"},
		{ID: 11, Name: "Photography", Icon: "📸", BasePrice: 100, DurationRange: "60-180 min", Category: "Creative", EmergencyEligible: false, Description: "Events, portraits, product photos"},
		{ID: 12, Name: "Moving Help", Icon: "📦", BasePrice: 40, DurationRange: "120-240 min", Category: "Logistics", EmergencyEligible: false, Description: "Packing, loading, small moves"},
	}
}

// seedHelpers returns the fixed helper profiles.
func seedHelpers() []models.HelperProfile {
	return []models.HelperProfile{
		{
			ID: 1, Name: "Sarah Johnson", Rating: 4.9, DistanceMiles: 0.3, HourlyPrice: 45,
			ArrivalMinutes: 12, Avatar: "👩", Skills: []string{"Tech Support", "Tutoring"},
			ReviewCount: 127, Coordinates: &models.LatLng{Lat: 40.7580, Lng: -73.9855},
			IsAvailable: true, Phone: "+1-555-0123", Verified: true,
			Badges:    []string{"Fast Response", "Top Rated"},
			Languages: []string{"English", "Spanish"},
			ResponseMinutes: 5, EmergencyCapable: true, CompletedJobs: 234, JoinedDate: "2023-01-15",
		},
		{
			ID: 2, Name: "Mike Chen", Rating: 4.8, DistanceMiles: 0.5, HourlyPrice: 50,
			ArrivalMinutes: 15, Avatar: "👨", Skills: []string{"Furniture Assembly", "Delivery Service", "Moving Help"},
			ReviewCount: 89, Coordinates: &models.LatLng{Lat: 40.7595, Lng: -73.9845},
			IsAvailable: true, Phone: "+1-555-0124", Verified: true,
			Badges:    []string{"Reliable", "Strong Helper"},
			Languages: []string{"English", "Mandarin"},
			ResponseMinutes: 8, EmergencyCapable: false, CompletedJobs: 156, JoinedDate: "2023-03-22",
		},
		{
			ID: 3, Name: "Lisa Rodriguez", Rating: 4.9, DistanceMiles: 0.7, HourlyPrice: 35,
			ArrivalMinutes: 10, Avatar: "👩‍🦱", Skills: []string{"House Cleaning", "Pet Care"},
			ReviewCount: 156, Coordinates: &models.LatLng{Lat: 40.7600, Lng: -73.9840},
			IsAvailable: true, Phone: "+1-555-0125", Verified: true,
			Badges:    []string{"Super Clean", "Pet Lover"},
			Languages: []string{"English", "Spanish"},
			ResponseMinutes: 3, EmergencyCapable: true, CompletedJobs: 289, JoinedDate: "2022-11-10",
		},
		{
			ID: 4, Name: "David Kim", Rating: 4.7, DistanceMiles: 1.1, HourlyPrice: 60,
			ArrivalMinutes: 18, Avatar: "👨‍💼", Skills: []string{"Plumbing", "Electrical Work"},
			ReviewCount: 73, Coordinates: &models.LatLng{Lat: 40.7620, Lng: -73.9820},
			IsAvailable: true, Phone: "+1-555-0126", Verified: true,
			Badges:    []string{"Licensed Pro", "Emergency Ready"},
			Languages: []string{"English", "Korean"},
			ResponseMinutes: 12, EmergencyCapable: true, CompletedJobs: 98, JoinedDate: "2023-06-01",
		},
		{
			ID: 5, Name: "Priya Patel", Rating: 4.6, DistanceMiles: 2.4, HourlyPrice: 55,
			ArrivalMinutes: 25, Avatar: "👩‍🔧", Skills: []string{"Locksmith", "Car Help"},
			ReviewCount: 64, Coordinates: &models.LatLng{Lat: 40.7510, Lng: -73.9900},
			IsAvailable: true, Phone: "+1-555-0127", Verified: true,
			Badges:    []string{"Emergency Ready"},
			Languages: []string{"English", "Hindi"},
			ResponseMinutes: 7, EmergencyCapable: true, CompletedJobs: 112, JoinedDate: "2023-08-19",
		},
		{
			ID: 6, Name: "Tom Walker", Rating: 4.5, DistanceMiles: 6.2, HourlyPrice: 30,
			ArrivalMinutes: 40, Avatar: "🧔", Skills: []string{"Photography", "Tech Support"},
			ReviewCount: 41, Coordinates: &models.LatLng{Lat: 40.7100, Lng: -74.0100},
			IsAvailable: true, Phone: "+1-555-0128", Verified: false,
			Languages: []string{"English"},
			ResponseMinutes: 20, EmergencyCapable: false, CompletedJobs: 57, JoinedDate: "2024-02-03",
		},
		{
			ID: 7, Name: "Ana Costa", Rating: 4.8, DistanceMiles: 1.8, HourlyPrice: 42,
			ArrivalMinutes: 22, Avatar: "👩‍🏫", Skills: []string{"Tutoring", "House Cleaning"},
			ReviewCount: 95, Coordinates: &models.LatLng{Lat: 40.7550, Lng: -73.9700},
			IsAvailable: false, Phone: "+1-555-0129", Verified: true,
			Badges:    []string{"Top Rated"},
			Languages: []string{"English", "Portuguese"},
			ResponseMinutes: 6, EmergencyCapable: false, CompletedJobs: 178, JoinedDate: "2023-05-27",
		},
	}
}
