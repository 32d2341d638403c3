package catalog

import "github.com/shopspring/decimal"

// The demo fixture. IDs are assigned in insertion order, which is what the
// "newest" sort leans on.

func demoProducts() []Product {
	return []Product{
		{
			ID:            "1",
			Name:          "Premium Wireless Headphones",
			Description:   "High-quality wireless headphones with active noise cancellation and premium audio drivers for an immersive listening experience.",
			Price:         decimal.RequireFromString("299.99"),
			OriginalPrice: decimalPtr("399.99"),
			Image:         "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:      "Electronics",
			Brand:         "TechAudio",
			Rating:        decimal.RequireFromString("4.8"),
			ReviewCount:   342,
			InStock:       true,
			Features:      []string{"Active Noise Cancellation", "30-hour Battery", "Quick Charge", "Premium Materials"},
			Tags:          []string{"wireless", "premium", "music"},
		},
		{
			ID:          "2",
			Name:        "Smart Fitness Watch",
			Description: "Advanced fitness tracking watch with heart rate monitoring, GPS, and smart notifications.",
			Price:       decimal.RequireFromString("199.99"),
			Image:       "https://images.pexels.com/photos/393047/pexels-photo-393047.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    "Electronics",
			Brand:       "FitTech",
			Rating:      decimal.RequireFromString("4.6"),
			ReviewCount: 128,
			InStock:     true,
			Features:    []string{"Heart Rate Monitor", "GPS Tracking", "Water Resistant", "Smart Notifications"},
			Tags:        []string{"fitness", "smart", "health"},
		},
		{
			ID:          "3",
			Name:        "Professional Camera Lens",
			Description: "High-performance telephoto lens perfect for professional photography and videography.",
			Price:       decimal.RequireFromString("899.99"),
			Image:       "https://images.pexels.com/photos/90946/pexels-photo-90946.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    "Photography",
			Brand:       "LensMax",
			Rating:      decimal.RequireFromString("4.9"),
			ReviewCount: 89,
			InStock:     true,
			Features:    []string{"70-200mm Zoom", "Image Stabilization", "Weather Sealed", "Fast Autofocus"},
			Tags:        []string{"photography", "professional", "lens"},
		},
		{
			ID:            "4",
			Name:          "Ergonomic Office Chair",
			Description:   "Premium ergonomic office chair designed for comfort and productivity during long work sessions.",
			Price:         decimal.RequireFromString("449.99"),
			OriginalPrice: decimalPtr("599.99"),
			Image:         "https://images.pexels.com/photos/586958/pexels-photo-586958.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:      "Furniture",
			Brand:         "ComfortDesk",
			Rating:        decimal.RequireFromString("4.7"),
			ReviewCount:   256,
			InStock:       true,
			Features:      []string{"Lumbar Support", "Adjustable Height", "Breathable Mesh", "5-Year Warranty"},
			Tags:          []string{"office", "ergonomic", "comfort"},
		},
		{
			ID:          "5",
			Name:        "Wireless Gaming Mouse",
			Description: "High-precision wireless gaming mouse with customizable RGB lighting and programmable buttons.",
			Price:       decimal.RequireFromString("79.99"),
			Image:       "https://images.pexels.com/photos/2115257/pexels-photo-2115257.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    "Gaming",
			Brand:       "GamePro",
			Rating:      decimal.RequireFromString("4.5"),
			ReviewCount: 432,
			InStock:     true,
			Features:    []string{"12000 DPI", "RGB Lighting", "Programmable Buttons", "Low Latency"},
			Tags:        []string{"gaming", "wireless", "precision"},
		},
		{
			ID:          "6",
			Name:        "Bluetooth Speaker",
			Description: "Portable Bluetooth speaker with 360-degree sound and waterproof design.",
			Price:       decimal.RequireFromString("149.99"),
			Image:       "https://images.pexels.com/photos/1649771/pexels-photo-1649771.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    "Electronics",
			Brand:       "SoundWave",
			Rating:      decimal.RequireFromString("4.4"),
			ReviewCount: 198,
			InStock:     true,
			Features:    []string{"360° Sound", "Waterproof", "12-hour Battery", "Voice Assistant"},
			Tags:        []string{"portable", "waterproof", "music"},
		},
		{
			ID:          "7",
			Name:        "Smart Home Security Camera",
			Description: "AI-powered security camera with night vision, motion detection, and cloud storage.",
			Price:       decimal.RequireFromString("249.99"),
			Image:       "https://images.pexels.com/photos/2346366/pexels-photo-2346366.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    "Smart Home",
			Brand:       "SecureVision",
			Rating:      decimal.RequireFromString("4.6"),
			ReviewCount: 174,
			InStock:     true,
			Features:    []string{"4K Resolution", "Night Vision", "AI Detection", "Cloud Storage"},
			Tags:        []string{"security", "smart", "monitoring"},
		},
		{
			ID:          "8",
			Name:        "Mechanical Keyboard",
			Description: "Premium mechanical keyboard with customizable switches and RGB backlighting.",
			Price:       decimal.RequireFromString("189.99"),
			Image:       "https://images.pexels.com/photos/1772123/pexels-photo-1772123.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    "Gaming",
			Brand:       "KeyCraft",
			Rating:      decimal.RequireFromString("4.8"),
			ReviewCount: 367,
			InStock:     true,
			Features:    []string{"Mechanical Switches", "RGB Backlighting", "Programmable Keys", "USB-C"},
			Tags:        []string{"mechanical", "gaming", "customizable"},
		},
	}
}

func demoCategories() []string {
	return []string{"All", "Electronics", "Photography", "Furniture", "Gaming", "Smart Home"}
}

func demoBrands() []string {
	return []string{"All", "TechAudio", "FitTech", "LensMax", "ComfortDesk", "GamePro", "SoundWave", "SecureVision", "KeyCraft"}
}

func decimalPtr(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}
