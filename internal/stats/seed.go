package stats

// Seed returns the built-in sample statistics shown when no data is configured.
func Seed() []Record {
	return []Record{
		{
			ID:         "1",
			Title:      "Total Sales",
			Value:      "$24.5K",
			Subtitle:   "This month",
			Icon:       "trending-up",
			IconColor:  "#2ECC71",
			Trend:      TrendUp,
			TrendValue: "+12%",
		},
		{
			ID:         "2",
			Title:      "New Users",
			Value:      "1,234",
			Subtitle:   "This week",
			Icon:       "people",
			IconColor:  "#3498DB",
			Trend:      TrendUp,
			TrendValue: "+8%",
		},
		{
			ID:         "3",
			Title:      "Orders",
			Value:      "456",
			Subtitle:   "Today",
			Icon:       "shopping-cart",
			IconColor:  "#9B59B6",
			Trend:      TrendDown,
			TrendValue: "-3%",
		},
		{
			ID:         "4",
			Title:      "Revenue",
			Value:      "$12.3K",
			Subtitle:   "This week",
			Icon:       "attach-money",
			IconColor:  "#E67E22",
			Trend:      TrendUp,
			TrendValue: "+15%",
		},
	}
}
