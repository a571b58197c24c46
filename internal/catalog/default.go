// file: internal/catalog/default.go
// version: 1.0.0
// guid: 1c3e5a7b-9d0f-42a4-86b8-e0f2c4d6a8b0

package catalog

import "github.com/thriftpick/thriftpick/internal/models"

// DefaultSource labels catalogs built from the built-in inventory.
const DefaultSource = "default inventory"

// Default returns the built-in starter inventory used when no catalog
// file is available.
func Default() *Catalog {
	return New(defaultItems(), DefaultSource)
}

func defaultItems() []models.Item {
	return []models.Item{
		{
			ID:          "TS001",
			Name:        "Vintage Denim Jacket",
			Category:    "Outerwear",
			Color:       "Blue",
			Style:       "Vintage",
			Season:      []string{"Spring", "Fall"},
			Material:    "Denim",
			Occasion:    []string{"Casual", "Streetwear"},
			Gender:      "Unisex",
			Size:        "M",
			Condition:   "Good",
			Price:       24.99,
			Description: "Classic 90s denim jacket with minor distressing for that authentic look.",
		},
		{
			ID:          "TS002",
			Name:        "Floral Summer Dress",
			Category:    "Dress",
			Color:       "Multicolor",
			Style:       "Bohemian",
			Season:      []string{"Summer", "Spring"},
			Material:    "Cotton",
			Occasion:    []string{"Casual", "Daytime"},
			Gender:      "Women",
			Size:        "S",
			Condition:   "Excellent",
			Price:       18.50,
			Description: "Light and airy sundress with a delicate floral pattern.",
		},
		{
			ID:          "TS003",
			Name:        "Wool Peacoat",
			Category:    "Outerwear",
			Color:       "Navy",
			Style:       "Classic",
			Season:      []string{"Winter", "Fall"},
			Material:    "Wool",
			Occasion:    []string{"Formal", "Work"},
			Gender:      "Men",
			Size:        "L",
			Condition:   "Very Good",
			Price:       35.00,
			Description: "Warm wool peacoat perfect for cold weather, with original buttons.",
		},
		{
			ID:          "TS004",
			Name:        "Graphic Band T-Shirt",
			Category:    "Top",
			Color:       "Black",
			Style:       "Rock",
			Season:      []string{"All"},
			Material:    "Cotton",
			Occasion:    []string{"Casual", "Concert"},
			Gender:      "Unisex",
			Size:        "M",
			Condition:   "Good",
			Price:       12.99,
			Description: "Faded vintage rock band t-shirt with original tour dates.",
		},
		{
			ID:          "TS005",
			Name:        "High-Waisted Jeans",
			Category:    "Bottoms",
			Color:       "Light Blue",
			Style:       "Retro",
			Season:      []string{"All"},
			Material:    "Denim",
			Occasion:    []string{"Casual", "Everyday"},
			Gender:      "Women",
			Size:        "28",
			Condition:   "Excellent",
			Price:       22.50,
			Description: "Classic high-waisted mom jeans with a relaxed fit.",
		},
		{
			ID:          "TS006",
			Name:        "Leather Biker Jacket",
			Category:    "Outerwear",
			Color:       "Black",
			Style:       "Edgy",
			Season:      []string{"Fall", "Winter"},
			Material:    "Leather",
			Occasion:    []string{"Night Out", "Casual"},
			Gender:      "Unisex",
			Size:        "M",
			Condition:   "Very Good",
			Price:       45.00,
			Description: "Genuine leather biker jacket with silver hardware and minimal wear.",
		},
		{
			ID:          "TS007",
			Name:        "Plaid Flannel Shirt",
			Category:    "Top",
			Color:       "Red",
			Style:       "Grunge",
			Season:      []string{"Fall", "Winter"},
			Material:    "Cotton",
			Occasion:    []string{"Casual", "Outdoor"},
			Gender:      "Unisex",
			Size:        "L",
			Condition:   "Good",
			Price:       14.50,
			Description: "Soft and worn-in flannel with a classic red plaid pattern.",
		},
		{
			ID:          "TS008",
			Name:        "Knit Sweater",
			Category:    "Top",
			Color:       "Cream",
			Style:       "Cozy",
			Season:      []string{"Winter", "Fall"},
			Material:    "Wool Blend",
			Occasion:    []string{"Casual", "Holiday"},
			Gender:      "Unisex",
			Size:        "XL",
			Condition:   "Very Good",
			Price:       19.99,
			Description: "Chunky knit sweater perfect for staying warm on cold days.",
		},
		{
			ID:          "TS009",
			Name:        "Silk Blouse",
			Category:    "Top",
			Color:       "Emerald",
			Style:       "Elegant",
			Season:      []string{"Spring", "Summer", "Fall"},
			Material:    "Silk",
			Occasion:    []string{"Work", "Formal"},
			Gender:      "Women",
			Size:        "M",
			Condition:   "Excellent",
			Price:       25.00,
			Description: "Luxurious silk blouse with subtle button details and a flowing fit.",
		},
		{
			ID:          "TS010",
			Name:        "Cargo Shorts",
			Category:    "Bottoms",
			Color:       "Khaki",
			Style:       "Casual",
			Season:      []string{"Summer"},
			Material:    "Cotton",
			Occasion:    []string{"Casual", "Outdoor"},
			Gender:      "Men",
			Size:        "32",
			Condition:   "Good",
			Price:       16.50,
			Description: "Durable cargo shorts with multiple pockets, perfect for summer adventures.",
		},
		{
			ID:          "TS011",
			Name:        "Velvet Evening Gown",
			Category:    "Dress",
			Color:       "Burgundy",
			Style:       "Formal",
			Season:      []string{"Winter", "Fall"},
			Material:    "Velvet",
			Occasion:    []string{"Formal", "Party"},
			Gender:      "Women",
			Size:        "M",
			Condition:   "Excellent",
			Price:       42.00,
			Description: "Stunning floor-length velvet gown perfect for special occasions.",
		},
		{
			ID:          "TS012",
			Name:        "Corduroy Button-Down Shirt",
			Category:    "Top",
			Color:       "Mustard",
			Style:       "Vintage",
			Season:      []string{"Fall", "Winter"},
			Material:    "Corduroy",
			Occasion:    []string{"Casual", "Work"},
			Gender:      "Unisex",
			Size:        "S",
			Condition:   "Very Good",
			Price:       18.75,
			Description: "Soft corduroy shirt with a retro 70s feel in a warm mustard tone.",
		},
		{
			ID:          "TS013",
			Name:        "Leather Cowboy Boots",
			Category:    "Footwear",
			Color:       "Brown",
			Style:       "Western",
			Season:      []string{"All"},
			Material:    "Leather",
			Occasion:    []string{"Casual", "Festival"},
			Gender:      "Unisex",
			Size:        "9",
			Condition:   "Good",
			Price:       29.99,
			Description: "Authentic vintage cowboy boots with natural wear that adds character.",
		},
		{
			ID:          "TS014",
			Name:        "Linen Blazer",
			Category:    "Outerwear",
			Color:       "Beige",
			Style:       "Smart Casual",
			Season:      []string{"Spring", "Summer"},
			Material:    "Linen",
			Occasion:    []string{"Work", "Semi-formal"},
			Gender:      "Men",
			Size:        "M",
			Condition:   "Very Good",
			Price:       32.00,
			Description: "Lightweight linen blazer, perfect for warm weather formal occasions.",
		},
		{
			ID:          "TS015",
			Name:        "Beaded Clutch Purse",
			Category:    "Accessory",
			Color:       "Silver",
			Style:       "Vintage Glamour",
			Season:      []string{"All"},
			Material:    "Beads & Satin",
			Occasion:    []string{"Formal", "Party"},
			Gender:      "Women",
			Size:        "One Size",
			Condition:   "Excellent",
			Price:       23.50,
			Description: "Elegant vintage clutch with intricate beadwork, perfect for special occasions.",
		},
	}
}
