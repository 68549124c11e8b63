package catalog

// SeedVersion identifies the curated sample set below. Bump it when the set
// changes so a reseed can be distinguished from the original install.
const SeedVersion = "2"

// SeedProducts is the curated multi-image sample catalog installed on first
// boot and by the admin refresh operation.
var SeedProducts = []Product{
	{
		Name:        "Premium Cotton Kurta",
		Description: "Hand-stitched cotton kurta with intricate embroidery",
		Price:       2999,
		Category:    "Men",
		Subcategory: "Shirts",
		InStock:     true,
		Images: []string{
			"https://images.unsplash.com/photo-1583743814966-8936f5b7be1a?w=800",
			"https://images.unsplash.com/photo-1622470953794-aa9c70b0fb9d?w=800",
			"https://images.unsplash.com/photo-1626497764746-6dc36546b388?w=800",
		},
		Gsm:              "180 GSM",
		Sizes:            []string{"S", "M", "L", "XL"},
		Fabric:           "100% Cotton",
		StitchingDetails: "Hand-stitched with reinforced seams",
	},
	{
		Name:        "Silk Designer Saree",
		Description: "Elegant silk saree with traditional patterns",
		Price:       5999,
		Category:    "Women",
		Subcategory: "Dresses",
		InStock:     true,
		Images: []string{
			"https://images.unsplash.com/photo-1610030469983-98e550d6193c?w=800",
			"https://images.unsplash.com/photo-1617627143750-d86bc21e42bb?w=800",
			"https://images.unsplash.com/photo-1583391733956-6c78276477e2?w=800",
		},
		Gsm:              "250 GSM",
		Sizes:            []string{"Free Size"},
		Fabric:           "Pure Silk",
		StitchingDetails: "Machine stitched borders with hand-worked details",
	},
	{
		Name:        "Linen Formal Shirt",
		Description: "Breathable linen shirt perfect for summer",
		Price:       1999,
		Category:    "Men",
		Subcategory: "Shirts",
		InStock:     false,
		Images: []string{
			"https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=800",
			"https://images.unsplash.com/photo-1602810318383-e386cc2a3ccf?w=800",
		},
		Gsm:              "120 GSM",
		Sizes:            []string{"S", "M", "L", "XL", "XXL"},
		Fabric:           "100% Linen",
		StitchingDetails: "French seams for durability",
	},
	{
		Name:        "Embroidered Palazzo Set",
		Description: "Stylish palazzo with matching kurta",
		Price:       3499,
		Category:    "Women",
		Subcategory: "Matching Sets",
		InStock:     true,
		Images: []string{
			"https://images.unsplash.com/photo-1591369822096-ffd140ec948f?w=800",
			"https://images.unsplash.com/photo-1612990485791-c893ddf7a5e9?w=800",
			"https://images.unsplash.com/photo-1583391733956-6c78276477e2?w=800",
		},
		Gsm:              "160 GSM",
		Sizes:            []string{"S", "M", "L", "XL"},
		Fabric:           "Cotton Blend",
		StitchingDetails: "Hand-embroidered details with machine stitching",
	},
	{
		Name:        "Designer Floral Dress",
		Description: "Elegant floral print maxi dress with flowing silhouette",
		Price:       2799,
		Category:    "Women",
		Subcategory: "Dresses",
		InStock:     true,
		Images: []string{
			"https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=800",
			"https://images.unsplash.com/photo-1572804013309-59a88b7e92f1?w=800",
			"https://images.unsplash.com/photo-1585487000160-6ebcfceb0d03?w=800",
		},
		Gsm:              "140 GSM",
		Sizes:            []string{"XS", "S", "M", "L", "XL"},
		Fabric:           "Georgette",
		StitchingDetails: "Flowy fit with side zipper",
	},
	{
		Name:        "Classic Denim Jacket",
		Description: "Timeless denim jacket with modern fit",
		Price:       3299,
		Category:    "Men",
		Subcategory: "Jackets & Coats",
		InStock:     true,
		Images: []string{
			"https://images.unsplash.com/photo-1576995853123-5a10305d93c0?w=800",
			"https://images.unsplash.com/photo-1551028719-00167b16eac5?w=800",
		},
		Gsm:              "300 GSM",
		Sizes:            []string{"S", "M", "L", "XL", "XXL"},
		Fabric:           "Denim",
		StitchingDetails: "Double-stitched seams with button closures",
	},
	{
		Name:        "Cotton Casual Pants",
		Description: "Comfortable cotton chinos for everyday wear",
		Price:       1999,
		Category:    "Men",
		Subcategory: "Pants",
		InStock:     true,
		Images: []string{
			"https://images.unsplash.com/photo-1473966968600-fa801b869a1a?w=800",
			"https://images.unsplash.com/photo-1624378439575-d8705ad7ae80?w=800",
			"https://images.unsplash.com/photo-1506629082955-511b1aa562c8?w=800",
		},
		Gsm:              "200 GSM",
		Sizes:            []string{"28", "30", "32", "34", "36", "38"},
		Fabric:           "Cotton Twill",
		StitchingDetails: "Reinforced pockets with belt loops",
	},
	{
		Name:        "Women's Silk Blouse",
		Description: "Elegant silk blouse with delicate details",
		Price:       2499,
		Category:    "Women",
		Subcategory: "Tops",
		InStock:     true,
		Images: []string{
			"https://images.unsplash.com/photo-1564257577802-218beb0c4b63?w=800",
			"https://images.unsplash.com/photo-1551488831-00ddcb6c6bd3?w=800",
		},
		Gsm:              "120 GSM",
		Sizes:            []string{"XS", "S", "M", "L", "XL"},
		Fabric:           "Silk Satin",
		StitchingDetails: "French seams with mother-of-pearl buttons",
	},
	{
		Name:        "Kids Denim Shorts",
		Description: "Comfortable denim shorts perfect for playtime",
		Price:       899,
		Category:    "Kids",
		Subcategory: "Shorts",
		InStock:     true,
		Images: []string{
			"https://images.unsplash.com/photo-1519689680058-324335c77eba?w=800",
			"https://images.unsplash.com/photo-1503944583220-79d8926ad5e2?w=800",
			"https://images.unsplash.com/photo-1514090458221-65bb69cf63e2?w=800",
		},
		Gsm:              "250 GSM",
		Sizes:            []string{"2-3Y", "4-5Y", "6-7Y", "8-9Y", "10-11Y"},
		Fabric:           "Denim",
		StitchingDetails: "Adjustable waist with reinforced stitching",
	},
	{
		Name:        "Kids Cotton T-Shirt",
		Description: "Soft cotton t-shirt with fun graphic print",
		Price:       599,
		Category:    "Kids",
		Subcategory: "Tops",
		InStock:     false,
		Images: []string{
			"https://images.unsplash.com/photo-1503944583220-79d8926ad5e2?w=800",
			"https://images.unsplash.com/photo-1514090458221-65bb69cf63e2?w=800",
		},
		Gsm:              "170 GSM",
		Sizes:            []string{"2-3Y", "4-5Y", "6-7Y", "8-9Y", "10-11Y"},
		Fabric:           "100% Cotton",
		StitchingDetails: "Ribbed collar with comfortable fit",
	},
}
