package usecase

import "storefront_service/internal/domain"

// sampleProducts is the fixed demonstration catalog: two records in each of
// outerwear, tops, bottoms, footwear and accessories.
var sampleProducts = []domain.Product{
	{
		Title:       "Cropped Technical Bomber",
		Description: "Matte nylon shell, cropped length, two-way zip, tonal hardware.",
		Price:       480.0,
		Category:    "outerwear",
		Image:       "https://images.unsplash.com/photo-1544025162-d76694265947?q=80&w=1600&auto=format&fit=crop",
		InStock:     true,
		Sizes:       []string{"S", "M", "L"},
	},
	{
		Title:       "Wool Overcoat",
		Description: "Double-faced wool, clean lapel, hidden placket, charcoal.",
		Price:       780.0,
		Category:    "outerwear",
		Image:       "https://images.unsplash.com/photo-1516822003754-cca485356ecb?q=80&w=1600&auto=format&fit=crop",
		InStock:     true,
		Sizes:       []string{"M", "L", "XL"},
	},
	{
		Title:       "Heavyweight Boxy Tee",
		Description: "26oz cotton, dropped shoulder, bone.",
		Price:       95.0,
		Category:    "tops",
		Image:       "https://images.unsplash.com/photo-1512436991641-6745cdb1723f?q=80&w=1600&auto=format&fit=crop",
		InStock:     true,
		Sizes:       []string{"S", "M", "L", "XL"},
	},
	{
		Title:       "Knit Polo",
		Description: "Mercerized knit, open collar, ink.",
		Price:       140.0,
		Category:    "tops",
		Image:       "https://images.unsplash.com/photo-1520975940163-5a6f8f125e8b?q=80&w=1600&auto=format&fit=crop",
		InStock:     true,
		Sizes:       []string{"S", "M", "L"},
	},
	{
		Title:       "Pleated Wide Trousers",
		Description: "Single pleat, fluid drape, crease-resistant, black.",
		Price:       260.0,
		Category:    "bottoms",
		Image:       "https://images.unsplash.com/photo-1503341455253-b2e723bb3dbb?q=80&w=1600&auto=format&fit=crop",
		InStock:     true,
		Sizes:       []string{"28", "30", "32", "34"},
	},
	{
		Title:       "Raw Denim",
		Description: "14oz selvedge, straight leg, indigo.",
		Price:       220.0,
		Category:    "bottoms",
		Image:       "https://images.unsplash.com/photo-1503342394122-6b8499a3a540?q=80&w=1600&auto=format&fit=crop",
		InStock:     true,
		Sizes:       []string{"28", "30", "32", "34", "36"},
	},
	{
		Title:       "Leather Derby",
		Description: "Full-grain calfskin, stacked heel, black.",
		Price:       420.0,
		Category:    "footwear",
		Image:       "https://images.unsplash.com/photo-1519741497674-611481863552?q=80&w=1600&auto=format&fit=crop",
		InStock:     true,
		Sizes:       []string{"40", "41", "42", "43", "44"},
	},
	{
		Title:       "Tech Runner",
		Description: "Ripstop and suede, Vibram sole, grey.",
		Price:       360.0,
		Category:    "footwear",
		Image:       "https://images.unsplash.com/photo-1539185441755-769473a23570?q=80&w=1600&auto=format&fit=crop",
		InStock:     true,
		Sizes:       []string{"40", "41", "42", "43"},
	},
	{
		Title:       "Calfskin Belt",
		Description: "Polished edge, matte buckle, black.",
		Price:       160.0,
		Category:    "accessories",
		Image:       "https://images.unsplash.com/photo-1520975661595-6453be3f7070?q=80&w=1600&auto=format&fit=crop",
		InStock:     true,
	},
	{
		Title:       "Ribbed Beanie",
		Description: "Italian wool, onyx.",
		Price:       80.0,
		Category:    "accessories",
		Image:       "https://images.unsplash.com/photo-1520975588854-6cdb91f1a6cf?q=80&w=1600&auto=format&fit=crop",
		InStock:     true,
	},
}
