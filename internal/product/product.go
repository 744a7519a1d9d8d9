package product

// Product is a catalog record. ID is the category tag and is shared by every
// product in the same category, so it does not identify a single record.
// JSON tags follow the short field names used by the storefront scripts.
type Product struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Image string `json:"image"`
	Alt   string `json:"alt"`
}

// DefaultCatalog is the static product table shown by the home page search.
// It mirrors the cards on the shop page.
var DefaultCatalog = []Product{
	{ID: "indoor", Name: "Rubber Plant (Ficus Elastica)", Price: "$15", Image: "img/rubber plant.jpeg", Alt: "Indoor Plant"},
	{ID: "outdoor", Name: "Rose Plant", Price: "$25", Image: "img/rose.jpg", Alt: "Outdoor Plant"},
	{ID: "succulents", Name: "Echeveria Succulent", Price: "$12", Image: "img/echeveria.jpg", Alt: "Succulent"},
	{ID: "herbs", Name: "Basil Herb", Price: "$8", Image: "img/basil.jpg", Alt: "Herb"},
	{ID: "indoor", Name: "Snake Plant", Price: "$50", Image: "img/Snake_Plant.jpg", Alt: "Indoor Plant"},
	{ID: "indoor", Name: "Parlor Palm", Price: "$70", Image: "img/parlour-palm-plant.jpg", Alt: "Indoor Plant"},
	{ID: "indoor", Name: "ENGLISH IVY CREEPER – CLIMBERS", Price: "$60", Image: "img/english-ivy.jpg", Alt: "Indoor Plant"},
	{ID: "indoor", Name: "Chinese Evergreen", Price: "$75", Image: "img/chinese-evergreen.jpg", Alt: "Indoor Plant"},
	{ID: "outdoor", Name: "Alexendar Palm", Price: "$100", Image: "img/alexendra-palm.webp", Alt: "Outdoor Plant"},
	{ID: "outdoor", Name: "ASPARAGUS MARRY – FOXTAIL FERN", Price: "$30", Image: "img/marry.webp", Alt: "Outdoor Plant"},
	{ID: "succulents", Name: "Aloe Vera", Price: "$18", Image: "img/aloe-vera.jpg", Alt: "Succulent"},
	{ID: "herbs", Name: "Mint Plant", Price: "$10", Image: "img/mint.jpg", Alt: "Herb"},
	{ID: "seeds", Name: "CELOSIA-SUMMER SEEDS", Price: "$15", Image: "img/celosia seed.webp", Alt: "Seeds"},
	{ID: "seeds", Name: "TOMATO SEEDS", Price: "$15", Image: "img/tomato_seeds.jpeg", Alt: "Seeds"},
	{ID: "seeds", Name: "COCONUT BULB", Price: "$25", Image: "img/coconut_bulb.jpeg", Alt: "Seeds"},
}

// Catalog returns a copy of the default table.
func Catalog() []Product {
	out := make([]Product, len(DefaultCatalog))
	copy(out, DefaultCatalog)
	return out
}
