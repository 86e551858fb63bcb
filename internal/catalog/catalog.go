// Package catalog provides the fixed Theme Store product catalog.
package catalog

// Category identifies the catalog section a theme belongs to.
type Category string

const (
	CategoryAdmin      Category = "Admin"
	CategoryECommerce  Category = "E-Commerce"
	CategoryPortfolio  Category = "Portfolio"
	CategoryBlog       Category = "Blog"
	CategoryBusiness   Category = "Business"
	CategoryLanding    Category = "Landing"
	CategoryRestaurant Category = "Restaurant"
	CategoryEducation  Category = "Education"
	CategorySaaS       Category = "SaaS"
)

// AllCategories is the wildcard label that matches every category.
const AllCategories = "All"

// Theme is a purchasable catalog record.
type Theme struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Price       int      `json:"price"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating"`
	Sales       int      `json:"sales"`
}

var categories = [...]Category{
	CategoryAdmin,
	CategoryECommerce,
	CategoryPortfolio,
	CategoryBlog,
	CategoryBusiness,
	CategoryLanding,
	CategoryRestaurant,
	CategoryEducation,
	CategorySaaS,
}

var themes = [...]Theme{
	{ID: 1, Name: "Modern Dashboard", Category: CategoryAdmin, Price: 49, Image: "🎨", Description: "Clean and modern admin dashboard template", Rating: 4.8, Sales: 1234},
	{ID: 2, Name: "E-Commerce Pro", Category: CategoryECommerce, Price: 79, Image: "🛍️", Description: "Full-featured e-commerce theme with cart", Rating: 4.9, Sales: 2156},
	{ID: 3, Name: "Portfolio Elite", Category: CategoryPortfolio, Price: 39, Image: "💼", Description: "Professional portfolio theme for creatives", Rating: 4.7, Sales: 892},
	{ID: 4, Name: "Blog Master", Category: CategoryBlog, Price: 29, Image: "📝", Description: "Beautiful blog theme with rich typography", Rating: 4.6, Sales: 567},
	{ID: 5, Name: "Corporate Suite", Category: CategoryBusiness, Price: 59, Image: "🏢", Description: "Professional corporate website theme", Rating: 4.8, Sales: 1023},
	{ID: 6, Name: "Landing Page Kit", Category: CategoryLanding, Price: 35, Image: "🚀", Description: "High-converting landing page templates", Rating: 4.9, Sales: 1876},
	{ID: 7, Name: "Restaurant Deluxe", Category: CategoryRestaurant, Price: 45, Image: "🍽️", Description: "Elegant restaurant and cafe theme", Rating: 4.7, Sales: 445},
	{ID: 8, Name: "Education Hub", Category: CategoryEducation, Price: 55, Image: "📚", Description: "Complete learning management system theme", Rating: 4.8, Sales: 789},
	{ID: 9, Name: "SaaS Starter", Category: CategorySaaS, Price: 69, Image: "☁️", Description: "Modern SaaS application theme", Rating: 4.9, Sales: 1567},
}

// Themes returns the catalog in display order.
// Callers own the returned slice.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes[:])
	return out
}

// Categories returns the category filter labels, starting with AllCategories.
func Categories() []string {
	out := make([]string, 0, len(categories)+1)
	out = append(out, AllCategories)
	for _, c := range categories {
		out = append(out, string(c))
	}
	return out
}

// Lookup returns the theme with the given id.
func Lookup(id int) (Theme, bool) {
	for _, t := range themes {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}

// IsCategory reports whether label is AllCategories or a known category.
func IsCategory(label string) bool {
	if label == AllCategories {
		return true
	}
	for _, c := range categories {
		if string(c) == label {
			return true
		}
	}
	return false
}
