package frontpage

// Category names a section of a categorized news snapshot.
type Category string

// DefaultCategories lists the categories a snapshot is organized into,
// in display order.
var DefaultCategories = []Category{
	"World",
	"Business",
	"Technology",
	"Entertainment",
	"Sports",
	"Science",
	"Health",
}

// Article is a single news story distilled from a homepage.
type Article struct {
	Headline  string   `json:"headline" bson:"headline"`
	Summary   string   `json:"summary" bson:"summary"`
	KeyPoints []string `json:"key_points" bson:"key_points"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.Headline == "" {
		return Errorf(EINVALID, "article headline required")
	}
	return nil
}

// CategorizedNews maps each category to the articles classified under it.
// A category with no qualifying stories maps to an empty slice, never nil.
type CategorizedNews map[Category][]Article

// Normalize returns a copy of the news restricted to the given categories.
// Missing categories are filled with empty slices, categories outside the
// list are dropped, and articles without a headline are removed.
func (n CategorizedNews) Normalize(categories []Category) CategorizedNews {
	out := make(CategorizedNews, len(categories))
	for _, cat := range categories {
		articles := make([]Article, 0, len(n[cat]))
		for _, a := range n[cat] {
			if a.Headline == "" {
				continue
			}
			articles = append(articles, a)
		}
		out[cat] = articles
	}
	return out
}

// Articles returns the total number of articles across all categories.
func (n CategorizedNews) Articles() int {
	var total int
	for _, articles := range n {
		total += len(articles)
	}
	return total
}
