package entity

// Product como vem da listagem upstream. Categories guarda apenas IDs,
// na ordem em que o backend devolve.
type Product struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
}

type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image,omitempty"`
}

// HasCategory diz se o produto pertence à categoria.
func (p Product) HasCategory(categoryID string) bool {
	for _, id := range p.Categories {
		if id == categoryID {
			return true
		}
	}
	return false
}
