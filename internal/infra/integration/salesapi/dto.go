package salesapi

import "github.com/xavierca1/ligue-vendas/internal/entity"

// O backend devolve listas dentro de "data". Alguns registros vêm com
// "_id", outros com "id".
type listResponse[T any] struct {
	Data []T `json:"data"`
}

type productDTO struct {
	MongoID    string   `json:"_id"`
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
}

func (d productDTO) toEntity() entity.Product {
	return entity.Product{
		ID:         firstNonEmpty(d.ID, d.MongoID),
		Name:       d.Name,
		Categories: d.Categories,
	}
}

type categoryDTO struct {
	MongoID string `json:"_id"`
	ID      string `json:"id"`
	Name    string `json:"name"`
	Image   string `json:"image"`
}

func (d categoryDTO) toEntity() entity.Category {
	return entity.Category{
		ID:       firstNonEmpty(d.ID, d.MongoID),
		Name:     d.Name,
		ImageURL: d.Image,
	}
}

type leadCategoryDTO struct {
	Name string `json:"name"`
}

type leadDTO struct {
	MongoID      string           `json:"_id"`
	ID           string           `json:"id"`
	UserID       string           `json:"userId"`
	Status       string           `json:"status"`
	CreatedAt    string           `json:"createdAt"`
	CategoryName string           `json:"categoryName"`
	Category     *leadCategoryDTO `json:"category"`
	FieldsData   map[string]any   `json:"fieldsData"`
}

func (d leadDTO) toEntity() entity.RawLead {
	category := d.CategoryName
	if category == "" && d.Category != nil {
		category = d.Category.Name
	}
	return entity.RawLead{
		ID:           firstNonEmpty(d.ID, d.MongoID),
		UserID:       d.UserID,
		Status:       d.Status,
		CreatedAt:    d.CreatedAt,
		CategoryName: category,
		FieldsData:   d.FieldsData,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
