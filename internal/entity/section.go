package entity

// CardVariant alterna o visual do card na home do app.
type CardVariant string

const (
	CardVariantA CardVariant = "A"
	CardVariantB CardVariant = "B"
)

// Section agrupa os produtos com o mesmo nome. Derivada a cada carga,
// nunca persistida.
//
// DisplayLabels[i] sempre corresponde a LabelCategoryIDs[i].
type Section struct {
	Name                     string      `json:"name"`
	CardVariant              CardVariant `json:"card_variant"`
	DisplayLabels            []string    `json:"display_labels"`
	LabelCategoryIDs         []string    `json:"label_category_ids"`
	RepresentativeProductID  string      `json:"representative_product_id"`
	RepresentativeCategoryID string      `json:"representative_category_id,omitempty"`
	ProductCount             int         `json:"product_count"`
}
