package usecase

import (
	"strings"

	"github.com/xavierca1/ligue-vendas/internal/entity"
)

const (
	// OtherProductsSection é usado quando o produto vem sem nome.
	OtherProductsSection = "Other Products"

	// MaxSectionLabels limita quantas categorias cabem no card.
	MaxSectionLabels = 4
)

// labelOverrides quebra em duas linhas os nomes que não cabem no card.
// Checados em ordem; o primeiro que bater ganha.
var labelOverrides = []struct {
	Name  string
	Label string
}{
	{"Health Insurance", "Health\nInsurance"},
	{"Life Insurance", "Life\nInsurance"},
	{"Motor Insurance", "Motor\nInsurance"},
	{"Travel Insurance", "Travel\nInsurance"},
	{"Personal Loan", "Personal\nLoan"},
	{"Business Loan", "Business\nLoan"},
	{"Home Loan", "Home\nLoan"},
	{"Credit Card", "Credit\nCard"},
}

// DeriveSections agrupa os produtos pelo nome, na ordem em que aparecem.
// Os labels da seção vêm do primeiro produto com aquele nome.
func DeriveSections(products []entity.Product, categoryNames map[string]string) []entity.Section {
	index := make(map[string]int)
	sections := make([]entity.Section, 0)

	for _, p := range products {
		key := p.Name
		if strings.TrimSpace(key) == "" {
			key = OtherProductsSection
		}

		if i, ok := index[key]; ok {
			sections[i].ProductCount++
			continue
		}

		variant := entity.CardVariantA
		if len(sections)%2 == 1 {
			variant = entity.CardVariantB
		}

		labels, ids := DeriveLabels(p.Categories, categoryNames)

		section := entity.Section{
			Name:                    key,
			CardVariant:             variant,
			DisplayLabels:           labels,
			LabelCategoryIDs:        ids,
			RepresentativeProductID: p.ID,
			ProductCount:            1,
		}
		if len(p.Categories) > 0 {
			section.RepresentativeCategoryID = p.Categories[0]
		}

		index[key] = len(sections)
		sections = append(sections, section)
	}

	return sections
}

// DeriveLabels transforma até MaxSectionLabels categorias em labels do card.
// As duas fatias devolvidas têm sempre o mesmo tamanho.
func DeriveLabels(categoryIDs []string, categoryNames map[string]string) ([]string, []string) {
	n := len(categoryIDs)
	if n > MaxSectionLabels {
		n = MaxSectionLabels
	}

	labels := make([]string, 0, n)
	ids := make([]string, 0, n)

	for _, id := range categoryIDs[:n] {
		labels = append(labels, categoryLabel(categoryNames[id]))
		ids = append(ids, id)
	}

	return labels, ids
}

func categoryLabel(name string) string {
	for _, o := range labelOverrides {
		if o.Name == name {
			return o.Label
		}
	}

	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// CategoryMaps reduz a listagem de categorias nos mapas id→nome e id→imagem.
func CategoryMaps(categories []entity.Category) (names map[string]string, images map[string]string) {
	names = make(map[string]string, len(categories))
	images = make(map[string]string, len(categories))

	for _, c := range categories {
		names[c.ID] = c.Name
		if c.ImageURL != "" {
			images[c.ID] = c.ImageURL
		}
	}

	return names, images
}
