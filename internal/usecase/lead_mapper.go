package usecase

import (
	"fmt"
	"strings"

	"github.com/xavierca1/ligue-vendas/internal/entity"
)

const UnknownLeadName = "Unknown"

// nameFieldKeys é a ordem de busca do nome dentro de fieldsData.
var nameFieldKeys = []string{
	"Full Name",
	"Owner Name",
	"Customer Name",
	"Applicant Name",
	"Business Name",
	"Name",
}

// ResolveLeadName devolve o primeiro campo de nome preenchido, ou "Unknown".
func ResolveLeadName(fields map[string]any) string {
	for _, key := range nameFieldKeys {
		v, ok := fields[key]
		if !ok || v == nil {
			continue
		}

		var name string
		switch val := v.(type) {
		case string:
			name = val
		case fmt.Stringer:
			name = val.String()
		default:
			continue
		}

		if name = strings.TrimSpace(name); name != "" {
			return name
		}
	}
	return UnknownLeadName
}

func MapLead(raw entity.RawLead) entity.Lead {
	return entity.Lead{
		ID:             raw.ID,
		Name:           ResolveLeadName(raw.FieldsData),
		CategoryName:   raw.CategoryName,
		Status:         MapStatus(raw.Status),
		CreatedDate:    FormatDate(raw.CreatedAt),
		OriginalStatus: raw.Status,
	}
}

func MapLeads(raws []entity.RawLead) []entity.Lead {
	leads := make([]entity.Lead, 0, len(raws))
	for _, raw := range raws {
		leads = append(leads, MapLead(raw))
	}
	return leads
}
