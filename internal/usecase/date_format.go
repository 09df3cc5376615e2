package usecase

import (
	"strings"
	"time"
)

const displayDateLayout = "02 Jan 2006"

var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatDate converte um timestamp ISO-8601 em "DD Mon YYYY", mantendo o
// offset do próprio timestamp. Vazio ou inválido devolve "".
func FormatDate(iso string) string {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return ""
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format(displayDateLayout)
		}
	}
	return ""
}
