package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/ligue-vendas/internal/usecase"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05 Mar 2024", usecase.FormatDate("2024-03-05T10:00:00Z"))
	assert.Equal(t, "05 Mar 2024", usecase.FormatDate("2024-03-05T10:00:00.123Z"))
	assert.Equal(t, "31 Dec 2023", usecase.FormatDate("2023-12-31"))
	assert.Equal(t, "", usecase.FormatDate(""))
	assert.Equal(t, "", usecase.FormatDate("   "))
	assert.Equal(t, "", usecase.FormatDate("not a date"))
}

// TestFormatDateAbsentField - campo ausente no JSON chega como string vazia
func TestFormatDateAbsentField(t *testing.T) {
	var raw struct {
		CreatedAt string `json:"createdAt"`
	}
	assert.Equal(t, "", usecase.FormatDate(raw.CreatedAt))
}
