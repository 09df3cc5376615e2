package usecase

import "github.com/xavierca1/ligue-vendas/internal/entity"

type GetSectionsOutput struct {
	Sections       []entity.Section  `json:"sections"`
	CategoryImages map[string]string `json:"category_images"`
}

type ProductLabelsOutput struct {
	ProductID   string   `json:"product_id"`
	Labels      []string `json:"labels"`
	CategoryIDs []string `json:"category_ids"`
}

type FilterProductsOutput struct {
	CategoryID   string           `json:"category_id"`
	CategoryName string           `json:"category_name"`
	Products     []entity.Product `json:"products"`
}

type ListLeadsInput struct {
	UserID string `json:"user_id"`
	Status string `json:"status"`
}

// LeadSummary conta os leads por status de tela (dashboard de ganhos).
type LeadSummary struct {
	Total      int `json:"total"`
	Interested int `json:"interested"`
	FollowUp   int `json:"follow_up"`
	Converted  int `json:"converted"`
	Closed     int `json:"closed"`
}

type ListLeadsOutput struct {
	Leads   []entity.Lead `json:"leads"`
	Summary LeadSummary   `json:"summary"`
}

type SyncLeadsOutput struct {
	Checked  int `json:"checked"`
	Recorded int `json:"recorded"`
	Changed  int `json:"changed"`
	Failed   int `json:"failed"`
}
