package entity

import (
	"context"
	"time"
)

// LeadStatus é um dos quatro estágios do funil mostrados no app.
type LeadStatus string

const (
	LeadStatusInterested LeadStatus = "Interested"
	LeadStatusFollowUp   LeadStatus = "Follow-up"
	LeadStatusConverted  LeadStatus = "Converted"
	LeadStatusClosed     LeadStatus = "Closed"
)

// LeadStatuses lista os status de tela na ordem do funil.
var LeadStatuses = []LeadStatus{
	LeadStatusInterested,
	LeadStatusFollowUp,
	LeadStatusConverted,
	LeadStatusClosed,
}

// RawLead é o lead como vem do backend de vendas.
type RawLead struct {
	ID           string         `json:"id"`
	UserID       string         `json:"user_id"`
	Status       string         `json:"status"`
	CreatedAt    string         `json:"created_at"`
	CategoryName string         `json:"category_name"`
	FieldsData   map[string]any `json:"fields_data"`
}

type Lead struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	CategoryName   string     `json:"category_name"`
	Status         LeadStatus `json:"status"`
	CreatedDate    string     `json:"created_date"`
	OriginalStatus string     `json:"original_status"`
}

// LeadSnapshot is the last display status observed for a lead of an agent.
type LeadSnapshot struct {
	UserID         string     `json:"user_id"`
	LeadID         string     `json:"lead_id"`
	Status         LeadStatus `json:"status"`
	OriginalStatus string     `json:"original_status"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type LeadSnapshotRepositoryInterface interface {
	FindByLeadIDs(ctx context.Context, userID string, leadIDs []string) (map[string]LeadSnapshot, error)
	Upsert(ctx context.Context, snapshot LeadSnapshot) error
	Delete(ctx context.Context, userID, leadID string) error
}
