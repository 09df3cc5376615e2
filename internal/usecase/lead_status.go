package usecase

import (
	"strings"

	"github.com/xavierca1/ligue-vendas/internal/entity"
)

// statusTable traduz o status livre do backend para o status de tela.
var statusTable = []struct {
	Raw    string
	Status entity.LeadStatus
}{
	{"new", entity.LeadStatusInterested},
	{"interested", entity.LeadStatusInterested},
	{"qualified", entity.LeadStatusInterested},
	{"contacted", entity.LeadStatusFollowUp},
	{"followUp", entity.LeadStatusFollowUp},
	{"proposal", entity.LeadStatusFollowUp},
	{"negotiation", entity.LeadStatusFollowUp},
	{"closed", entity.LeadStatusConverted},
	{"lost", entity.LeadStatusClosed},
}

// MapStatus nunca falha: o que não está na tabela vira Interested.
func MapStatus(raw string) entity.LeadStatus {
	raw = strings.TrimSpace(raw)
	for _, row := range statusTable {
		if strings.EqualFold(row.Raw, raw) {
			return row.Status
		}
	}
	return entity.LeadStatusInterested
}

// ParseLeadStatus aceita um status de tela (sem diferenciar maiúsculas),
// como vem no filtro da query.
func ParseLeadStatus(s string) (entity.LeadStatus, bool) {
	for _, st := range entity.LeadStatuses {
		if strings.EqualFold(string(st), strings.TrimSpace(s)) {
			return st, true
		}
	}
	return "", false
}
