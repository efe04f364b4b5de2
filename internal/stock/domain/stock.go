package domain

import (
	catalogdomain "github.com/cafeops/eventbrew/internal/catalog/domain"
)

// Status is the derived stock level of one ledger entry
type Status string

const (
	StatusGood     Status = "good"
	StatusLow      Status = "low"
	StatusCritical Status = "critical"
)

// ComputeStatus derives the status from an amount against its thresholds:
// critical iff amount <= critical, low iff critical < amount <= low,
// otherwise good.
func ComputeStatus(amount, lowThreshold, criticalThreshold float64) Status {
	switch {
	case amount <= criticalThreshold:
		return StatusCritical
	case amount <= lowThreshold:
		return StatusLow
	default:
		return StatusGood
	}
}

// Entry is one station's live stock record for one catalog item. Once
// created, its amount changes only through the explicit ledger operations or
// a depletion-guarded resync.
type Entry struct {
	StationID         string                 `json:"stationId"`
	Category          catalogdomain.Category `json:"category"`
	ItemID            string                 `json:"itemId"`
	Name              string                 `json:"name"`
	Amount            float64                `json:"amount"`
	Capacity          float64                `json:"capacity"`
	Unit              string                 `json:"unit"`
	LowThreshold      float64                `json:"lowThreshold"`
	CriticalThreshold float64                `json:"criticalThreshold"`
	Status            Status                 `json:"status"`
	Enabled           bool                   `json:"enabled"`
}

// RecomputeStatus refreshes the derived status field
func (e *Entry) RecomputeStatus() {
	e.Status = ComputeStatus(e.Amount, e.LowThreshold, e.CriticalThreshold)
}

// IsDepleted reports whether the entry has been drawn down below capacity,
// the signal that live usage or a manual edit has touched it.
func (e *Entry) IsDepleted() bool {
	return e.Amount < e.Capacity
}

// Ledger is one station's full stock, grouped by category
type Ledger map[catalogdomain.Category][]Entry

// Find returns the entry for (category, itemID), or nil
func (l Ledger) Find(category catalogdomain.Category, itemID string) *Entry {
	for i := range l[category] {
		if l[category][i].ItemID == itemID {
			return &l[category][i]
		}
	}
	return nil
}

// AnyDepleted reports whether any entry in the ledger sits below capacity
func (l Ledger) AnyDepleted() bool {
	for _, entries := range l {
		for i := range entries {
			if entries[i].IsDepleted() {
				return true
			}
		}
	}
	return false
}

// Len counts entries across all categories
func (l Ledger) Len() int {
	n := 0
	for _, entries := range l {
		n += len(entries)
	}
	return n
}
