package model

import "time"

// HistoryEntryResponse represents one recorded password.
type HistoryEntryResponse struct {
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryResponse lists a mode's entries, most recent first.
type HistoryResponse struct {
	Mode    string                 `json:"mode"`
	Entries []HistoryEntryResponse `json:"entries"`
}
