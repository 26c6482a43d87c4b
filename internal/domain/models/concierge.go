package models

import (
	"time"

	"github.com/Temutjin2k/ubar/internal/domain/types"
)

// Suggestion is a venue proposed by the suggestion service.
type Suggestion struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
}

// FullAddress is the drop-off text used when the suggestion is selected.
func (s Suggestion) FullAddress() string {
	return s.Name + ", " + s.Address
}

type ChatMessage struct {
	Role      types.ChatRole `json:"role"`
	Text      string         `json:"text"`
	CreatedAt time.Time      `json:"created_at"`
}

// Conversation is the concierge chat of one booking.
type Conversation struct {
	Messages    []ChatMessage `json:"messages"`
	Suggestions []Suggestion  `json:"suggestions"`
}
