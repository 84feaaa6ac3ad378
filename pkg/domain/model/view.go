package model

import (
	"github.com/IceeCodee/TRAP-word-cloud/pkg/domain/types"
)

// PatternDescription is what the description panel shows for a selected
// point. When no point has been selected yet, Message carries a placeholder
// prompt and the remaining fields are empty.
type PatternDescription struct {
	Message     string `json:"message,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
}

// PatternDetail is what the category panel shows for a selected point and
// category. Exactly one of Message, Links or Text is populated: Message for
// the no-selection placeholder and the no-data cases, Links for the
// weaknesses category, Text for instances and mitigations.
type PatternDetail struct {
	Category types.DetailCategory `json:"category,omitempty"`
	Message  string               `json:"message,omitempty"`
	Links    []string             `json:"links,omitempty"`
	Text     string               `json:"text,omitempty"`
}
