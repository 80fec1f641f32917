package domain

import (
	"fmt"
	"strings"
	"time"
)

const minRespondentNameLen = 2

// Screening is one respondent's pass through the three instruments. Scores are
// never stored on it; they are recomputed from Answers when needed.
type Screening struct {
	ID             string
	RespondentName string
	Status         ScreeningStatus
	Source         ScreeningSource
	Answers        AnswerSet
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CompletedAt    *time.Time
}

// IsCompleted reports whether the screening has been finalized.
func (s *Screening) IsCompleted() bool {
	return s.Status == ScreeningCompleted
}

// Complete marks the screening as finished at the given time.
func (s *Screening) Complete(now time.Time) error {
	if s.IsCompleted() {
		return fmt.Errorf("screening %s is already completed", s.ID)
	}
	s.Status = ScreeningCompleted
	s.CompletedAt = &now
	s.UpdatedAt = now
	return nil
}

// DisplayID returns the first 8 characters of the ID.
func (s *Screening) DisplayID() string {
	if len(s.ID) >= 8 {
		return s.ID[:8]
	}
	return s.ID
}

// ValidateRespondentName trims the name and requires at least two characters.
func ValidateRespondentName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("name is required")
	}
	if len([]rune(trimmed)) < minRespondentNameLen {
		return "", fmt.Errorf("name %q must be at least %d characters", trimmed, minRespondentNameLen)
	}
	return trimmed, nil
}
