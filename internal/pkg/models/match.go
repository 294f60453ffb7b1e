package models

import "github.com/google/uuid"

// Location is a geographic coordinate pair
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AvailabilityRequest marks a professional as available for work
type AvailabilityRequest struct {
	Location   Location `json:"location"`
	Categories []string `json:"categories"`
}

// MatchRequest asks for professionals near a client for a category
type MatchRequest struct {
	ServiceCategory string   `json:"service_category"`
	Location        Location `json:"location"`
	Query           string   `json:"query"` // free-text description forwarded to the ranker
}

// MatchResult is the ranked (or raw, when the ranker is unavailable)
// list of candidate professionals.
type MatchResult struct {
	ProfessionalIDs []uuid.UUID `json:"professional_ids"`
	Ranked          bool        `json:"ranked"`
}

// RankRequest is the request/response contract with the AI ranking collaborator
type RankRequest struct {
	ServiceCategory string   `json:"service_category"`
	Query           string   `json:"query"`
	CandidateIDs    []string `json:"candidate_ids"`
}

// RankResponse carries the ranker's ordering of the candidates
type RankResponse struct {
	RankedIDs []string `json:"ranked_ids"`
}
