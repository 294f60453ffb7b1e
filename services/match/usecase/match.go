package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mmcloughlin/geohash"

	"github.com/workme/backend/internal/pkg/apperrors"
	"github.com/workme/backend/internal/pkg/logger"
	"github.com/workme/backend/internal/pkg/models"
)

// SetAvailability announces a professional as available for work near a
// location. The entry expires on its own unless refreshed.
func (uc *matchUC) SetAvailability(ctx context.Context, professionalID uuid.UUID, role string, req *models.AvailabilityRequest) error {
	if role != models.RoleProfessional {
		return apperrors.New(apperrors.KindForbidden, "only professionals can announce availability")
	}
	if len(req.Categories) == 0 {
		return apperrors.New(apperrors.KindValidation, "at least one category is required")
	}
	if !validCoordinates(req.Location) {
		return apperrors.New(apperrors.KindValidation, "invalid coordinates")
	}

	cell := geohash.EncodeWithPrecision(req.Location.Latitude, req.Location.Longitude, uc.cfg.Match.GeohashPrecision)
	ttl := time.Duration(uc.cfg.Match.AvailabilityTTLMins) * time.Minute

	return uc.repo.MarkAvailable(ctx, professionalID, req.Categories, cell, ttl)
}

// ClearAvailability withdraws the professional from matching
func (uc *matchUC) ClearAvailability(ctx context.Context, professionalID uuid.UUID) error {
	return uc.repo.MarkUnavailable(ctx, professionalID)
}

// FindProfessionals returns available professionals near the client for the
// requested category. The client's cell is searched first, then its eight
// neighbors, so closer candidates lead. When the ranking collaborator is
// reachable, its ordering replaces proximity order.
func (uc *matchUC) FindProfessionals(ctx context.Context, req *models.MatchRequest) (*models.MatchResult, error) {
	if req.ServiceCategory == "" {
		return nil, apperrors.New(apperrors.KindValidation, "service_category is required")
	}
	if !validCoordinates(req.Location) {
		return nil, apperrors.New(apperrors.KindValidation, "invalid coordinates")
	}

	cell := geohash.EncodeWithPrecision(req.Location.Latitude, req.Location.Longitude, uc.cfg.Match.GeohashPrecision)
	cells := append([]string{cell}, geohash.Neighbors(cell)...)

	candidates, err := uc.repo.FindInCells(ctx, req.ServiceCategory, cells, uc.cfg.Match.MaxCandidates)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return &models.MatchResult{ProfessionalIDs: []uuid.UUID{}}, nil
	}

	ranked, ok := uc.rank(ctx, req, candidates)
	if ok {
		return &models.MatchResult{ProfessionalIDs: ranked, Ranked: true}, nil
	}
	return &models.MatchResult{ProfessionalIDs: candidates}, nil
}

// rank asks the collaborator for an ordering. Any failure, or a response
// that drops or invents candidates, falls back to proximity order.
func (uc *matchUC) rank(ctx context.Context, req *models.MatchRequest, candidates []uuid.UUID) ([]uuid.UUID, bool) {
	candidateIDs := make([]string, len(candidates))
	valid := make(map[uuid.UUID]bool, len(candidates))
	for i, id := range candidates {
		candidateIDs[i] = id.String()
		valid[id] = true
	}

	resp, err := uc.gw.RankCandidates(ctx, &models.RankRequest{
		ServiceCategory: req.ServiceCategory,
		Query:           req.Query,
		CandidateIDs:    candidateIDs,
	})
	if err != nil {
		logger.Warn("Ranker unavailable, falling back to proximity order",
			logger.String("category", req.ServiceCategory),
			logger.Err(err),
		)
		return nil, false
	}

	ranked := make([]uuid.UUID, 0, len(resp.RankedIDs))
	for _, raw := range resp.RankedIDs {
		id, err := uuid.Parse(raw)
		if err != nil || !valid[id] {
			logger.Warn("Ranker returned an unknown candidate, falling back to proximity order",
				logger.String("candidate", raw),
			)
			return nil, false
		}
		ranked = append(ranked, id)
	}
	if len(ranked) != len(candidates) {
		logger.Warn("Ranker dropped candidates, falling back to proximity order",
			logger.Int("expected", len(candidates)),
			logger.Int("got", len(ranked)),
		)
		return nil, false
	}
	return ranked, true
}

func validCoordinates(loc models.Location) bool {
	return loc.Latitude >= -90 && loc.Latitude <= 90 && loc.Longitude >= -180 && loc.Longitude <= 180
}
