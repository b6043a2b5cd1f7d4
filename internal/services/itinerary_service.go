package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"myguide/internal/models/request_models"
	"myguide/internal/models/response_models"
	"myguide/internal/planner"
	"myguide/internal/repositories"
	mem "myguide/pkg/memcache"
	"myguide/pkg/utils"
)

const defaultCurrency = "USD"

type ItineraryServiceInterface interface {
	Generate(ctx context.Context, userID string, req request_models.GenerateItineraryRequest) (*response_models.ItineraryDraftResponse, error)
	PreviewDestinations(ctx context.Context, req request_models.GenerateItineraryRequest) ([]response_models.DestinationResponse, error)
	SaveDraft(ctx context.Context, userID string, draftID string) (*response_models.SavedJourneyResponse, error)
}

// ItineraryLimits are request-level bounds enforced before the engine runs.
type ItineraryLimits struct {
	MaxTripDays  int
	MaxGroupSize int
	DraftTTL     time.Duration
}

type ItineraryService struct {
	generator   *planner.Generator
	placeRepo   repositories.PlaceRepository
	journeyRepo repositories.JourneyRepository
	drafts      mem.DraftStore
	limits      ItineraryLimits
	logger      *zap.Logger
	now         func() time.Time
}

func NewItineraryService(
	generator *planner.Generator,
	placeRepo repositories.PlaceRepository,
	journeyRepo repositories.JourneyRepository,
	drafts mem.DraftStore,
	limits ItineraryLimits,
	logger *zap.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{
		generator:   generator,
		placeRepo:   placeRepo,
		journeyRepo: journeyRepo,
		drafts:      drafts,
		limits:      limits,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *ItineraryService) Generate(
	ctx context.Context,
	userID string,
	req request_models.GenerateItineraryRequest,
) (*response_models.ItineraryDraftResponse, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "Generate", trace.WithAttributes(
		attribute.String("trip.type", req.TripType),
		attribute.String("trip.destination", req.DestinationPreference),
	))
	defer span.End()

	params, err := s.toTripParameters(req)
	if err != nil {
		failSpan(span, err, "Invalid trip parameters")
		return nil, err
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		failSpan(span, err, "Failed to load place catalog")
		return nil, err
	}

	seed := s.now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}
	span.SetAttributes(attribute.Int64("planner.seed", seed), attribute.Int("catalog.size", len(catalog)))

	itinerary, err := s.generator.Generate(params, catalog, planner.NewRand(seed))
	if err != nil {
		s.logger.Info("itinerary generation rejected",
			zap.Error(err),
			zap.String("trip_type", params.TripType),
			zap.String("destination", params.DestinationPreference))
		failSpan(span, err, "Failed to generate itinerary")
		return nil, err
	}

	now := s.now()
	draft := &mem.Draft{
		ID:        uuid.NewString(),
		UserID:    userID,
		Seed:      seed,
		Params:    params,
		Itinerary: itinerary,
		CreatedAt: now,
	}
	s.drafts.Put(draft)

	s.logger.Info("itinerary draft created",
		zap.String("draft_id", draft.ID),
		zap.Int64("seed", seed),
		zap.Int("days", itinerary.DurationDays),
		zap.Float64("estimated_total_cost", itinerary.EstimatedTotalCost))
	span.SetAttributes(
		attribute.String("draft.id", draft.ID),
		attribute.Float64("itinerary.total_cost", itinerary.EstimatedTotalCost),
		attribute.Float64("itinerary.confidence", itinerary.ConfidenceScore),
	)
	span.SetStatus(codes.Ok, "Itinerary generated successfully")

	return &response_models.ItineraryDraftResponse{
		DraftID:   draft.ID,
		Seed:      seed,
		ExpiresAt: utils.FormatRFC3339DZ(now.Add(s.limits.DraftTTL)),
		Itinerary: itinerary,
	}, nil
}

func (s *ItineraryService) PreviewDestinations(
	ctx context.Context,
	req request_models.GenerateItineraryRequest,
) ([]response_models.DestinationResponse, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "PreviewDestinations", trace.WithAttributes(
		attribute.String("trip.type", req.TripType),
		attribute.String("trip.destination", req.DestinationPreference),
	))
	defer span.End()

	params, err := s.toTripParameters(req)
	if err != nil {
		failSpan(span, err, "Invalid trip parameters")
		return nil, err
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		failSpan(span, err, "Failed to load place catalog")
		return nil, err
	}

	candidates, err := s.generator.SelectDestinations(params, catalog)
	if err != nil {
		failSpan(span, err, "No destinations matched")
		return nil, err
	}

	out := make([]response_models.DestinationResponse, 0, len(candidates))
	for _, p := range candidates {
		out = append(out, response_models.DestinationResponse{
			ID:            p.ID,
			Name:          p.Name,
			Category:      p.Category,
			Province:      p.Province,
			District:      p.District,
			Municipality:  p.Municipality,
			Rating:        p.Rating,
			FeedbackCount: p.FeedbackCount,
		})
	}
	span.SetAttributes(attribute.Int("destinations.count", len(out)))
	span.SetStatus(codes.Ok, "Destinations selected")
	return out, nil
}

// SaveDraft persists a draft as a journey owned by userID. The draft is
// consumed; it is restored with its previous expiry when the write fails so
// the caller can retry. Drafts of other users read as missing.
func (s *ItineraryService) SaveDraft(ctx context.Context, userID string, draftID string) (*response_models.SavedJourneyResponse, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "SaveDraft", trace.WithAttributes(
		attribute.String("draft.id", draftID),
	))
	defer span.End()

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		failSpan(span, utils.ErrUnauthorized, "Invalid user id")
		return nil, utils.ErrUnauthorized
	}

	draft, expiresAt, ok := s.drafts.Take(draftID, userID)
	if !ok {
		failSpan(span, utils.ErrDraftNotFound, "Draft missing, expired or not owned")
		return nil, utils.ErrDraftNotFound
	}

	journeyID, err := s.journeyRepo.SaveGeneratedItinerary(ctx, &repositories.CreateJourneyInput{
		UserID:    userUUID,
		StartDate: draft.Params.StartDate,
		Location:  draft.Params.DestinationPreference,
		TripType:  draft.Params.TripType,
		GroupSize: draft.Params.GroupSize,
		Seed:      draft.Seed,
	}, draft.Itinerary)
	if err != nil {
		s.drafts.Restore(draft, expiresAt)
		s.logger.Error("failed to save itinerary draft",
			zap.Error(err), zap.String("draft_id", draftID))
		failSpan(span, err, "Failed to persist journey")
		return nil, utils.ErrDatabaseError
	}

	s.logger.Info("itinerary draft saved",
		zap.String("draft_id", draftID), zap.String("journey_id", journeyID.String()))
	span.SetAttributes(attribute.String("journey.id", journeyID.String()))
	span.SetStatus(codes.Ok, "Journey saved")
	return &response_models.SavedJourneyResponse{JourneyID: journeyID.String()}, nil
}

func (s *ItineraryService) toTripParameters(req request_models.GenerateItineraryRequest) (planner.TripParameters, error) {
	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return planner.TripParameters{}, errors.Wrapf(utils.ErrInvalidInput, "start_date %q must be YYYY-MM-DD", req.StartDate)
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return planner.TripParameters{}, errors.Wrapf(utils.ErrInvalidInput, "end_date %q must be YYYY-MM-DD", req.EndDate)
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = defaultCurrency
	}
	if len(currency) != 3 {
		return planner.TripParameters{}, errors.Wrapf(utils.ErrInvalidInput, "currency %q must be a 3-letter code", req.Currency)
	}

	params := planner.TripParameters{
		StartDate:               start,
		EndDate:                 end,
		Budget:                  req.Budget,
		Currency:                currency,
		GroupSize:               req.GroupSize,
		TripType:                strings.TrimSpace(req.TripType),
		Interests:               req.Interests,
		DestinationPreference:   strings.TrimSpace(req.DestinationPreference),
		TravelStyle:             req.TravelStyle,
		AccommodationPreference: req.AccommodationPreference,
		ActivityLevel:           req.ActivityLevel,
		SpecialRequirements:     req.SpecialRequirements,
		DietaryRestrictions:     req.DietaryRestrictions,
	}
	if err := params.Validate(); err != nil {
		return planner.TripParameters{}, err
	}

	if s.limits.MaxTripDays > 0 && params.DurationDays() > s.limits.MaxTripDays {
		return planner.TripParameters{}, errors.Wrapf(utils.ErrInvalidInput,
			"trip lasts %d days, at most %d allowed", params.DurationDays(), s.limits.MaxTripDays)
	}
	if s.limits.MaxGroupSize > 0 && params.GroupSize > s.limits.MaxGroupSize {
		return planner.TripParameters{}, errors.Wrapf(utils.ErrInvalidInput,
			"group of %d people, at most %d allowed", params.GroupSize, s.limits.MaxGroupSize)
	}
	return params, nil
}

func (s *ItineraryService) loadCatalog(ctx context.Context) ([]planner.Place, error) {
	rows, err := s.placeRepo.ListCatalog(ctx)
	if err != nil {
		s.logger.Error("failed to load place catalog", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return toPlannerPlaces(rows), nil
}

func toPlannerPlaces(rows []repositories.CatalogRow) []planner.Place {
	catalog := make([]planner.Place, 0, len(rows))
	for _, r := range rows {
		catalog = append(catalog, planner.Place{
			ID:            r.ID.String(),
			Name:          r.Name,
			Category:      r.Category,
			Province:      r.Province,
			District:      r.District,
			Municipality:  r.Municipality,
			Rating:        r.Rating,
			FeedbackCount: r.FeedbackCount,
		})
	}
	return catalog
}

func failSpan(span trace.Span, err error, msg string) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
}
