package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "myguide/internal/models/db_models"
	"myguide/internal/planner"
	"myguide/pkg/utils"
)

type JourneyRepository interface {
	SaveGeneratedItinerary(ctx context.Context, in *CreateJourneyInput, itinerary *planner.GeneratedItinerary) (uuid.UUID, error)
	GetListOfJourneyByUserId(ctx context.Context, page int, pagesize int, userId string) ([]dbm.Journey, error)
	GetDetailsOfJourneyById(ctx context.Context, journeyId string) (*dbm.Journey, error)
	CountTripTypesByUser(ctx context.Context, userId string) ([]TripTypeCount, error)
	CountTripTypesSince(ctx context.Context, since int64) ([]TripTypeCount, error)
}

// TripTypeCount is one row of a trip type histogram, most frequent first.
type TripTypeCount struct {
	TripType string
	Count    int64
}

// ErrInvalidPlaceID marks an itinerary activity that does not reference a catalog place.
var ErrInvalidPlaceID = errors.New("activity place id is not a uuid")

type CreateJourneyInput struct {
	UserID    uuid.UUID
	StartDate time.Time // calendar date of day 1
	Location  string
	TripType  string
	GroupSize int
	Seed      int64
}

type journeyRepository struct {
	db *gorm.DB
}

func NewJourneyRepository(db *gorm.DB) JourneyRepository {
	return &journeyRepository{db: db}
}

// SaveGeneratedItinerary writes the journey, its days and their activities in
// one transaction. An activity whose place id is not a uuid aborts the save.
func (r *journeyRepository) SaveGeneratedItinerary(
	ctx context.Context,
	in *CreateJourneyInput,
	itinerary *planner.GeneratedItinerary,
) (uuid.UUID, error) {
	j, err := buildJourneyRecord(in, itinerary)
	if err != nil {
		return uuid.Nil, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(j).Error; err != nil {
			return errors.Wrap(err, "create journey")
		}

		for i := range j.Days {
			day := &j.Days[i]
			day.JourneyID = j.ID
			if err := tx.Omit(clause.Associations).Create(day).Error; err != nil {
				return errors.Wrapf(err, "create journey day %d", day.DayNumber)
			}
			if len(day.Activities) == 0 {
				continue
			}
			for k := range day.Activities {
				day.Activities[k].JourneyDayID = day.ID
			}
			if err := tx.Omit(clause.Associations).Create(&day.Activities).Error; err != nil {
				return errors.Wrapf(err, "create activities for day %d", day.DayNumber)
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return j.ID, nil
}

// buildJourneyRecord maps a generated itinerary onto journey rows. Clock
// times are placed on each day's Algiers calendar date.
func buildJourneyRecord(in *CreateJourneyInput, itinerary *planner.GeneratedItinerary) (*dbm.Journey, error) {
	if in == nil || itinerary == nil {
		return nil, errors.New("journey input and itinerary are required")
	}

	baseDate := utils.AlgiersMidnight(in.StartDate)
	endUnix := baseDate.AddDate(0, 0, max(itinerary.DurationDays-1, 0)).Unix()

	j := &dbm.Journey{
		UserID:          in.UserID,
		Title:           itinerary.Title,
		Description:     itinerary.Description,
		StartDate:       baseDate.Unix(),
		EndDate:         &endUnix,
		Location:        in.Location,
		TripType:        in.TripType,
		GroupSize:       in.GroupSize,
		Currency:        itinerary.Currency,
		EstimatedTotal:  itinerary.EstimatedTotalCost,
		ConfidenceScore: itinerary.ConfidenceScore,
		Seed:            in.Seed,
		Days:            make([]dbm.JourneyDay, 0, len(itinerary.DailyPlans)),
	}

	for _, d := range itinerary.DailyPlans {
		dayDate := baseDate.AddDate(0, 0, d.DayNumber-1)
		jd := dbm.JourneyDay{
			Date:        dayDate,
			DayNumber:   d.DayNumber,
			Title:       d.Title,
			Description: d.Description,
			Activities:  make([]dbm.JourneyActivity, 0, len(d.Activities)),
		}

		for _, a := range d.Activities {
			placeID, err := uuid.Parse(a.PlaceID)
			if err != nil {
				return nil, errors.Wrapf(ErrInvalidPlaceID, "day %d place %q", d.DayNumber, a.PlaceID)
			}

			start := dayDate
			if t, ok := utils.AtClock(dayDate, a.StartTime); ok {
				start = t
			}
			var endPtr *time.Time
			if t, ok := utils.AtClock(dayDate, a.EndTime); ok {
				endPtr = &t
			}

			jd.Activities = append(jd.Activities, dbm.JourneyActivity{
				Time:            start,
				EndTime:         endPtr,
				ActivityType:    a.ActivityType,
				SelectedPlaceID: placeID,
				DurationMinutes: a.DurationMinutes,
				EstimatedCost:   a.EstimatedCost,
				Notes:           a.Notes,
			})
		}
		j.Days = append(j.Days, jd)
	}
	return j, nil
}

func (r *journeyRepository) GetListOfJourneyByUserId(ctx context.Context, page int, pagesize int, userId string) ([]dbm.Journey, error) {

	var journeys []dbm.Journey
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("start_date DESC").
		Offset((page - 1) * pagesize).
		Limit(pagesize).
		Find(&journeys).Error

	if err != nil {
		return nil, err
	}

	return journeys, nil
}

func (r *journeyRepository) GetDetailsOfJourneyById(ctx context.Context, journeyId string) (*dbm.Journey, error) {

	var journey dbm.Journey
	err := r.db.WithContext(ctx).
		Where("id = ?", journeyId).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number")
		}).
		Preload("Days.Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("time")
		}).
		Preload("Days.Activities.SelectedPlace").
		First(&journey).Error

	if err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &journey, nil
}

func (r *journeyRepository) CountTripTypesByUser(ctx context.Context, userId string) ([]TripTypeCount, error) {
	return r.countTripTypes(r.db.WithContext(ctx).Where("user_id = ?", userId))
}

// CountTripTypesSince counts journeys saved at or after since (unix seconds).
func (r *journeyRepository) CountTripTypesSince(ctx context.Context, since int64) ([]TripTypeCount, error) {
	return r.countTripTypes(r.db.WithContext(ctx).Where("created_at >= ?", since))
}

func (r *journeyRepository) countTripTypes(scope *gorm.DB) ([]TripTypeCount, error) {
	var counts []TripTypeCount
	err := scope.
		Model(&dbm.Journey{}).
		Select("trip_type, COUNT(*) AS count").
		Where("trip_type <> ''").
		Group("trip_type").
		Order("count DESC, trip_type").
		Scan(&counts).Error
	if err != nil {
		return nil, errors.Wrap(err, "count trip types")
	}
	return counts, nil
}
