package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rashikfit/backend/internal/domain"
)

// WeightEntryInput is a new progress log row
type WeightEntryInput struct {
	Date         time.Time           `json:"date"`
	Weight       float64             `json:"weight"`
	Measurements domain.Measurements `json:"measurements"`
}

// ProgressService keeps the weight and body composition log
type ProgressService struct {
	repo   domain.UserDataRepository
	logger logrus.FieldLogger
	now    func() time.Time
	newID  func() string
}

func NewProgressService(repo domain.UserDataRepository, logger logrus.FieldLogger) *ProgressService {
	return &ProgressService{repo: repo, logger: logger, now: time.Now, newID: uuid.NewString}
}

// Add stores an entry. Body fat is estimated when the saved calculator session
// provides gender and height and the needed circumferences are present.
func (s *ProgressService) Add(ctx context.Context, userID string, in WeightEntryInput) (domain.WeightEntry, error) {
	if in.Weight <= 0 {
		return domain.WeightEntry{}, fmt.Errorf("%w: weight must be > 0", domain.ErrInvalidRequest)
	}
	if in.Date.IsZero() {
		in.Date = s.now()
	}

	entry := domain.WeightEntry{
		ID:           s.newID(),
		OwnerID:      userID,
		Date:         in.Date,
		Weight:       in.Weight,
		Measurements: in.Measurements,
	}

	state, err := s.repo.CalculatorState(ctx, userID)
	if err != nil {
		return domain.WeightEntry{}, err
	}
	if state != nil {
		if bf, ok := BodyComposition(state.UserData.Gender, state.UserData.Height, in.Weight, in.Measurements); ok {
			pct := bf.Percentage
			entry.BodyFatPercentage = &pct
			entry.BodyFatMass = bf.FatMassKg
			entry.LeanMass = bf.LeanMassKg
		}
	}

	entries, err := s.repo.WeightEntries(ctx, userID)
	if err != nil {
		return domain.WeightEntry{}, err
	}
	entries = append(entries, entry)
	sortEntries(entries)
	if err := s.repo.SaveWeightEntries(ctx, userID, entries); err != nil {
		return domain.WeightEntry{}, err
	}

	s.logger.WithFields(logrus.Fields{"user_id": userID, "entry_id": entry.ID}).Debug("progress entry added")
	return entry, nil
}

// List returns the log, most recent first
func (s *ProgressService) List(ctx context.Context, userID string) ([]domain.WeightEntry, error) {
	entries, err := s.repo.WeightEntries(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortEntries(entries)
	return entries, nil
}

func (s *ProgressService) Delete(ctx context.Context, userID, entryID string) error {
	entries, err := s.repo.WeightEntries(ctx, userID)
	if err != nil {
		return err
	}
	kept := make([]domain.WeightEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return fmt.Errorf("%w: %s", domain.ErrEntryNotFound, entryID)
	}
	return s.repo.SaveWeightEntries(ctx, userID, kept)
}

func sortEntries(entries []domain.WeightEntry) {
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date.After(entries[j].Date) })
}
