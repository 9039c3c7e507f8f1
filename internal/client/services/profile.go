// Package services contains application services for the Finz coach client.
// This file defines the profile service: the locally persisted user profile
// that tells the chat which user to mount and how to greet them.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Finz-2025/finz-coach/internal/client/models"
	"github.com/Finz-2025/finz-coach/internal/client/repositories/profile"
	"github.com/Finz-2025/finz-coach/internal/common"
	"github.com/Finz-2025/finz-coach/internal/dbx"
	"github.com/Finz-2025/finz-coach/internal/logging"
)

// profileSavedAtKey records when the profile was last written.
const profileSavedAtKey = "PROFILE_SAVED_AT"

// ProfileService manages the local user profile.
//
// Contract:
//   - Load: return the stored profile, or common.ErrorNoProfile.
//   - Save: validate and persist the profile.
//   - Has: report whether a profile is stored.
//   - Clear: remove the stored profile.
type ProfileService interface {
	Load(ctx context.Context) (models.Profile, error)
	Save(ctx context.Context, p models.Profile) error
	Has(ctx context.Context) (bool, error)
	Clear(ctx context.Context) error
}

type profileService struct {
	db  *sql.DB
	log logging.Logger
	now func() time.Time
}

// NewProfileService returns a ProfileService backed by db, which must have
// been migrated (see client.InitDatabase).
func NewProfileService(db *sql.DB, log logging.Logger) ProfileService {
	if log == nil {
		log = logging.NewNop()
	}
	return &profileService{db: db, log: log, now: time.Now}
}

func (s *profileService) repo(db dbx.DBTX) profile.Repository {
	return profile.NewSQLiteRepository(db)
}

func (s *profileService) Load(ctx context.Context) (models.Profile, error) {
	raw, err := s.repo(s.db).Get(ctx, common.ProfileKey)
	if errors.Is(err, common.ErrorNotFound) {
		return models.Profile{}, common.ErrorNoProfile
	}
	if err != nil {
		return models.Profile{}, err
	}

	var p models.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return models.Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	return p, nil
}

// Save writes the profile and its timestamp in one transaction.
func (s *profileService) Save(ctx context.Context, p models.Profile) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %w", common.ErrorValidation, err)
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	savedAt := []byte(s.now().UTC().Format(time.RFC3339))

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, common.ProfileKey, raw); err != nil {
			return err
		}
		return repo.Set(ctx, profileSavedAtKey, savedAt)
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "profile saved", "user_id", p.UserID)
	return nil
}

func (s *profileService) Has(ctx context.Context) (bool, error) {
	_, err := s.repo(s.db).Get(ctx, common.ProfileKey)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, common.ErrorNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (s *profileService) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Delete(ctx, common.ProfileKey); err != nil {
			return err
		}
		return repo.Delete(ctx, profileSavedAtKey)
	})
}
