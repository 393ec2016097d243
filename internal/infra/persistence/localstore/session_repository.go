package localstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"elegance/internal/domain/entity"
	"elegance/internal/domain/repository"
	"elegance/internal/errors"
	"elegance/internal/infra/kvstore"
)

// keyUser is the snapshot key holding the current session record.
const keyUser = "user"

// sessionRepository implements repository.SessionRepository over the kvstore.
type sessionRepository struct {
	store  kvstore.Store
	logger *slog.Logger
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(store kvstore.Store, logger *slog.Logger) repository.SessionRepository {
	return &sessionRepository{store: store, logger: logger}
}

// Load reads the persisted session record. Absent or corrupt records read as
// signed out.
func (repo *sessionRepository) Load(ctx context.Context) (*entity.User, error) {
	data, err := repo.store.Get(ctx, keyUser)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load session record")
	}

	var user entity.User
	if err := json.Unmarshal(data, &user); err != nil {
		repo.logger.Warn("Discarding corrupt session record", slog.Any("error", err))

		return nil, nil
	}

	return &user, nil
}

// Save persists the session record.
func (repo *sessionRepository) Save(ctx context.Context, user *entity.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "failed to encode session record")
	}

	if err := repo.store.Set(ctx, keyUser, data); err != nil {
		return errors.Wrap(err, "failed to persist session record")
	}

	return nil
}

// Clear removes the persisted record.
func (repo *sessionRepository) Clear(ctx context.Context) error {
	return errors.Wrap(repo.store.Delete(ctx, keyUser), "failed to clear session record")
}
