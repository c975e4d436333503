package postgres

import (
	"context"

	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	"authgate/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements repository.SessionRepository using GORM.
type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (repo *sessionRepository) Create(ctx context.Context, session *entity.UserSession) error {
	sessionM := &model.UserSessionModel{
		SessionID: session.SessionID,
		UserID:    session.UserID,
		CreatedAt: session.CreatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	return nil
}

func (repo *sessionRepository) FindBySessionID(ctx context.Context, sessionID string) (*entity.UserSession, error) {
	var sessionM model.UserSessionModel
	if err := repo.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	return &entity.UserSession{
		SessionID: sessionM.SessionID,
		UserID:    sessionM.UserID,
		CreatedAt: sessionM.CreatedAt,
	}, nil
}

func (repo *sessionRepository) DeleteBySessionID(ctx context.Context, sessionID string) error {
	result := repo.db.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&model.UserSessionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}
