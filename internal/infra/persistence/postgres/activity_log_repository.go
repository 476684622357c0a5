package postgres

import (
	"context"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// activityLogRepository implements the repository.ActivityLogRepository interface using GORM.
type activityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository is the constructor for activityLogRepository.
func NewActivityLogRepository(db *gorm.DB) repository.ActivityLogRepository {
	return &activityLogRepository{db: db}
}

// Create appends a new activity entry.
func (repo *activityLogRepository) Create(ctx context.Context, log *entity.ActivityLog) error {
	logM := fromActivityLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity log")
	}

	log.ID = logM.ID

	return nil
}

// FindRecent retrieves the latest entries up to limit, newest first, joining
// user summaries.
func (repo *activityLogRepository) FindRecent(ctx context.Context, limit int) ([]*entity.ActivityLog, error) {
	var models []model.ActivityLogModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Order("timestamp DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activity logs")
	}

	logs := make([]*entity.ActivityLog, 0, len(models))
	for i := range models {
		logs = append(logs, toActivityLogDomain(&models[i]))
	}

	return logs, nil
}

// DeleteByUserID removes all entries for a user.
func (repo *activityLogRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.ActivityLogModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete activity logs")
	}

	return nil
}

// --- Mapper Functions ---

// toActivityLogDomain converts a GORM ActivityLogModel to a domain ActivityLog entity.
func toActivityLogDomain(data *model.ActivityLogModel) *entity.ActivityLog {
	if data == nil {
		return nil
	}

	return &entity.ActivityLog{
		ID:        data.ID,
		UserID:    data.UserID,
		User:      toUserSummary(data.User),
		Action:    entity.Action(data.Action),
		IPAddress: data.IPAddress,
		Timestamp: data.Timestamp,
	}
}

// fromActivityLogDomain converts a domain ActivityLog entity to a GORM ActivityLogModel.
func fromActivityLogDomain(data *entity.ActivityLog) *model.ActivityLogModel {
	if data == nil {
		return nil
	}

	return &model.ActivityLogModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Action:    string(data.Action),
		IPAddress: data.IPAddress,
		Timestamp: data.Timestamp,
	}
}
