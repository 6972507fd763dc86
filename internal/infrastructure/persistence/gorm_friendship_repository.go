package persistence

import (
	"context"
	"fmt"

	"github.com/ahmedali8/near-bootcamp-project/internal/domain/friendships"
	"github.com/ahmedali8/near-bootcamp-project/internal/infrastructure/persistence/models"
	"github.com/ahmedali8/near-bootcamp-project/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormFriendshipRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormFriendshipRepository creates a new GORM-based FriendshipRepository implementation
func NewGormFriendshipRepository(db *gorm.DB, logger logger.Logger) (friendships.FriendshipRepository, error) {
	return &gormFriendshipRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormFriendshipRepository) Upsert(ctx context.Context, friendship *friendships.Friendship) error {
	if err := friendship.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.FriendshipModel{}
	model.FromDomain(friendship)

	// Re-adding an existing friend is a no-op.
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(model).Error; err != nil {
		return fmt.Errorf("failed to store friendship: %w", err)
	}

	r.logger.Info("Stored friendship ", friendship.AccountID, " -> ", friendship.FriendID)
	return nil
}

func (r *gormFriendshipRepository) Exists(ctx context.Context, accountID, friendID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.FriendshipModel{}).
		Where("account_id = ? AND friend_id = ?", accountID, friendID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check friendship existence: %w", err)
	}
	return count > 0, nil
}
