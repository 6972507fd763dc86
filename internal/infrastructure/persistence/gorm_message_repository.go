package persistence

import (
	"context"
	"fmt"

	"github.com/ahmedali8/near-bootcamp-project/internal/domain/messages"
	"github.com/ahmedali8/near-bootcamp-project/internal/infrastructure/persistence/models"
	"github.com/ahmedali8/near-bootcamp-project/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormMessageRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormMessageRepository creates a new GORM-based MessageRepository implementation
func NewGormMessageRepository(db *gorm.DB, logger logger.Logger) (messages.MessageRepository, error) {
	return &gormMessageRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormMessageRepository) Create(ctx context.Context, message *messages.Message) error {
	if err := message.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.MessageModel{}
	model.FromDomain(message)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	r.logger.Info("Created message with id ", message.ID, " in chat ", message.ChatID)
	return nil
}

func (r *gormMessageRepository) ListByChatID(ctx context.Context, chatID string, query *messages.MessageQuery) ([]*messages.Message, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.MessageModel
	dbQuery := r.db.WithContext(ctx).Model(&models.MessageModel{}).
		Where("chat_id = ?", chatID).
		Order("seq desc")

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	domainList := make([]*messages.Message, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormMessageRepository) CountByChatID(ctx context.Context, chatID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.MessageModel{}).
		Where("chat_id = ?", chatID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return count, nil
}
