package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmedali8/near-bootcamp-project/internal/domain/accounts"
	"github.com/ahmedali8/near-bootcamp-project/internal/infrastructure/persistence/models"
	"github.com/ahmedali8/near-bootcamp-project/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAccountRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAccountRepository creates a new GORM-based AccountRepository implementation
func NewGormAccountRepository(db *gorm.DB, logger logger.Logger) (accounts.AccountRepository, error) {
	return &gormAccountRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAccountRepository) Create(ctx context.Context, account *accounts.Account) error {
	if err := account.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AccountModel{}
	model.FromDomain(account)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	r.logger.Info("Created account with id ", account.ID)
	return nil
}

func (r *gormAccountRepository) GetByID(ctx context.Context, accountID string) (*accounts.Account, error) {
	var model models.AccountModel
	if err := r.db.WithContext(ctx).Where("id = ?", accountID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("account with id %s: %w", accountID, accounts.ErrNotRegistered)
		}
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormAccountRepository) Exists(ctx context.Context, accountID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AccountModel{}).
		Where("id = ?", accountID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return count > 0, nil
}

func (r *gormAccountRepository) List(ctx context.Context, query *accounts.AccountQuery) ([]*accounts.Account, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.AccountModel
	dbQuery := r.db.WithContext(ctx).Model(&models.AccountModel{}).
		Order("date_time_created desc").Order("id desc")

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}

	domainList := make([]*accounts.Account, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormAccountRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AccountModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}
