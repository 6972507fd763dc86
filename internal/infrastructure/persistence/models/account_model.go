package models

import (
	"time"

	"github.com/ahmedali8/near-bootcamp-project/internal/domain/accounts"
)

// AccountModel is the GORM database model for registered accounts (infrastructure concern)
type AccountModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(64)"`
	DateTimeCreated time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (AccountModel) TableName() string {
	return "accounts"
}

// ToDomain converts GORM model to domain entity
func (m *AccountModel) ToDomain() *accounts.Account {
	return &accounts.Account{
		ID:              m.ID,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AccountModel) FromDomain(a *accounts.Account) {
	m.ID = a.ID
	m.DateTimeCreated = a.DateTimeCreated
}
