package models

import (
	"time"

	"github.com/ahmedali8/near-bootcamp-project/internal/domain/friendships"
)

// FriendshipModel is the GORM database model for friendships. One row per
// direction; AddFriend writes both.
type FriendshipModel struct {
	AccountID       string    `gorm:"primaryKey;type:varchar(64)"`
	FriendID        string    `gorm:"primaryKey;type:varchar(64)"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (FriendshipModel) TableName() string {
	return "friendships"
}

// ToDomain converts GORM model to domain entity
func (m *FriendshipModel) ToDomain() *friendships.Friendship {
	return &friendships.Friendship{
		AccountID:       m.AccountID,
		FriendID:        m.FriendID,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *FriendshipModel) FromDomain(f *friendships.Friendship) {
	m.AccountID = f.AccountID
	m.FriendID = f.FriendID
	m.DateTimeCreated = f.DateTimeCreated
}
