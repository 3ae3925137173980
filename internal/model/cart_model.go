package model

import (
	"time"

	"github.com/google/uuid"
)

type CartItem struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Kind      string     `gorm:"type:varchar(20);not null"` // product, bundle
	ProductId *uuid.UUID `gorm:"type:uuid;index"`
	BundleId  *uuid.UUID `gorm:"type:uuid;index"`
	Size      string     `gorm:"type:varchar(20)"`
	Quantity  int        `gorm:"not null;default:1"`
	Selected  bool       `gorm:"default:true"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`

	Product *Product `gorm:"foreignKey:ProductId"`
	Bundle  *Bundle  `gorm:"foreignKey:BundleId"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
