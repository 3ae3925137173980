package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status          string     `gorm:"type:varchar(50);not null;default:'PENDING';index"`
	PaymentMethod   string     `gorm:"type:varchar(50);not null"`
	PaymentStatus   string     `gorm:"type:varchar(50);not null;default:'pending'"`
	SnapToken       string     `gorm:"type:varchar(255)"`
	SnapRedirectURL string     `gorm:"type:text"`
	Subtotal        float64    `gorm:"type:decimal(12,2);not null"`
	ShippingFee     float64    `gorm:"type:decimal(12,2);not null;default:0"`
	Total           float64    `gorm:"type:decimal(12,2);not null"`
	ShippingAddress string     `gorm:"type:text"`
	PlacedAt        time.Time  `gorm:"not null;index"`
	PaidAt          *time.Time
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`

	User  User        `gorm:"foreignKey:UserId"`
	Items []OrderItem `gorm:"foreignKey:OrderId"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderId   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Kind      string     `gorm:"type:varchar(20);not null"`
	ProductId *uuid.UUID `gorm:"type:uuid"`
	BundleId  *uuid.UUID `gorm:"type:uuid"`
	Name      string     `gorm:"type:varchar(255);not null"`
	Size      string     `gorm:"type:varchar(20)"`
	UnitPrice float64    `gorm:"type:decimal(12,2);not null"`
	Quantity  int        `gorm:"not null"`
	Subtotal  float64    `gorm:"type:decimal(12,2);not null"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
