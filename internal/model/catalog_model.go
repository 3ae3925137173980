package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Category struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Slug        string    `gorm:"type:varchar(120);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Category) TableName() string {
	return "categories"
}

type Product struct {
	Id          uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CategoryId  uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Name        string                      `gorm:"type:varchar(255);not null;index"`
	Slug        string                      `gorm:"type:varchar(280);uniqueIndex;not null"`
	Description string                      `gorm:"type:text"`
	Brand       string                      `gorm:"type:varchar(100);index"`
	Price       float64                     `gorm:"type:decimal(12,2);not null"`
	Stock       int                         `gorm:"not null;default:0"`
	Sizes       datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Colors      datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	ImageURL    string                      `gorm:"type:text"`
	IsActive    bool                        `gorm:"default:true;index"`
	SalesCount  int                         `gorm:"default:0"`
	CreatedAt   time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt              `gorm:"index"`

	Category Category `gorm:"foreignKey:CategoryId"`
}

func (Product) TableName() string {
	return "products"
}

type Bundle struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string         `gorm:"type:varchar(255);not null;index"`
	Slug        string         `gorm:"type:varchar(280);uniqueIndex;not null"`
	Description string         `gorm:"type:text"`
	Price       float64        `gorm:"type:decimal(12,2);not null"`
	Stock       int            `gorm:"not null;default:0"`
	ImageURL    string         `gorm:"type:text"`
	IsActive    bool           `gorm:"default:true;index"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	Items []BundleItem `gorm:"foreignKey:BundleId"`
}

func (Bundle) TableName() string {
	return "bundles"
}

type BundleItem struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BundleId  uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductId uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null;default:1"`

	Product Product `gorm:"foreignKey:ProductId"`
}

func (BundleItem) TableName() string {
	return "bundle_items"
}
