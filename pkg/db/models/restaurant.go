package models

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant is the tenant row every other table hangs off.
type Restaurant struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name         string    `gorm:"column:name;not null"`
	BusinessName string    `gorm:"column:business_name;not null;default:''"`
	GSTIN        string    `gorm:"column:gstin;not null;default:''"`
	IsOnline     bool      `gorm:"column:is_online;not null;default:false"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Restaurant) TableName() string { return "restaurants" }
