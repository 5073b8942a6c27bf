package models

import (
	"time"

	"gorm.io/gorm"
)

// ProgressTracking is one weigh-in for a customer, optionally with a photo.
// Listings order these newest date first.
type ProgressTracking struct {
	gorm.Model
	CustomerID uint `json:"customer_id" gorm:"index;not null"`

	Customer User `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE;" json:"-"`

	WeightKg float64   `json:"weight_kg" gorm:"not null"`
	Date     time.Time `json:"date" gorm:"index"`
	Notes    string    `json:"notes"`
	Photo    string    `json:"photo,omitempty"`
}
