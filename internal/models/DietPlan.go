package models

import "gorm.io/gorm"

// DietPlan belongs to exactly one customer and records which trainer wrote
// it. Removing the trainer clears the attribution, it never cascades to the
// plan itself.
type DietPlan struct {
	gorm.Model
	CustomerID uint  `json:"customer_id" gorm:"index;not null"`
	TrainerID  *uint `json:"trainer_id,omitempty" gorm:"index"`

	Customer User  `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE;" json:"-"`
	Trainer  *User `gorm:"foreignKey:TrainerID;constraint:OnDelete:SET NULL;" json:"-"`

	Title          string `json:"title" gorm:"size:120;not null"`
	Description    string `json:"description"`
	Breakfast      string `json:"breakfast"`
	Lunch          string `json:"lunch"`
	Dinner         string `json:"dinner"`
	Snacks         string `json:"snacks"`
	WaterIntake    string `json:"water_intake" gorm:"size:50"`
	Supplements    string `json:"supplements"`
	Notes          string `json:"notes"`
	CaloriesTarget *uint  `json:"calories_target,omitempty"`
	ProteinTarget  *uint  `json:"protein_target,omitempty"`

	// No gorm default here: a column default would overwrite an explicit
	// false on Create. The create handler sets the default instead.
	IsActive bool `json:"is_active"`
}
