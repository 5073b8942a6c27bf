package models

import "gorm.io/gorm"

// WorkoutPlan mirrors DietPlan ownership: one owning customer, optional
// trainer attribution cleared on trainer removal.
type WorkoutPlan struct {
	gorm.Model
	CustomerID uint  `json:"customer_id" gorm:"index;not null"`
	TrainerID  *uint `json:"trainer_id,omitempty" gorm:"index"`

	Customer User  `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE;" json:"-"`
	Trainer  *User `gorm:"foreignKey:TrainerID;constraint:OnDelete:SET NULL;" json:"-"`

	Title       string `json:"title" gorm:"size:120;not null"`
	Description string `json:"description"`

	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
	Saturday  string `json:"saturday"`
	Sunday    string `json:"sunday"`

	// Defaults applied by the create handler, not the column: gorm treats
	// false and 0 as zero values and would replace them with the column
	// default on Create.
	DurationWeeks uint `json:"duration_weeks"`
	IsActive      bool `json:"is_active"`
}
