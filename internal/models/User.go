package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username  string  `json:"username" gorm:"uniqueIndex;not null"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email" gorm:"uniqueIndex;not null"`
	Password  string  `json:"-"`
	Roles     RoleSet `json:"roles" gorm:"type:text"`

	Profile         *CustomerProfile   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"profile,omitempty"`
	DietPlans       []DietPlan         `gorm:"foreignKey:CustomerID" json:"diet_plans,omitempty"`
	WorkoutPlans    []WorkoutPlan      `gorm:"foreignKey:CustomerID" json:"workout_plans,omitempty"`
	ProgressRecords []ProgressTracking `gorm:"foreignKey:CustomerID" json:"progress_records,omitempty"`
}

// FullName is what trainer-facing listings and notifications show.
func (u *User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
