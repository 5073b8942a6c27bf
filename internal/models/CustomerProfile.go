package models

import (
	"math"

	"gorm.io/gorm"
)

type (
	Goal          string
	ActivityLevel string
)

// Fitness goal choices shown on the profile form.
const (
	GoalLoseWeight Goal = "lose_weight"
	GoalGainMuscle Goal = "gain_muscle"
	GoalMaintain   Goal = "maintain"
	GoalEndurance  Goal = "endurance"
	GoalStrength   Goal = "strength"
)

// Activity level choices, sedentary through extremely active.
const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtremelyActive  ActivityLevel = "extremely_active"
)

// CustomerProfile holds the health attributes for one account. Every account
// gets one at signup regardless of role; it is only meaningful for customers.
type CustomerProfile struct {
	gorm.Model
	UserID uint `json:"user_id" gorm:"uniqueIndex;not null"`

	Age              *uint         `json:"age,omitempty"`
	HeightCm         *float64      `json:"height_cm,omitempty"`
	WeightKg         *float64      `json:"weight_kg,omitempty"`
	Diseases         string        `json:"diseases"`
	Goal             Goal          `json:"goal"`
	ActivityLevel    ActivityLevel `json:"activity_level"`
	Phone            string        `json:"phone"`
	EmergencyContact string        `json:"emergency_contact"`
}

// BMI is weight over height squared, rounded to two decimals. It is computed
// on demand and never stored; nil when either measurement is missing.
func (p *CustomerProfile) BMI() *float64 {
	if p.WeightKg == nil || p.HeightCm == nil || *p.WeightKg == 0 || *p.HeightCm == 0 {
		return nil
	}
	heightM := *p.HeightCm / 100
	bmi := math.Round(*p.WeightKg/(heightM*heightM)*100) / 100
	return &bmi
}

// BMICategory buckets BMI at the 18.5 / 25 / 30 thresholds.
func (p *CustomerProfile) BMICategory() string {
	bmi := p.BMI()
	if bmi == nil {
		return "Unknown"
	}
	switch {
	case *bmi < 18.5:
		return "Underweight"
	case *bmi < 25:
		return "Normal weight"
	case *bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}
