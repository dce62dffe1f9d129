package domain

import "time"

// Measurements are circumferences in cm
type Measurements struct {
	Neck  *float64 `json:"neck,omitempty"`
	Waist *float64 `json:"waist,omitempty"` // at navel
	Hips  *float64 `json:"hips,omitempty"`  // females, largest point
	Thigh *float64 `json:"thigh,omitempty"`
}

// WeightEntry is one row of the progress log
type WeightEntry struct {
	ID                string       `json:"id"`
	OwnerID           string       `json:"userId"`
	Date              time.Time    `json:"date"`
	Weight            float64      `json:"weight"` // kg
	Measurements      Measurements `json:"measurements"`
	BodyFatPercentage *float64     `json:"bodyFatPercentage,omitempty"`
	BodyFatMass       *float64     `json:"bodyFatMass,omitempty"` // kg
	LeanMass          *float64     `json:"leanMass,omitempty"`    // kg
}

// BodyFatResult is the outcome of a U.S. Navy body fat estimate
type BodyFatResult struct {
	Percentage float64  `json:"percentage"`
	Category   string   `json:"category"`
	FatMassKg  *float64 `json:"fatMassKg,omitempty"`
	LeanMassKg *float64 `json:"leanMassKg,omitempty"`
}
