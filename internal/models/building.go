package models

// Building is immutable reference data. Rows are seeded once when the
// table is empty and are read-only afterwards.
type Building struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null;size:200"`
	Latitude    float64 `json:"latitude" gorm:"type:decimal(10,7);not null"`
	Longitude   float64 `json:"longitude" gorm:"type:decimal(10,7);not null"`
	Category    string  `json:"category" gorm:"not null;size:50"`
	Description string  `json:"description" gorm:"type:text"`
	Icon        string  `json:"icon" gorm:"size:50"`
}

func (Building) TableName() string {
	return "buildings"
}
