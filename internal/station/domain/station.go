package domain

import (
	"time"

	"gorm.io/gorm"
)

// Station represents one serving station at the event
type Station struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	Location  string         `json:"location"`
	Status    string         `json:"status" gorm:"default:'active'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Station) TableName() string {
	return "stations"
}

// IsActive reports whether the station is open for orders
func (s *Station) IsActive() bool {
	return s.Status == "active"
}

// StationRepository defines the contract for station identity data access
type StationRepository interface {
	Create(station *Station) error
	FindByID(id uint) (*Station, error)
	FindAll(limit, offset int) ([]Station, error)
	Update(station *Station) error
	Delete(id uint) error
}
