package repository

import (
	"gorm.io/gorm"

	"github.com/cafeops/eventbrew/internal/station/domain"
)

type GormStationRepository struct {
	db *gorm.DB
}

func NewGormStationRepository(db *gorm.DB) *GormStationRepository {
	return &GormStationRepository{db: db}
}

func (r *GormStationRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Station{})
}

func (r *GormStationRepository) Create(station *domain.Station) error {
	return r.db.Create(station).Error
}

func (r *GormStationRepository) FindByID(id uint) (*domain.Station, error) {
	var station domain.Station
	err := r.db.First(&station, id).Error
	if err != nil {
		return nil, err
	}
	return &station, nil
}

func (r *GormStationRepository) FindAll(limit, offset int) ([]domain.Station, error) {
	var stations []domain.Station
	err := r.db.Limit(limit).Offset(offset).Find(&stations).Error
	return stations, err
}

func (r *GormStationRepository) Update(station *domain.Station) error {
	return r.db.Save(station).Error
}

func (r *GormStationRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Station{}, id).Error
}
