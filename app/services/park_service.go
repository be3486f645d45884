package services

import (
	"github.com/goncalvesethan/park-manager-api/app/models"
	"github.com/goncalvesethan/park-manager-api/app/repo"
)

type ParkService struct{ parks *repo.ParkRepository }

func NewParkService(parks *repo.ParkRepository) *ParkService { return &ParkService{parks: parks} }

func (s *ParkService) Create(p *models.Park) error { return s.parks.Create(p) }

func (s *ParkService) ListActive() ([]models.Park, error) { return s.parks.ListActive() }

func (s *ParkService) GetByID(id uint) (*models.Park, error) { return s.parks.FindByID(id) }

func (s *ParkService) Update(id uint, in *models.Park) (*models.Park, error) {
	p, err := s.parks.FindByID(id)
	if err != nil {
		return nil, err
	}
	p.Name = in.Name
	p.Location = in.Location
	if err := s.parks.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ParkService) SoftDelete(id uint) error { return s.parks.SoftDelete(id) }
