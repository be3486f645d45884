package services

import (
	"github.com/goncalvesethan/park-manager-api/app/models"
	"github.com/goncalvesethan/park-manager-api/app/repo"
)

type IncidentService struct{ incidents *repo.IncidentRepository }

func NewIncidentService(incidents *repo.IncidentRepository) *IncidentService {
	return &IncidentService{incidents: incidents}
}

// Create opens a new incident. Status is forced to open regardless of
// what the caller supplied.
func (s *IncidentService) Create(i *models.Incident) error {
	i.Status = models.IncidentStatusOpen
	return s.incidents.Create(i)
}

func (s *IncidentService) ListActive() ([]models.Incident, error) { return s.incidents.ListActive() }

func (s *IncidentService) GetByID(id uint) (*models.Incident, error) {
	return s.incidents.FindByID(id)
}

func (s *IncidentService) Update(id uint, in *models.Incident) (*models.Incident, error) {
	i, err := s.incidents.FindByID(id)
	if err != nil {
		return nil, err
	}
	i.ReporterID = in.ReporterID
	i.DeviceID = in.DeviceID
	i.Type = in.Type
	i.Status = in.Status
	i.Description = in.Description
	if err := s.incidents.Save(i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *IncidentService) Close(id uint) (*models.Incident, error) {
	i, err := s.incidents.FindByID(id)
	if err != nil {
		return nil, err
	}
	i.Status = models.IncidentStatusClosed
	if err := s.incidents.Save(i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *IncidentService) SoftDelete(id uint) error { return s.incidents.SoftDelete(id) }
