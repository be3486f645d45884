package services

import (
	"github.com/goncalvesethan/park-manager-api/app/models"
	"github.com/goncalvesethan/park-manager-api/app/repo"
)

type RoomService struct{ rooms *repo.RoomRepository }

func NewRoomService(rooms *repo.RoomRepository) *RoomService { return &RoomService{rooms: rooms} }

func (s *RoomService) Create(r *models.Room) error { return s.rooms.Create(r) }

func (s *RoomService) ListActive() ([]models.Room, error) { return s.rooms.ListActive() }

func (s *RoomService) GetByID(id uint) (*models.Room, error) { return s.rooms.FindByID(id) }

func (s *RoomService) Update(id uint, in *models.Room) (*models.Room, error) {
	r, err := s.rooms.FindByID(id)
	if err != nil {
		return nil, err
	}
	r.ParkID = in.ParkID
	r.Name = in.Name
	r.Type = in.Type
	r.Capacity = in.Capacity
	if err := s.rooms.Save(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *RoomService) SoftDelete(id uint) error { return s.rooms.SoftDelete(id) }
