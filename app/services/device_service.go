package services

import (
	"github.com/goncalvesethan/park-manager-api/app/models"
	"github.com/goncalvesethan/park-manager-api/app/repo"
)

// DeviceService is the device registry. The MAC address is the only
// identity an unattended device presents, so ResolveByMAC is the trust
// boundary of the whole dispatch protocol; swapping in a stronger
// identity scheme means replacing this lookup and nothing else.
type DeviceService struct{ devices *repo.DeviceRepository }

func NewDeviceService(devices *repo.DeviceRepository) *DeviceService {
	return &DeviceService{devices: devices}
}

// ResolveByMAC maps a hardware address to its device. Exact string
// match, soft-deleted devices excluded. Uniqueness of the address is
// enforced by the schema, so first-match is well defined.
func (s *DeviceService) ResolveByMAC(mac string) (*models.Device, error) {
	return s.devices.FindByMAC(mac)
}

func (s *DeviceService) Create(d *models.Device) error { return s.devices.Create(d) }

func (s *DeviceService) ListActive() ([]models.Device, error) { return s.devices.ListActive() }

func (s *DeviceService) GetByID(id uint) (*models.Device, error) { return s.devices.FindByID(id) }

func (s *DeviceService) Update(id uint, in *models.Device) (*models.Device, error) {
	d, err := s.devices.FindByID(id)
	if err != nil {
		return nil, err
	}
	d.ParkID = in.ParkID
	d.RoomID = in.RoomID
	d.MacAddress = in.MacAddress
	d.Name = in.Name
	d.Brand = in.Brand
	d.Processor = in.Processor
	d.RAM = in.RAM
	d.Storage = in.Storage
	d.IpAddress = in.IpAddress
	if err := s.devices.Save(d); err != nil {
		return nil, err
	}
	return d, nil
}

// UpdateByMAC lets a device self-report its hardware facts. Park and
// room assignments stay administrative and are not touched here.
func (s *DeviceService) UpdateByMAC(mac string, in *models.Device) (*models.Device, error) {
	d, err := s.devices.FindByMAC(mac)
	if err != nil {
		return nil, err
	}
	if in.MacAddress != "" {
		d.MacAddress = in.MacAddress
	}
	d.Brand = in.Brand
	d.Processor = in.Processor
	d.RAM = in.RAM
	d.Storage = in.Storage
	d.IpAddress = in.IpAddress
	if err := s.devices.Save(d); err != nil {
		return nil, err
	}
	return d, nil
}

// SetOfflineByMAC clears the device's IP address, which is the online
// signal.
func (s *DeviceService) SetOfflineByMAC(mac string) (*models.Device, error) {
	d, err := s.devices.FindByMAC(mac)
	if err != nil {
		return nil, err
	}
	d.IpAddress = nil
	if err := s.devices.Save(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DeviceService) SoftDelete(id uint) error { return s.devices.SoftDelete(id) }
