package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bustrip-backend/internal/database/models"
	apperrors "bustrip-backend/internal/errors"
	"bustrip-backend/internal/logger"
	"bustrip-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateEquipmentRequest represents the request to add a bus to the fleet
type CreateEquipmentRequest struct {
	BusNumber    string `json:"bus_number" validate:"required,max=50"`
	Make         string `json:"make,omitempty" validate:"max=100"`
	Model        string `json:"model,omitempty" validate:"max=100"`
	Capacity     int    `json:"capacity" validate:"gte=0"`
	LicensePlate string `json:"license_plate,omitempty" validate:"max=20"`
}

// EquipmentResponse represents a bus of the fleet
type EquipmentResponse struct {
	ID           uuid.UUID `json:"id"`
	BusNumber    string    `json:"bus_number"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Capacity     int       `json:"capacity"`
	LicensePlate string    `json:"license_plate"`
	IsActive     bool      `json:"is_active"`
	Documents    []string  `json:"documents,omitempty"`
	CreatedAt    string    `json:"created_at"`
}

// EquipmentListResponse represents a paginated list of equipment
type EquipmentListResponse struct {
	Equipment []EquipmentResponse `json:"equipment"`
	Total     int64               `json:"total"`
	Page      int                 `json:"page"`
	PageSize  int                 `json:"page_size"`
}

// CreateDriverRequest represents the request to register a user as a driver
type CreateDriverRequest struct {
	UserID         uuid.UUID  `json:"user_id" validate:"required"`
	LicenseNumber  string     `json:"license_number" validate:"required,max=50"`
	LicenseExpires *time.Time `json:"license_expires,omitempty"`
}

// DriverResponse represents a bus driver
type DriverResponse struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	FullName       string     `json:"full_name,omitempty"`
	Email          string     `json:"email,omitempty"`
	LicenseNumber  string     `json:"license_number"`
	LicenseExpires *time.Time `json:"license_expires,omitempty"`
	IsActive       bool       `json:"is_active"`
	Documents      []string   `json:"documents,omitempty"`
	CreatedAt      string     `json:"created_at"`
}

// DriverListResponse represents a paginated list of drivers
type DriverListResponse struct {
	Drivers  []DriverResponse `json:"drivers"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// FleetService manages the buses and drivers shared by all organizations
type FleetService struct {
	equipment repository.EquipmentRepositoryInterface
	drivers   repository.DriverRepositoryInterface
	users     repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewFleetService creates a new fleet service
func NewFleetService(
	equipment repository.EquipmentRepositoryInterface,
	drivers repository.DriverRepositoryInterface,
	users repository.UserRepositoryInterface,
	validator *validator.Validate,
) *FleetService {
	return &FleetService{
		equipment: equipment,
		drivers:   drivers,
		users:     users,
		validator: validator,
	}
}

// CreateEquipment adds a bus to the fleet
func (s *FleetService) CreateEquipment(ctx context.Context, actor Actor, req *CreateEquipmentRequest) (*EquipmentResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if err := requireSystemAdmin(s.users, actor); err != nil {
		return nil, err
	}

	busNumber := strings.TrimSpace(req.BusNumber)
	existing, err := s.equipment.GetByBusNumber(busNumber)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing equipment: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrEquipmentExists
	}

	equipment := &models.Equipment{
		BaseModel:    models.BaseModel{CreatedBy: actor.audit(), UpdatedBy: actor.audit()},
		BusNumber:    busNumber,
		Make:         req.Make,
		Model:        req.Model,
		Capacity:     req.Capacity,
		LicensePlate: req.LicensePlate,
		IsActive:     true,
	}
	if err := s.equipment.Create(equipment); err != nil {
		return nil, fmt.Errorf("failed to create equipment: %w", err)
	}

	logger.WithContext(ctx).WithField("equipment_id", equipment.ID.String()).Info("equipment created")
	return toEquipmentResponse(equipment), nil
}

// GetEquipment retrieves a bus by ID
func (s *FleetService) GetEquipment(id uuid.UUID) (*EquipmentResponse, error) {
	equipment, err := s.equipment.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	return toEquipmentResponse(equipment), nil
}

// ListEquipment lists the fleet ordered by bus number
func (s *FleetService) ListEquipment(page, pageSize int) (*EquipmentListResponse, error) {
	limit, offset, page, pageSize := normalizePagination(page, pageSize)

	items, total, err := s.equipment.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}

	responses := make([]EquipmentResponse, len(items))
	for i := range items {
		responses[i] = *toEquipmentResponse(&items[i])
	}

	return &EquipmentListResponse{
		Equipment: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// SetEquipmentActive puts a bus in or out of service
func (s *FleetService) SetEquipmentActive(ctx context.Context, actor Actor, id uuid.UUID, active bool) error {
	if err := requireSystemAdmin(s.users, actor); err != nil {
		return err
	}
	if _, err := s.GetEquipment(id); err != nil {
		return err
	}
	if err := s.equipment.SetActive(id, active); err != nil {
		return fmt.Errorf("failed to update equipment: %w", err)
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"equipment_id": id.String(),
		"active":       active,
	}).Info("equipment status changed")
	return nil
}

// CreateDriver registers an existing user as a driver. A user has at most one driver record.
func (s *FleetService) CreateDriver(ctx context.Context, actor Actor, req *CreateDriverRequest) (*DriverResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if err := requireSystemAdmin(s.users, actor); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	existing, err := s.drivers.GetByUserID(req.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing driver: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDriverExists
	}

	driver := &models.BusDriver{
		BaseModel:      models.BaseModel{CreatedBy: actor.audit(), UpdatedBy: actor.audit()},
		UserID:         req.UserID,
		LicenseNumber:  req.LicenseNumber,
		LicenseExpires: req.LicenseExpires,
		IsActive:       true,
	}
	if err := s.drivers.Create(driver); err != nil {
		return nil, fmt.Errorf("failed to create driver: %w", err)
	}
	driver.User = *user

	logger.WithContext(ctx).WithField("driver_id", driver.ID.String()).Info("driver created")
	return toDriverResponse(driver), nil
}

// GetDriver retrieves a driver by ID
func (s *FleetService) GetDriver(id uuid.UUID) (*DriverResponse, error) {
	driver, err := s.drivers.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return toDriverResponse(driver), nil
}

// ListDrivers lists all drivers
func (s *FleetService) ListDrivers(page, pageSize int) (*DriverListResponse, error) {
	limit, offset, page, pageSize := normalizePagination(page, pageSize)

	drivers, total, err := s.drivers.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get drivers: %w", err)
	}

	responses := make([]DriverResponse, len(drivers))
	for i := range drivers {
		responses[i] = *toDriverResponse(&drivers[i])
	}

	return &DriverListResponse{
		Drivers:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// SetDriverActive activates or deactivates a driver
func (s *FleetService) SetDriverActive(ctx context.Context, actor Actor, id uuid.UUID, active bool) error {
	if err := requireSystemAdmin(s.users, actor); err != nil {
		return err
	}
	if _, err := s.GetDriver(id); err != nil {
		return err
	}
	if err := s.drivers.SetActive(id, active); err != nil {
		return fmt.Errorf("failed to update driver: %w", err)
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"driver_id": id.String(),
		"active":    active,
	}).Info("driver status changed")
	return nil
}

func toEquipmentResponse(e *models.Equipment) *EquipmentResponse {
	resp := &EquipmentResponse{
		ID:           e.ID,
		BusNumber:    e.BusNumber,
		Make:         e.Make,
		Model:        e.Model,
		Capacity:     e.Capacity,
		LicensePlate: e.LicensePlate,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
	}
	for _, doc := range e.Documents {
		resp.Documents = append(resp.Documents, doc.FileName)
	}
	return resp
}

func toDriverResponse(d *models.BusDriver) *DriverResponse {
	resp := &DriverResponse{
		ID:             d.ID,
		UserID:         d.UserID,
		FullName:       d.User.FullName,
		Email:          d.User.Email,
		LicenseNumber:  d.LicenseNumber,
		LicenseExpires: d.LicenseExpires,
		IsActive:       d.IsActive,
		CreatedAt:      d.CreatedAt.Format(time.RFC3339),
	}
	for _, doc := range d.Documents {
		resp.Documents = append(resp.Documents, doc.FileName)
	}
	return resp
}
