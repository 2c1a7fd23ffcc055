package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/resto-pro/internal/application/dto"
	"github.com/tu-usuario/resto-pro/internal/domain"
	"github.com/tu-usuario/resto-pro/internal/domain/entity"
	"github.com/tu-usuario/resto-pro/internal/domain/repository"
)

// reservationWindow es la duración estimada de una reserva: dos reservas de la
// misma mesa cuyos horarios se solapen dentro de esta ventana entran en conflicto.
const reservationWindow = 2 * time.Hour

// ReservationUseCase casos de uso de reservas de mesa, desde el storefront y
// desde el back office.
type ReservationUseCase struct {
	repo      repository.ReservationRepository
	tableRepo repository.TableRepository
}

// NewReservationUseCase construye el caso de uso.
func NewReservationUseCase(repo repository.ReservationRepository, tableRepo repository.TableRepository) *ReservationUseCase {
	return &ReservationUseCase{repo: repo, tableRepo: tableRepo}
}

// Create crea una reserva en estado pending. customerID vacío para reservas
// capturadas por staff. Rechaza mesas inexistentes, fechas pasadas y
// solapamientos con otra reserva activa de la misma mesa.
func (uc *ReservationUseCase) Create(customerID string, in dto.CreateReservationRequest) (*dto.ReservationResponse, error) {
	if in.ReservedAt.Before(time.Now()) {
		return nil, domain.ErrInvalidInput
	}
	table, err := uc.tableRepo.GetByID(in.TableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, domain.ErrNotFound
	}
	if in.PartySize > table.Capacity {
		return nil, domain.ErrInvalidInput
	}
	from := in.ReservedAt.Add(-reservationWindow)
	to := in.ReservedAt.Add(reservationWindow)
	overlapping, err := uc.repo.CountActiveByTableWindow(in.TableID, from, to)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		return nil, domain.ErrTableOccupied
	}
	now := time.Now()
	r := &entity.Reservation{
		ID:          uuid.New().String(),
		CustomerID:  customerID,
		TableID:     in.TableID,
		ContactName: in.ContactName,
		Phone:       in.Phone,
		ReservedAt:  in.ReservedAt,
		PartySize:   in.PartySize,
		Status:      entity.ReservationPending,
		Note:        in.Note,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(r); err != nil {
		return nil, err
	}
	return toReservationResponse(r), nil
}

// GetByID obtiene una reserva.
func (uc *ReservationUseCase) GetByID(id string) (*dto.ReservationResponse, error) {
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return toReservationResponse(r), nil
}

// Update edita datos de contacto, horario y tamaño del grupo.
func (uc *ReservationUseCase) Update(id string, in dto.CreateReservationRequest) (*dto.ReservationResponse, error) {
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	r.TableID = in.TableID
	r.ContactName = in.ContactName
	r.Phone = in.Phone
	r.ReservedAt = in.ReservedAt
	r.PartySize = in.PartySize
	r.Note = in.Note
	r.UpdatedAt = time.Now()
	if err := uc.repo.Update(r); err != nil {
		return nil, err
	}
	return toReservationResponse(r), nil
}

// SetStatus mueve la reserva a otro estado del ciclo de vida. Al sentarla se
// marca la mesa como ocupada; al cancelarla la mesa vuelve a libre si estaba
// reservada.
func (uc *ReservationUseCase) SetStatus(id, status string) (*dto.ReservationResponse, error) {
	if !entity.ValidReservationStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.SetStatus(id, status); err != nil {
		return nil, err
	}
	switch status {
	case entity.ReservationConfirmed:
		_ = uc.tableRepo.SetStatus(r.TableID, entity.TableReserved)
	case entity.ReservationSeated:
		_ = uc.tableRepo.SetStatus(r.TableID, entity.TableOccupied)
	case entity.ReservationCancelled:
		if table, terr := uc.tableRepo.GetByID(r.TableID); terr == nil && table != nil && table.Status == entity.TableReserved {
			_ = uc.tableRepo.SetStatus(r.TableID, entity.TableFree)
		}
	}
	r.Status = status
	return toReservationResponse(r), nil
}

// List lista reservas filtrando por estado y rango de fecha.
func (uc *ReservationUseCase) List(status string, from, to *time.Time, limit, offset int) ([]dto.ReservationResponse, error) {
	if status != "" && !entity.ValidReservationStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(status, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReservationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toReservationResponse(r))
	}
	return out, nil
}

// Delete elimina una reserva.
func (uc *ReservationUseCase) Delete(id string) error {
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toReservationResponse(r *entity.Reservation) *dto.ReservationResponse {
	return &dto.ReservationResponse{
		ID:          r.ID,
		CustomerID:  r.CustomerID,
		TableID:     r.TableID,
		ContactName: r.ContactName,
		Phone:       r.Phone,
		ReservedAt:  r.ReservedAt,
		PartySize:   r.PartySize,
		Status:      r.Status,
		Note:        r.Note,
		CreatedAt:   r.CreatedAt,
	}
}
