package service

import (
	"log"

	"github.com/zxjshishen/CJ-DC/internal/domain"
	"github.com/zxjshishen/CJ-DC/internal/storage"

	"github.com/google/uuid"
)

// fallbackTableNo is used when a checked-in reservation never recorded a
// real table.
const fallbackTableNo = "A1"

type ReservationService struct {
	state    *storage.Session
	gate     *ConfirmGate
	notifier Notifier
}

func NewReservationService(state *storage.Session, gate *ConfirmGate, notifier Notifier) *ReservationService {
	return &ReservationService{state: state, gate: gate, notifier: notifier}
}

// Create books a reservation. A blank customer name is a policy default, not
// an error; a blank date or time is.
func (s *ReservationService) Create(res domain.Reservation) (*domain.Reservation, error) {
	if res.Date == "" || res.Time == "" {
		return nil, ErrMissingSchedule
	}
	if res.CustomerName == "" {
		res.CustomerName = "anonymous"
	}
	if res.Guests == 0 {
		res.Guests = 2
	}
	res.ID = uuid.NewString()
	res.Status = domain.ReservationBooked

	s.state.Reservations = append(s.state.Reservations, res)
	if err := s.state.Flush(); err != nil {
		log.Printf("snapshot flush failed: %v", err)
	}
	s.notifier.Notify("reservation added for " + res.CustomerName)
	return &s.state.Reservations[len(s.state.Reservations)-1], nil
}

// RequestCheckIn stages the confirmation-gated arrival. On confirm the
// reservation becomes checked_in; pre-selected items are handed to the active
// cart so the order can be placed immediately.
func (s *ReservationService) RequestCheckIn(id string) error {
	res := s.state.FindReservation(id)
	if res == nil {
		return ErrReservationNotFound
	}
	if res.Status != domain.ReservationBooked {
		return ErrReservationClosed
	}
	s.gate.Request("Check-in", "Guest has arrived?", func() {
		res := s.state.FindReservation(id)
		if res == nil || res.Status != domain.ReservationBooked {
			return
		}
		res.Status = domain.ReservationCheckedIn
		if len(res.Items) > 0 {
			s.state.Cart = append([]domain.CartItem(nil), res.Items...)
			s.state.TableNo = res.RealTableNo
			if s.state.TableNo == "" {
				s.state.TableNo = fallbackTableNo
			}
			s.state.GuestCount = res.Guests
			s.state.FromReservation = true
			s.notifier.Notify("pre-selected items loaded into POS")
		} else {
			s.notifier.Notify("guest marked as arrived")
		}
		_ = s.state.Flush()
	})
	return nil
}

// RequestCancel stages the confirmation-gated cancellation. Reservations never
// decremented stock, so there is nothing to compensate.
func (s *ReservationService) RequestCancel(id string) error {
	res := s.state.FindReservation(id)
	if res == nil {
		return ErrReservationNotFound
	}
	if res.Status != domain.ReservationBooked {
		return ErrReservationClosed
	}
	s.gate.Request("Cancel reservation", "Cancel this reservation?", func() {
		res := s.state.FindReservation(id)
		if res == nil || res.Status != domain.ReservationBooked {
			return
		}
		res.Status = domain.ReservationCancelled
		s.notifier.Notify("reservation cancelled")
		_ = s.state.Flush()
	})
	return nil
}

func (s *ReservationService) Reservations() []domain.Reservation {
	return s.state.Reservations
}

var _ ReservationServiceInterface = (*ReservationService)(nil)
