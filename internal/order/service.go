package order

import "fmt"

// Service provides reads over the ledger and guards status changes with the
// transition rules.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) GetByID(id int) (Order, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListByUser(userID int) ([]Order, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("invalid user id %d", userID)
	}
	return s.repo.ListByUser(userID)
}

func (s *Service) ListAll() ([]Order, error) {
	return s.repo.ListAll()
}

// SetStatus applies an operator transition. Re-applying the current status
// is a no-op so retries (a double "delivered" click) stay safe; anything
// outside the transition table is rejected with the order unchanged.
func (s *Service) SetStatus(orderID int, newStatus Status) (Order, error) {
	ord, err := s.repo.GetByID(orderID)
	if err != nil {
		return Order{}, err
	}

	if ord.Status == newStatus {
		return ord, nil
	}
	if !ord.Status.CanTransitionTo(newStatus) {
		return Order{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, ord.Status, newStatus)
	}

	if err := s.repo.UpdateStatus(orderID, newStatus); err != nil {
		return Order{}, err
	}
	ord.Status = newStatus
	return ord, nil
}
