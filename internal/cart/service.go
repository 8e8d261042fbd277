package cart

import "errors"

var ErrInvalidUser = errors.New("invalid user")

// Service orchestrates cart operations.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetCartLines(userID int) ([]Line, error) {
	if userID <= 0 {
		return nil, ErrInvalidUser
	}
	return s.repo.GetCartLines(userID)
}

func (s *Service) SetItem(userID int, productID int, qty int) ([]Line, error) {
	if userID <= 0 || productID <= 0 {
		return nil, ErrInvalidUser
	}
	return s.repo.SetItem(userID, productID, qty)
}

func (s *Service) RemoveItem(userID int, productID int) ([]Line, error) {
	if userID <= 0 || productID <= 0 {
		return nil, ErrInvalidUser
	}
	return s.repo.RemoveItem(userID, productID)
}

// ClearCart empties a user's cart.
func (s *Service) ClearCart(userID int) error {
	if userID <= 0 {
		return ErrInvalidUser
	}
	return s.repo.ClearCart(userID)
}
