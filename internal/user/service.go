package user

// ServiceInterface is what other handlers depend on for profile lookups.
type ServiceInterface interface {
	GetByID(id int) (Profile, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(id int) (Profile, error) {
	if id <= 0 {
		return Profile{}, ErrNotFound
	}
	return s.repo.GetByID(id)
}

var _ ServiceInterface = (*Service)(nil)
