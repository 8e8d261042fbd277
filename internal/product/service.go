package product

type Service struct {
	repo Repository
}

// ServiceInterface lets other packages depend on the product service
// without a concrete type (mirrors the user service pattern).
type ServiceInterface interface {
	List() ([]Product, error)
	ListActive() ([]Product, error)
	GetByID(id int) (Product, error)
	Create(p Product) (Product, error)
	Update(id int, p Product) (Product, error)
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Product, error) {
	return s.repo.List()
}

func (s *Service) ListActive() ([]Product, error) {
	return s.repo.ListActive()
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(p Product) (Product, error) {
	return s.repo.Create(p)
}

func (s *Service) Update(id int, p Product) (Product, error) {
	return s.repo.Update(id, p)
}

var _ ServiceInterface = (*Service)(nil)
