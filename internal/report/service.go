package report

type Service struct {
	repo      Repository
	threshold int
}

func NewService(repo Repository, lowStockThreshold int) *Service {
	return &Service{repo: repo, threshold: lowStockThreshold}
}

func (s *Service) Stats() (Stats, error) {
	return s.repo.Stats(s.threshold)
}
