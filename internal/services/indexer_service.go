package services

import (
	"dao_voting_platform/configs"
	"dao_voting_platform/internal/db/models"
	"dao_voting_platform/internal/db/repositories"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrDaoAlreadyExists indicates the address is already indexed.
	ErrDaoAlreadyExists = errors.New("dao already exists")
)

// DaoDetails is what the indexer persists about a deployed DAO.
type DaoDetails struct {
	Address     string
	Name        string
	TokenSymbol string
}

// DaoResolver reads a deployed DAO's display name and governance token
// symbol. Resolution can fail transiently right after deployment, so the
// indexer retries it a bounded number of times.
type DaoResolver interface {
	Resolve(address string) (DaoDetails, error)
}

type indexerService struct {
	resolver      DaoResolver
	daoRepository repositories.DaoRepository
	attempts      int
	retryDelay    time.Duration
	logger        *zap.SugaredLogger
}

type IndexerService interface {
	AddDao(address string) (*models.Dao, error)
	GetDaos() ([]*models.Dao, error)
}

func NewIndexerService(
	resolver DaoResolver,
	daoRepository repositories.DaoRepository,
	config configs.Indexer,
	logger *zap.SugaredLogger,
) IndexerService {
	return &indexerService{
		resolver:      resolver,
		daoRepository: daoRepository,
		attempts:      config.ResolveAttempts,
		retryDelay:    config.ResolveRetryDelay,
		logger:        logger,
	}
}

// AddDao resolves the DAO's details and stores them, rejecting addresses
// that are already indexed.
func (s *indexerService) AddDao(address string) (*models.Dao, error) {
	details, err := s.resolveWithRetry(address)
	if err != nil {
		return nil, err
	}

	existing, err := s.daoRepository.GetOneByAddress(details.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing dao: %w", err)
	}
	if existing != nil {
		return nil, ErrDaoAlreadyExists
	}

	dao := &models.Dao{
		Address:     details.Address,
		Name:        details.Name,
		TokenSymbol: details.TokenSymbol,
	}

	created, err := s.daoRepository.Create(dao)
	if err != nil {
		return nil, fmt.Errorf("failed to store dao: %w", err)
	}

	return created, nil
}

func (s *indexerService) GetDaos() ([]*models.Dao, error) {
	return s.daoRepository.GetMany()
}

func (s *indexerService) resolveWithRetry(address string) (DaoDetails, error) {
	var lastErr error

	for attempt := 0; attempt < s.attempts; attempt++ {
		if attempt > 0 {
			s.logger.Infow("retrying dao resolution", "address", address, "attempt", attempt)
			time.Sleep(s.retryDelay)
		}

		details, err := s.resolver.Resolve(address)
		if err == nil {
			return details, nil
		}
		lastErr = err
	}

	return DaoDetails{}, fmt.Errorf("failed to resolve dao %s: %w", address, lastErr)
}
