package services

import (
	"dao_voting_platform/configs"
	"dao_voting_platform/internal/db/models"
	mock_repositories "dao_voting_platform/internal/db/repositories/mocks"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const daoAddress = "0x7c5be162011aaf50c8ad2840ed6dae510440483e"

type stubResolver struct {
	failures int
	details  DaoDetails
	calls    int
}

func (r *stubResolver) Resolve(address string) (DaoDetails, error) {
	r.calls++
	if r.calls <= r.failures {
		return DaoDetails{}, errors.New("dao not found")
	}
	return r.details, nil
}

func indexerConfig() configs.Indexer {
	return configs.Indexer{
		ResolveAttempts:   3,
		ResolveRetryDelay: time.Millisecond,
	}
}

func TestAddDao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := &stubResolver{
		details: DaoDetails{Address: daoAddress, Name: "fashionDao", TokenSymbol: "FSH"},
	}
	daoRepository := mock_repositories.NewMockDaoRepository(ctrl)
	daoRepository.EXPECT().GetOneByAddress(daoAddress).Return(nil, nil)
	daoRepository.EXPECT().
		Create(&models.Dao{Address: daoAddress, Name: "fashionDao", TokenSymbol: "FSH"}).
		DoAndReturn(func(dao *models.Dao) (*models.Dao, error) {
			return dao, nil
		})

	service := NewIndexerService(resolver, daoRepository, indexerConfig(), zap.NewNop().Sugar())
	dao, err := service.AddDao(daoAddress)

	require.NoError(t, err)
	assert.Equal(t, "fashionDao", dao.Name)
	assert.Equal(t, "FSH", dao.TokenSymbol)
	assert.Equal(t, 1, resolver.calls)
}

func TestAddDaoRetriesResolution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := &stubResolver{
		failures: 2,
		details:  DaoDetails{Address: daoAddress, Name: "fashionDao", TokenSymbol: "FSH"},
	}
	daoRepository := mock_repositories.NewMockDaoRepository(ctrl)
	daoRepository.EXPECT().GetOneByAddress(daoAddress).Return(nil, nil)
	daoRepository.EXPECT().Create(gomock.Any()).DoAndReturn(func(dao *models.Dao) (*models.Dao, error) {
		return dao, nil
	})

	service := NewIndexerService(resolver, daoRepository, indexerConfig(), zap.NewNop().Sugar())
	_, err := service.AddDao(daoAddress)

	require.NoError(t, err)
	assert.Equal(t, 3, resolver.calls)
}

func TestAddDaoFailsWhenResolutionExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := &stubResolver{failures: 5}
	daoRepository := mock_repositories.NewMockDaoRepository(ctrl)

	service := NewIndexerService(resolver, daoRepository, indexerConfig(), zap.NewNop().Sugar())
	_, err := service.AddDao(daoAddress)

	assert.Error(t, err)
	assert.Equal(t, 3, resolver.calls)
}

func TestAddDaoRejectsDuplicateAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := &stubResolver{
		details: DaoDetails{Address: daoAddress, Name: "fashionDao", TokenSymbol: "FSH"},
	}
	daoRepository := mock_repositories.NewMockDaoRepository(ctrl)
	daoRepository.EXPECT().
		GetOneByAddress(daoAddress).
		Return(&models.Dao{Address: daoAddress, Name: "fashionDao", TokenSymbol: "FSH"}, nil)

	service := NewIndexerService(resolver, daoRepository, indexerConfig(), zap.NewNop().Sugar())
	_, err := service.AddDao(daoAddress)

	assert.ErrorIs(t, err, ErrDaoAlreadyExists)
}

func TestGetDaos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	daos := []*models.Dao{
		{Address: daoAddress, Name: "fashionDao", TokenSymbol: "FSH"},
	}
	daoRepository := mock_repositories.NewMockDaoRepository(ctrl)
	daoRepository.EXPECT().GetMany().Return(daos, nil)

	service := NewIndexerService(&stubResolver{}, daoRepository, indexerConfig(), zap.NewNop().Sugar())
	result, err := service.GetDaos()

	require.NoError(t, err)
	assert.Equal(t, daos, result)
}
