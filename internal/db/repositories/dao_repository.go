package repositories

import (
	"dao_voting_platform/internal/db/models"
	"errors"

	"github.com/go-pg/pg/v10"
)

type daoRepository struct {
	repository
}

type DaoRepository interface {
	Create(request *models.Dao) (*models.Dao, error)
	GetOneByAddress(address string) (*models.Dao, error)
	GetMany() ([]*models.Dao, error)
}

func NewDaoRepository(db *pg.DB) DaoRepository {
	return &daoRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *daoRepository) Create(request *models.Dao) (*models.Dao, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	dao := &models.Dao{}

	err = r.db.Model(dao).
		Where("address = ?", request.Address).
		Select()

	return dao, err
}

func (r *daoRepository) GetOneByAddress(address string) (*models.Dao, error) {
	dao := &models.Dao{}

	err := r.db.Model(dao).
		Where("address = ?", address).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return dao, nil
}

func (r *daoRepository) GetMany() ([]*models.Dao, error) {
	daos := make([]*models.Dao, 0)

	err := r.db.Model(&daos).
		OrderExpr("name ASC").
		Select()

	return daos, err
}
