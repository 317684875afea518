package services

import "dao_voting_platform/internal/dao"

// factoryResolver resolves DAO details straight from the deployment
// factory's registry.
type factoryResolver struct {
	factory *dao.Factory
}

func NewFactoryResolver(factory *dao.Factory) DaoResolver {
	return &factoryResolver{factory: factory}
}

func (r *factoryResolver) Resolve(address string) (DaoDetails, error) {
	manager, err := r.factory.Manager(address)
	if err != nil {
		return DaoDetails{}, err
	}

	return DaoDetails{
		Address:     manager.Address(),
		Name:        manager.DaoName(),
		TokenSymbol: manager.GovernanceToken().Symbol(),
	}, nil
}
