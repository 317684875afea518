package token

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	owner    = "0xde7bedd9326d759620c438ae6d587ac41bfb1017"
	operator = "0xcceae00998c8acf3d805ed025e94ddf3779738fa"
	receiver = "0xa759c71aafc4017b5c1238e85f315a5e8210b634"
)

func TestMintAndSupply(t *testing.T) {
	asset := NewAsset("Fashion Token", "FSH")

	asset.Mint(owner, big.NewInt(7))
	asset.Mint(receiver, big.NewInt(3))

	assert.Equal(t, "Fashion Token", asset.Name())
	assert.Equal(t, "FSH", asset.Symbol())
	assert.Equal(t, big.NewInt(7), asset.BalanceOf(owner))
	assert.Equal(t, big.NewInt(3), asset.BalanceOf(receiver))
	assert.Equal(t, big.NewInt(10), asset.TotalSupply())
}

func TestOwnerTransfer(t *testing.T) {
	asset := NewAsset("Fashion Token", "FSH")
	asset.Mint(owner, big.NewInt(10))

	err := asset.Transfer(owner, owner, receiver, big.NewInt(4))

	require.NoError(t, err)
	assert.Equal(t, big.NewInt(6), asset.BalanceOf(owner))
	assert.Equal(t, big.NewInt(4), asset.BalanceOf(receiver))
}

func TestTransferFailsAboveBalance(t *testing.T) {
	asset := NewAsset("Fashion Token", "FSH")
	asset.Mint(owner, big.NewInt(3))

	err := asset.Transfer(owner, owner, receiver, big.NewInt(4))

	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, big.NewInt(3), asset.BalanceOf(owner))
}

func TestOperatorTransferConsumesAuthorization(t *testing.T) {
	asset := NewAsset("Fashion Token", "FSH")
	asset.Mint(owner, big.NewInt(10))
	asset.AuthorizeOperator(owner, operator, big.NewInt(5))

	err := asset.Transfer(operator, owner, receiver, big.NewInt(3))

	require.NoError(t, err)
	assert.Equal(t, big.NewInt(7), asset.BalanceOf(owner))
	assert.Equal(t, big.NewInt(3), asset.BalanceOf(receiver))
	assert.Equal(t, big.NewInt(2), asset.AuthorizedAmountFor(owner, operator))
}

func TestOperatorTransferFailsWithoutAuthorization(t *testing.T) {
	asset := NewAsset("Fashion Token", "FSH")
	asset.Mint(owner, big.NewInt(10))

	err := asset.Transfer(operator, owner, receiver, big.NewInt(3))

	assert.ErrorIs(t, err, ErrInsufficientAuthorization)
	assert.Equal(t, big.NewInt(10), asset.BalanceOf(owner))
}

func TestOperatorTransferFailsAboveAuthorization(t *testing.T) {
	asset := NewAsset("Fashion Token", "FSH")
	asset.Mint(owner, big.NewInt(10))
	asset.AuthorizeOperator(owner, operator, big.NewInt(2))

	err := asset.Transfer(operator, owner, receiver, big.NewInt(3))

	assert.ErrorIs(t, err, ErrInsufficientAuthorization)
}

func TestReauthorizationReplacesAmount(t *testing.T) {
	asset := NewAsset("Fashion Token", "FSH")
	asset.Mint(owner, big.NewInt(10))
	asset.AuthorizeOperator(owner, operator, big.NewInt(2))
	asset.AuthorizeOperator(owner, operator, big.NewInt(9))

	assert.Equal(t, big.NewInt(9), asset.AuthorizedAmountFor(owner, operator))
}
