package repository_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/checkout/internal/domain"
	"github.com/nikolayk812/checkout/internal/port"
	"github.com/nikolayk812/checkout/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
)

type modifierRepositorySuite struct {
	suite.Suite

	pool      *pgxpool.Pool
	discounts port.DiscountRepository
	taxes     port.TaxRepository
	container testcontainers.Container
}

// entry point to run the tests in the suite
func TestModifierRepositorySuite(t *testing.T) {
	suite.Run(t, new(modifierRepositorySuite))
}

// before all tests in the suite
func (suite *modifierRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	var err error
	suite.container, suite.pool, err = startPostgresPool(ctx)
	suite.NoError(err)

	suite.discounts = repository.NewDiscount(suite.pool)
	suite.taxes = repository.NewTax(suite.pool)
}

// after all tests in the suite
func (suite *modifierRepositorySuite) TearDownSuite() {
	ctx := suite.T().Context()

	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		suite.NoError(suite.container.Terminate(ctx))
	}
}

func (suite *modifierRepositorySuite) TestDiscountRoundtrip() {
	t := suite.T()
	ctx := t.Context()

	discount := fakeDiscount()

	discountID, err := suite.discounts.InsertDiscount(ctx, discount)
	require.NoError(t, err)

	byID, err := suite.discounts.GetDiscount(ctx, discountID)
	require.NoError(t, err)
	assert.Equal(t, discount.Code, byID.Code)
	assert.True(t, discount.Value.Equal(byID.Value))

	byCode, err := suite.discounts.GetDiscountByCode(ctx, discount.Code)
	require.NoError(t, err)
	assert.Equal(t, discountID, byCode.ID)

	_, err = suite.discounts.GetDiscountByCode(ctx, "NO-SUCH-CODE")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func (suite *modifierRepositorySuite) TestDiscountInvalidType() {
	t := suite.T()
	ctx := t.Context()

	discount := fakeDiscount()
	discount.Type = domain.DiscountType("bogof")

	_, err := suite.discounts.InsertDiscount(ctx, discount)
	require.ErrorContains(t, err, "invalid discount type")
}

func (suite *modifierRepositorySuite) TestSetDiscountActive() {
	t := suite.T()
	ctx := t.Context()

	discountID, err := suite.discounts.InsertDiscount(ctx, fakeDiscount())
	require.NoError(t, err)

	require.NoError(t, suite.discounts.SetDiscountActive(ctx, discountID, false))

	discount, err := suite.discounts.GetDiscount(ctx, discountID)
	require.NoError(t, err)
	assert.False(t, discount.Active)

	err = suite.discounts.SetDiscountActive(ctx, uuid.New(), false)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func (suite *modifierRepositorySuite) TestTaxRoundtrip() {
	t := suite.T()
	ctx := t.Context()

	tax := fakeTax()

	taxID, err := suite.taxes.InsertTax(ctx, tax)
	require.NoError(t, err)

	actual, err := suite.taxes.GetTax(ctx, taxID)
	require.NoError(t, err)
	assert.Equal(t, tax.Country, actual.Country)
	assert.True(t, tax.Rate.Equal(actual.Rate))

	require.NoError(t, suite.taxes.SetTaxActive(ctx, taxID, false))

	actual, err = suite.taxes.GetTax(ctx, taxID)
	require.NoError(t, err)
	assert.False(t, actual.Active)
}

func (suite *modifierRepositorySuite) TestTaxRateOutOfRange() {
	t := suite.T()
	ctx := t.Context()

	tax := fakeTax()
	tax.Rate = decimal.RequireFromString("101")

	_, err := suite.taxes.InsertTax(ctx, tax)
	require.ErrorContains(t, err, "tax rate must be between 0 and 100")
}
