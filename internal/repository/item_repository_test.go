package repository_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/checkout/internal/domain"
	"github.com/nikolayk812/checkout/internal/port"
	"github.com/nikolayk812/checkout/internal/repository"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"go.uber.org/goleak"
	"golang.org/x/text/currency"
)

type itemRepositorySuite struct {
	suite.Suite

	pool      *pgxpool.Pool
	repo      port.ItemRepository
	container testcontainers.Container
}

// entry point to run the tests in the suite
func TestItemRepositorySuite(t *testing.T) {
	// Verifies no leaks after all tests in the suite run.
	defer goleak.VerifyNone(t)

	suite.Run(t, new(itemRepositorySuite))
}

// before all tests in the suite
func (suite *itemRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	var err error
	suite.container, suite.pool, err = startPostgresPool(ctx)
	suite.NoError(err)

	suite.repo = repository.NewItem(suite.pool)
}

// after all tests in the suite
func (suite *itemRepositorySuite) TearDownSuite() {
	ctx := suite.T().Context()

	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		suite.NoError(suite.container.Terminate(ctx))
	}
}

func (suite *itemRepositorySuite) TestInsertItem() {
	tests := []struct {
		name      string
		itemFunc  func() domain.Item
		wantError string
	}{
		{
			name:     "valid item: ok",
			itemFunc: fakeItem,
		},
		{
			name: "empty name: fail",
			itemFunc: func() domain.Item {
				item := fakeItem()
				item.Name = ""
				return item
			},
			wantError: "item name is empty",
		},
		{
			name: "zero price: fail",
			itemFunc: func() domain.Item {
				item := fakeItem()
				item.Price.Amount = decimal.Zero
				return item
			},
			wantError: "item price must be positive",
		},
		{
			name: "negative price: fail",
			itemFunc: func() domain.Item {
				item := fakeItem()
				item.Price.Amount = decimal.NewFromInt(-10)
				return item
			},
			wantError: "item price must be positive",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			ttItem := tt.itemFunc()

			itemID, err := suite.repo.InsertItem(ctx, ttItem)
			if tt.wantError != "" {
				require.ErrorContains(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			actualItem, err := suite.repo.GetItem(ctx, itemID)
			require.NoError(t, err)

			expected := ttItem
			expected.ID = itemID

			assertItem(t, expected, actualItem)
		})
	}
}

func (suite *itemRepositorySuite) TestGetItemNotFound() {
	t := suite.T()
	ctx := t.Context()

	_, err := suite.repo.GetItem(ctx, uuid.New())
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func (suite *itemRepositorySuite) TestListItems() {
	t := suite.T()
	ctx := t.Context()

	item1 := fakeItem()
	item2 := fakeItem()

	id1, err := suite.repo.InsertItem(ctx, item1)
	require.NoError(t, err)
	id2, err := suite.repo.InsertItem(ctx, item2)
	require.NoError(t, err)

	items, err := suite.repo.ListItems(ctx)
	require.NoError(t, err)

	ids := lo.Map(items, func(i domain.Item, _ int) uuid.UUID { return i.ID })
	assert.Contains(t, ids, id1)
	assert.Contains(t, ids, id2)
}

func fakeItem() domain.Item {
	code := gofakeit.RandomString([]string{"USD", "EUR"})

	return domain.Item{
		ID:          uuid.New(),
		Name:        gofakeit.ProductName(),
		Description: gofakeit.ProductDescription(),
		Price: domain.Money{
			Amount:   decimal.NewFromFloat(gofakeit.Price(1, 1000)),
			Currency: currency.MustParseISO(code),
		},
	}
}

func assertItem(t *testing.T, expected domain.Item, actual domain.Item) {
	t.Helper()

	// Custom comparer for Money.Currency fields
	comparer := cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	})

	decimalComparer := cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	})

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.Item{}, "CreatedAt", "UpdatedAt"),
		cmpopts.EquateEmpty(),
	}

	diff := cmp.Diff(expected, actual, comparer, decimalComparer, opts)
	assert.Empty(t, diff)
}
