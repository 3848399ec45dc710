package repository_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/models"
	repository "github.com/aaravmahajanofficial/smart-shop-assistant/internal/repositories"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository_AddItem(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewCartRepo(db)
	ctx := t.Context()
	insertSQL := regexp.QuoteMeta(`INSERT INTO cart_items (user_id, product_id, quantity) VALUES ($1, $2, $3) RETURNING id, created_at`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		entry := &models.CartEntry{UserID: 1, ProductID: 3, Quantity: 2}
		now := time.Now()

		mock.ExpectQuery(insertSQL).
			WithArgs(int64(1), int64(3), 2).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), now))

		// Act
		err := repo.AddItem(ctx, entry)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(11), entry.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Same product twice inserts two rows", func(t *testing.T) {
		// Arrange
		now := time.Now()
		mock.ExpectQuery(insertSQL).
			WithArgs(int64(1), int64(3), 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(12), now))
		mock.ExpectQuery(insertSQL).
			WithArgs(int64(1), int64(3), 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(13), now))

		first := &models.CartEntry{UserID: 1, ProductID: 3, Quantity: 1}
		second := &models.CartEntry{UserID: 1, ProductID: 3, Quantity: 1}

		// Act
		require.NoError(t, repo.AddItem(ctx, first))
		require.NoError(t, repo.AddItem(ctx, second))

		// Assert
		assert.NotEqual(t, first.ID, second.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Unknown Product", func(t *testing.T) {
		// Arrange
		entry := &models.CartEntry{UserID: 1, ProductID: 999, Quantity: 1}
		mock.ExpectQuery(insertSQL).
			WithArgs(int64(1), int64(999), 1).
			WillReturnError(&pq.Error{Code: "23503", Constraint: "cart_items_product_id_fkey"})

		// Act
		err := repo.AddItem(ctx, entry)

		// Assert
		assert.ErrorIs(t, err, repository.ErrReferenceNotFound)
		assert.ErrorIs(t, err, repository.ErrProductReference)
		assert.NotErrorIs(t, err, repository.ErrUserReference)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Unknown User", func(t *testing.T) {
		entry := &models.CartEntry{UserID: 404, ProductID: 3, Quantity: 1}
		mock.ExpectQuery(insertSQL).
			WithArgs(int64(404), int64(3), 1).
			WillReturnError(&pq.Error{Code: "23503", Constraint: "cart_items_user_id_fkey"})

		err := repo.AddItem(ctx, entry)

		assert.ErrorIs(t, err, repository.ErrReferenceNotFound)
		assert.ErrorIs(t, err, repository.ErrUserReference)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCartRepository_ListItems(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewCartRepo(db)
	ctx := t.Context()
	selectSQL := regexp.QuoteMeta(`FROM cart_items c JOIN products p ON c.product_id = p.id WHERE c.user_id = $1 ORDER BY c.id`)
	columns := []string{"id", "name", "price", "image", "quantity"}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(selectSQL).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(3), "Smart Watch", 299.99, "w", 1).
				AddRow(int64(3), "Smart Watch", 299.99, "w", 2))

		// Act
		items, err := repo.ListItems(ctx, 1)

		// Assert
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, &models.CartItem{ID: 3, Name: "Smart Watch", Price: 299.99, Image: "w", Quantity: 1}, items[0])
		assert.Equal(t, 2, items[1].Quantity)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty cart", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(selectSQL).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows(columns))

		// Act
		items, err := repo.ListItems(ctx, 2)

		// Assert
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		dbErr := errors.New("timeout")
		mock.ExpectQuery(selectSQL).
			WithArgs(int64(1)).
			WillReturnError(dbErr)

		// Act
		items, err := repo.ListItems(ctx, 1)

		// Assert
		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, items)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
