package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advisorycontent/backend/internal/apperrors"
	"github.com/advisorycontent/backend/internal/models"
)

// setupBannerTestRepository creates a banner repository with a mock database
func setupBannerTestRepository(t *testing.T) (*bannerRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewBannerRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewBannerRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewBannerRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestBannerRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		banner        *models.Banner
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
	}{
		{
			name: "success",
			banner: &models.Banner{
				Type:     models.BannerTypeHome,
				ImageURL: "http://cdn.example.com/home.png",
				Name:     "Home banner",
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO banners \(id, type, image_url, name\)`).
					WithArgs(sqlmock.AnyArg(), models.BannerTypeHome, "http://cdn.example.com/home.png", "Home banner").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedError: false,
		},
		{
			name: "database error",
			banner: &models.Banner{
				Type:     models.BannerTypeWebinar,
				ImageURL: "http://cdn.example.com/webinar.png",
				Name:     "Webinar banner",
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO banners \(id, type, image_url, name\)`).
					WithArgs(sqlmock.AnyArg(), models.BannerTypeWebinar, "http://cdn.example.com/webinar.png", "Webinar banner").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupBannerTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Create(context.Background(), tt.banner)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.True(t, models.IsValidID(tt.banner.ID))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBannerRepository_GetAll(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name: "success with multiple banners",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "type", "image_url", "name", "created_at", "updated_at"}).
					AddRow("64f1a2b3c4d5e6f7a8b9c0d1", "home", "http://cdn.example.com/a.png", "A", now, now).
					AddRow("64f1a2b3c4d5e6f7a8b9c0d2", "course", "http://cdn.example.com/b.png", "B", now, now)
				mock.ExpectQuery(`SELECT id, type, image_url, name, created_at, updated_at FROM banners`).
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedCount: 2,
		},
		{
			name: "empty result",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "type", "image_url", "name", "created_at", "updated_at"})
				mock.ExpectQuery(`SELECT id, type, image_url, name, created_at, updated_at FROM banners`).
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedCount: 0,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, type, image_url, name, created_at, updated_at FROM banners`).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupBannerTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			banners, err := repo.GetAll(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, banners, tt.expectedCount)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBannerRepository_GetByID(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name             string
		id               string
		setupMock        func(sqlmock.Sqlmock)
		expectedError    bool
		expectedNotFound bool
	}{
		{
			name: "success",
			id:   "64f1a2b3c4d5e6f7a8b9c0d1",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "type", "image_url", "name", "created_at", "updated_at"}).
					AddRow("64f1a2b3c4d5e6f7a8b9c0d1", "home", "http://cdn.example.com/a.png", "A", now, now)
				mock.ExpectQuery(`SELECT id, type, image_url, name, created_at, updated_at FROM banners WHERE id = \?`).
					WithArgs("64f1a2b3c4d5e6f7a8b9c0d1").
					WillReturnRows(rows)
			},
			expectedError: false,
		},
		{
			name: "not found",
			id:   "64f1a2b3c4d5e6f7a8b9c0ff",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, type, image_url, name, created_at, updated_at FROM banners WHERE id = \?`).
					WithArgs("64f1a2b3c4d5e6f7a8b9c0ff").
					WillReturnError(sql.ErrNoRows)
			},
			expectedError:    true,
			expectedNotFound: true,
		},
		{
			name: "database error",
			id:   "64f1a2b3c4d5e6f7a8b9c0d1",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, type, image_url, name, created_at, updated_at FROM banners WHERE id = \?`).
					WithArgs("64f1a2b3c4d5e6f7a8b9c0d1").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupBannerTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			banner, err := repo.GetByID(context.Background(), tt.id)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, banner)
				assert.Equal(t, tt.expectedNotFound, apperrors.IsNotFound(err))
			} else {
				assert.NoError(t, err)
				require.NotNil(t, banner)
				assert.Equal(t, tt.id, banner.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBannerRepository_DeleteByID(t *testing.T) {
	tests := []struct {
		name             string
		id               string
		setupMock        func(sqlmock.Sqlmock)
		expectedError    bool
		expectedNotFound bool
	}{
		{
			name: "success",
			id:   "64f1a2b3c4d5e6f7a8b9c0d1",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM banners WHERE id = \?`).
					WithArgs("64f1a2b3c4d5e6f7a8b9c0d1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedError: false,
		},
		{
			name: "not found",
			id:   "64f1a2b3c4d5e6f7a8b9c0ff",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM banners WHERE id = \?`).
					WithArgs("64f1a2b3c4d5e6f7a8b9c0ff").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedError:    true,
			expectedNotFound: true,
		},
		{
			name: "database error",
			id:   "64f1a2b3c4d5e6f7a8b9c0d1",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM banners WHERE id = \?`).
					WithArgs("64f1a2b3c4d5e6f7a8b9c0d1").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupBannerTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.DeleteByID(context.Background(), tt.id)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedNotFound, apperrors.IsNotFound(err))
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
