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

// setupDashboardImageTestRepository creates a dashboard image repository with a mock database
func setupDashboardImageTestRepository(t *testing.T) (*dashboardImageRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewDashboardImageRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewDashboardImageRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewDashboardImageRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestDashboardImageRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		image         *models.DashboardImage
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
	}{
		{
			name: "success",
			image: &models.DashboardImage{
				ExpertID: "expert-1",
				ImageURL: "http://cdn.example.com/dash.png",
				Type:     models.ImageTypeBlur,
				Name:     "Dash",
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO dashboard_images \(id, expert_id, image_url, type, name\)`).
					WithArgs(sqlmock.AnyArg(), "expert-1", "http://cdn.example.com/dash.png", models.ImageTypeBlur, "Dash").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedError: false,
		},
		{
			name: "database error",
			image: &models.DashboardImage{
				ExpertID: "expert-1",
				ImageURL: "http://cdn.example.com/dash.png",
				Type:     models.ImageTypePremium,
				Name:     "Dash",
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO dashboard_images \(id, expert_id, image_url, type, name\)`).
					WithArgs(sqlmock.AnyArg(), "expert-1", "http://cdn.example.com/dash.png", models.ImageTypePremium, "Dash").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupDashboardImageTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Create(context.Background(), tt.image)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.True(t, models.IsValidID(tt.image.ID))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDashboardImageRepository_GetByExpertID(t *testing.T) {
	now := time.Now()
	columns := []string{"id", "expert_id", "image_url", "type", "name", "created_at", "updated_at"}

	tests := []struct {
		name          string
		expertID      string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name:     "success with images",
			expertID: "expert-1",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow("64f1a2b3c4d5e6f7a8b9c0d1", "expert-1", "http://cdn.example.com/a.png", "blur", "A", now, now).
					AddRow("64f1a2b3c4d5e6f7a8b9c0d2", "expert-1", "http://cdn.example.com/b.png", "premium", "B", now, now)
				mock.ExpectQuery(`SELECT id, expert_id, image_url, type, name, created_at, updated_at FROM dashboard_images WHERE expert_id = \?`).
					WithArgs("expert-1").
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedCount: 2,
		},
		{
			name:     "no images for expert",
			expertID: "expert-unknown",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns)
				mock.ExpectQuery(`SELECT id, expert_id, image_url, type, name, created_at, updated_at FROM dashboard_images WHERE expert_id = \?`).
					WithArgs("expert-unknown").
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedCount: 0,
		},
		{
			name:     "database error",
			expertID: "expert-1",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, expert_id, image_url, type, name, created_at, updated_at FROM dashboard_images WHERE expert_id = \?`).
					WithArgs("expert-1").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupDashboardImageTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			images, err := repo.GetByExpertID(context.Background(), tt.expertID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, images, tt.expectedCount)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDashboardImageRepository_Update(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	tests := []struct {
		name               string
		id                 string
		request            *models.UpdateDashboardImageRequest
		setupMock          func(sqlmock.Sqlmock)
		expectedError      bool
		expectedValidation bool
	}{
		{
			name: "single field update",
			id:   "64f1a2b3c4d5e6f7a8b9c0d1",
			request: &models.UpdateDashboardImageRequest{
				Name: strPtr("Renamed"),
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE dashboard_images SET name = \? WHERE id = \?`).
					WithArgs("Renamed", "64f1a2b3c4d5e6f7a8b9c0d1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedError: false,
		},
		{
			name: "multiple field update",
			id:   "64f1a2b3c4d5e6f7a8b9c0d1",
			request: &models.UpdateDashboardImageRequest{
				ImageURL: strPtr("http://cdn.example.com/new.png"),
				Type:     strPtr("marketing"),
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE dashboard_images SET image_url = \?, type = \? WHERE id = \?`).
					WithArgs("http://cdn.example.com/new.png", "marketing", "64f1a2b3c4d5e6f7a8b9c0d1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedError: false,
		},
		{
			// a no-op write reports zero affected rows; that is still success
			name: "no-op update of same value",
			id:   "64f1a2b3c4d5e6f7a8b9c0d1",
			request: &models.UpdateDashboardImageRequest{
				Name: strPtr("Same"),
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE dashboard_images SET name = \? WHERE id = \?`).
					WithArgs("Same", "64f1a2b3c4d5e6f7a8b9c0d1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedError: false,
		},
		{
			name:               "empty field set",
			id:                 "64f1a2b3c4d5e6f7a8b9c0d1",
			request:            &models.UpdateDashboardImageRequest{},
			setupMock:          func(mock sqlmock.Sqlmock) {},
			expectedError:      true,
			expectedValidation: true,
		},
		{
			name: "database error",
			id:   "64f1a2b3c4d5e6f7a8b9c0d1",
			request: &models.UpdateDashboardImageRequest{
				Name: strPtr("Renamed"),
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE dashboard_images SET name = \? WHERE id = \?`).
					WithArgs("Renamed", "64f1a2b3c4d5e6f7a8b9c0d1").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupDashboardImageTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Update(context.Background(), tt.id, tt.request)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedValidation, apperrors.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDashboardImageRepository_DeleteByID(t *testing.T) {
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
				mock.ExpectExec(`DELETE FROM dashboard_images WHERE id = \?`).
					WithArgs("64f1a2b3c4d5e6f7a8b9c0d1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedError: false,
		},
		{
			name: "not found",
			id:   "64f1a2b3c4d5e6f7a8b9c0ff",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM dashboard_images WHERE id = \?`).
					WithArgs("64f1a2b3c4d5e6f7a8b9c0ff").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedError:    true,
			expectedNotFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupDashboardImageTestRepository(t)
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
