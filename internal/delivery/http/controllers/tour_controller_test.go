package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nevadotrek/internal/delivery/http/helpers"
	"nevadotrek/internal/domain"
)

// fakeTourService implements domain.TourService for handler tests.
type fakeTourService struct {
	createErr      error
	lastCreated    *domain.Tour
	getResult      *domain.Tour
	getErr         error
	lastGetID      string
	listResult     []*domain.Tour
	listErr        error
	lastActiveOnly bool
}

func (f *fakeTourService) Create(ctx context.Context, tour *domain.Tour) error {
	f.lastCreated = tour
	return f.createErr
}

func (f *fakeTourService) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	f.lastGetID = id
	return f.getResult, f.getErr
}

func (f *fakeTourService) List(ctx context.Context, activeOnly bool) ([]*domain.Tour, error) {
	f.lastActiveOnly = activeOnly
	return f.listResult, f.listErr
}

func TestListTours(t *testing.T) {
	t.Run("lists active tours only", func(t *testing.T) {
		svc := &fakeTourService{listResult: []*domain.Tour{
			{ID: "trek-nevado", Name: domain.LocalizedText{ES: "Nevado", EN: "Snow Peak"}, IsActive: true},
		}}
		ctrl := NewTourController(testLogger, svc)

		req := httptest.NewRequest(http.MethodGet, "/tours", nil)
		rec := httptest.NewRecorder()
		ctrl.ListTours(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, svc.lastActiveOnly)
		var resp struct {
			Data  []*domain.Tour    `json:"data"`
			Error *helpers.APIError `json:"error"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Nil(t, resp.Error)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "trek-nevado", resp.Data[0].ID)
	})
}

func TestGetTour(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &fakeTourService{getResult: &domain.Tour{ID: "trek-nevado"}}
		ctrl := NewTourController(testLogger, svc)

		req := httptest.NewRequest(http.MethodGet, "/tours/trek-nevado", nil)
		req.SetPathValue("tourID", "trek-nevado")
		rec := httptest.NewRecorder()
		ctrl.GetTour(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "trek-nevado", svc.lastGetID)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeTourService{getErr: domain.ErrNotFound}
		ctrl := NewTourController(testLogger, svc)

		req := httptest.NewRequest(http.MethodGet, "/tours/missing", nil)
		req.SetPathValue("tourID", "missing")
		rec := httptest.NewRecorder()
		ctrl.GetTour(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		resp := decodeEnvelope(t, rec.Body)
		require.NotNil(t, resp.Error)
		assert.Equal(t, helpers.ErrCodeNotFound, resp.Error.Code)
	})
}
