package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realtexai/realtex-api/internal/application"
	"github.com/realtexai/realtex-api/internal/domain/entity"
	"github.com/realtexai/realtex-api/internal/domain/repository"
	"github.com/realtexai/realtex-api/internal/interface/middleware"
	"github.com/realtexai/realtex-api/pkg/helpers"
	"github.com/realtexai/realtex-api/pkg/validation"
)

var initOnce sync.Once

// stubUserRepo serves a fixed set of users; write operations are not needed
// by the prediction surface.
type stubUserRepo struct {
	users map[string]*entity.User
}

func (r *stubUserRepo) Create(u *entity.User) error { return repository.ErrNotFound }
func (r *stubUserRepo) GetByID(id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}
func (r *stubUserRepo) GetByEmail(string) (*entity.User, error) { return nil, repository.ErrNotFound }
func (r *stubUserRepo) GetByInvitationToken(string) (*entity.User, error) {
	return nil, repository.ErrNotFound
}
func (r *stubUserRepo) List() ([]*entity.User, error) { return nil, nil }
func (r *stubUserRepo) Update(*entity.User) error     { return repository.ErrNotFound }
func (r *stubUserRepo) Delete(string) error           { return repository.ErrNotFound }

type stubAreaRepo struct {
	rows map[string]*entity.Area
	seq  int
}

func (r *stubAreaRepo) key(name, country string) string { return name + "|" + country }

func (r *stubAreaRepo) Get(areaName, country string) (*entity.Area, error) {
	if a, ok := r.rows[r.key(areaName, country)]; ok {
		return a, nil
	}
	return nil, repository.ErrNotFound
}

func (r *stubAreaRepo) GetOrCreate(candidate *entity.Area) (*entity.Area, error) {
	k := r.key(candidate.AreaName, candidate.Country)
	if a, ok := r.rows[k]; ok {
		return a, nil
	}
	r.seq++
	candidate.ID = "area-" + strconv.Itoa(r.seq)
	r.rows[k] = candidate
	return candidate, nil
}

var (
	_ repository.UserRepository = (*stubUserRepo)(nil)
	_ repository.AreaRepository = (*stubAreaRepo)(nil)
)

func newPredictionRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	initOnce.Do(validation.Init)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	users := &stubUserRepo{users: map[string]*entity.User{
		"user-1": {ID: "user-1", Email: "buyer@example.com", IsActive: true},
		"user-2": {ID: "user-2", Email: "revoked@example.com", IsActive: false},
	}}
	areas := &stubAreaRepo{rows: map[string]*entity.Area{}}

	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	svc := application.NewValuationService(users, areas, nil, logger)
	h := NewPredictionHandler(svc, logger)

	r := gin.New()
	grp := r.Group("/api/v1/predictions", middleware.Auth(jwt))
	grp.POST("/price", h.PredictPrice)
	grp.POST("/rent", h.PredictRent)
	grp.POST("/capital-growth", h.PredictCapitalGrowth)
	grp.GET("/area-score", h.GetAreaScore)

	token, _, err := jwt.GenerateAccessToken("user-1")
	require.NoError(t, err)
	return r, token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestPredictPriceEndpoint(t *testing.T) {
	r, token := newPredictionRouter(t)

	body := gin.H{
		"location":      "London, UK",
		"size_sqft":     1200,
		"num_bedrooms":  3,
		"num_bathrooms": 2,
		"property_type": "Apartment",
	}
	w, envelope := doJSON(t, r, http.MethodPost, "/api/v1/predictions/price", token, body)

	require.Equal(t, http.StatusOK, w.Code)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, 1362500.0, data["predicted_price"])
	assert.Equal(t, "rules-v1", data["model_version"])
}

func TestPredictPriceRejectsMissingToken(t *testing.T) {
	r, _ := newPredictionRouter(t)
	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/predictions/price", "", gin.H{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPredictPriceReportsFirstMissingField(t *testing.T) {
	r, token := newPredictionRouter(t)

	body := gin.H{
		"location":      "London, UK",
		"num_bedrooms":  3,
		"num_bathrooms": 2,
		"property_type": "Apartment",
	}
	w, envelope := doJSON(t, r, http.MethodPost, "/api/v1/predictions/price", token, body)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required field: size_sqft", envelope["message"])
}

func TestPredictPriceAcceptsZeroValues(t *testing.T) {
	r, token := newPredictionRouter(t)

	body := gin.H{
		"location":      "Nowhere",
		"size_sqft":     0,
		"num_bedrooms":  0,
		"num_bathrooms": 0,
		"property_type": "Apartment",
	}
	w, envelope := doJSON(t, r, http.MethodPost, "/api/v1/predictions/price", token, body)

	require.Equal(t, http.StatusOK, w.Code)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, 200000.0, data["predicted_price"])
}

func TestPredictRentEndpoint(t *testing.T) {
	r, token := newPredictionRouter(t)

	body := gin.H{
		"location":      "London, UK",
		"size_sqft":     1200,
		"num_bedrooms":  3,
		"num_bathrooms": 2,
		"property_type": "Apartment",
	}
	w, envelope := doJSON(t, r, http.MethodPost, "/api/v1/predictions/rent", token, body)

	require.Equal(t, http.StatusOK, w.Code)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, 5040.0, data["predicted_monthly_rent"])
	assert.Equal(t, 60480.0, data["predicted_annual_rent"])
	assert.InDelta(t, 60480.0/1362500.0*100, data["predicted_rental_yield"].(float64), 1e-9)
}

func TestPredictCapitalGrowthEndpoint(t *testing.T) {
	r, token := newPredictionRouter(t)

	body := gin.H{"location": "London", "property_type": "Detached House"}
	w, envelope := doJSON(t, r, http.MethodPost, "/api/v1/predictions/capital-growth", token, body)

	require.Equal(t, http.StatusOK, w.Code)
	data := envelope["data"].(map[string]any)
	assert.InDelta(t, 3.0*1.2*1.1, data["predicted_capital_growth_1y"].(float64), 1e-9)
	assert.InDelta(t, 9.5*1.2*1.1, data["predicted_capital_growth_3y"].(float64), 1e-9)
	assert.InDelta(t, 16.0*1.2*1.1, data["predicted_capital_growth_5y"].(float64), 1e-9)
}

func TestAreaScoreEndpoint(t *testing.T) {
	r, token := newPredictionRouter(t)

	w, envelope := doJSON(t, r, http.MethodGet, "/api/v1/predictions/area-score?area=Dubai+Marina&country=UAE", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "Dubai Marina", data["area_name"])
	assert.Equal(t, "UAE", data["country"])
	assert.Equal(t, 81.0, data["investment_score"])

	// Same key returns the stored row.
	_, second := doJSON(t, r, http.MethodGet, "/api/v1/predictions/area-score?area=Dubai+Marina&country=UAE", token, nil)
	assert.Equal(t, data, second["data"].(map[string]any))
}

func TestAreaScoreRequiresQueryParams(t *testing.T) {
	r, token := newPredictionRouter(t)

	w, _ := doJSON(t, r, http.MethodGet, "/api/v1/predictions/area-score?area=Dubai+Marina", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInactiveCallerGets401(t *testing.T) {
	r, _ := newPredictionRouter(t)

	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	token, _, err := jwt.GenerateAccessToken("user-2")
	require.NoError(t, err)

	body := gin.H{
		"location":      "London, UK",
		"size_sqft":     1200,
		"num_bedrooms":  3,
		"num_bathrooms": 2,
		"property_type": "Apartment",
	}
	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/predictions/price", token, body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
