package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squarem/invoicing-api/internal/application/billing"
	"github.com/squarem/invoicing-api/internal/application/dto"
	"github.com/squarem/invoicing-api/internal/domain/entity"
	apphttp "github.com/squarem/invoicing-api/internal/interfaces/http"
)

// memCompanyRepo is a minimal in-memory CompanyRepository for handler tests.
type memCompanyRepo struct {
	mu        sync.Mutex
	companies map[string]*entity.Company
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{companies: make(map[string]*entity.Company)}
}

func (r *memCompanyRepo) Create(c *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}

func (r *memCompanyRepo) Update(c *entity.Company) error { return r.Create(c) }

func (r *memCompanyRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.companies, id)
	return nil
}

func (r *memCompanyRepo) GetByID(id string) (*entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Company
	for _, c := range r.companies {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func buildTestApp() *fiber.App {
	app := fiber.New()
	uc := billing.NewCompanyUseCase(newMemCompanyRepo())
	apphttp.Router(app, apphttp.RouterDeps{CompanyUC: uc})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestCompanyCreateAndGet(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/companies",
		`{"name":"Squarem","address":"12 MG Road, Bengaluru","upi_id":"squarem@okaxis"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created dto.CompanyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Squarem", created.Name)
	assert.Equal(t, "India", created.Country, "country defaults to India")

	getResp := doJSON(t, app, http.MethodGet, "/api/companies/"+created.ID, "")
	defer getResp.Body.Close()
	assert.Equal(t, http.StatusOK, getResp.StatusCode)
}

func TestCompanyValidationError(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/companies", `{"address":"somewhere"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, "name", body.Field)
}

func TestCompanyMalformedBody(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/companies", `{"name": `)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INVALID_BODY", body.Code)
}

func TestCompanyNotFound(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/companies/00000000-0000-0000-0000-000000000099", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "NOT_FOUND", body.Code)
}
