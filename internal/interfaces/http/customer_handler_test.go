package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastillo-pa/salon-api/internal/application/dto"
	"github.com/jcastillo-pa/salon-api/internal/application/usecase"
	"github.com/jcastillo-pa/salon-api/internal/domain/entity"
	"github.com/jcastillo-pa/salon-api/internal/domain/repository"
	apphttp "github.com/jcastillo-pa/salon-api/internal/interfaces/http"
	"github.com/jcastillo-pa/salon-api/pkg/jwt"
)

// Fakes en memoria mínimos para probar el pipeline HTTP completo:
// middleware → resolver de negocio → handler.

type stubBusinessRepo struct {
	business   *entity.Business
	membership *entity.BusinessUser
}

func (s *stubBusinessRepo) Create(context.Context, *entity.Business) error { return nil }

func (s *stubBusinessRepo) GetByID(_ context.Context, id string) (*entity.Business, error) {
	if s.business == nil || s.business.ID != id {
		return nil, nil
	}
	out := *s.business
	return &out, nil
}

func (s *stubBusinessRepo) CreateMembership(context.Context, *entity.BusinessUser) error { return nil }

func (s *stubBusinessRepo) GetMembershipByUser(_ context.Context, userID string) (*entity.BusinessUser, error) {
	if s.membership == nil || s.membership.UserID != userID {
		return nil, nil
	}
	out := *s.membership
	return &out, nil
}

type stubTx struct{ repo repository.BusinessRepository }

func (s *stubTx) Run(_ context.Context, fn func(repo repository.BusinessRepository) error) error {
	return fn(s.repo)
}

type stubCustomerRepo struct {
	customers map[string]entity.Customer
	err       error
}

func (s *stubCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	if s.err != nil {
		return s.err
	}
	s.customers[c.ID] = *c
	return nil
}

func (s *stubCustomerRepo) GetByID(_ context.Context, businessID, id string) (*entity.Customer, error) {
	if s.err != nil {
		return nil, s.err
	}
	c, ok := s.customers[id]
	if !ok || c.BusinessID != businessID {
		return nil, nil
	}
	out := c
	return &out, nil
}

func (s *stubCustomerRepo) ListByBusiness(_ context.Context, businessID string) ([]*entity.Customer, error) {
	if s.err != nil {
		return nil, s.err
	}
	var list []*entity.Customer
	for _, c := range s.customers {
		if c.BusinessID == businessID {
			out := c
			list = append(list, &out)
		}
	}
	return list, nil
}

func (s *stubCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	if s.err != nil {
		return s.err
	}
	s.customers[c.ID] = *c
	return nil
}

func (s *stubCustomerRepo) Delete(_ context.Context, businessID, id string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	c, ok := s.customers[id]
	if !ok || c.BusinessID != businessID {
		return false, nil
	}
	delete(s.customers, id)
	return true, nil
}

type customerTestEnv struct {
	app       *fiber.App
	customers *stubCustomerRepo
	token     string
}

// conMembresia controla si el usuario autenticado pertenece a un negocio.
func newCustomerEnv(t *testing.T, conMembresia bool) *customerTestEnv {
	t.Helper()

	bizRepo := &stubBusinessRepo{}
	if conMembresia {
		bizRepo.business = &entity.Business{ID: "biz-1", Name: "Salon Bella", DefaultCurrency: entity.CurrencyUSD}
		bizRepo.membership = &entity.BusinessUser{
			ID: "m1", BusinessID: "biz-1", UserID: "user-1",
			Role: entity.RoleOwner, IsActive: true, CreatedAt: time.Now(),
		}
	}
	custRepo := &stubCustomerRepo{customers: map[string]entity.Customer{}}

	businessUC := usecase.NewBusinessUseCase(bizRepo, &stubTx{repo: bizRepo})
	customerUC := usecase.NewCustomerUseCase(custRepo)

	app := fiber.New()
	api := app.Group("/api", apphttp.AuthMiddleware(testSecret))
	h := apphttp.NewCustomerHandler(customerUC, businessUC)
	api.Post("/customers", h.Create)
	api.Get("/customers", h.List)
	api.Get("/customers/:id", h.GetByID)
	api.Delete("/customers/:id", h.Delete)

	token, err := jwt.Generate(testSecret, "user-1", "salon-api", 60)
	require.NoError(t, err)

	return &customerTestEnv{app: app, customers: custRepo, token: token}
}

type httpResult struct {
	Code int
	Body []byte
}

func (r httpResult) String() string { return string(r.Body) }

func (e *customerTestEnv) do(t *testing.T, method, path string, body any) httpResult {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+e.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return httpResult{Code: resp.StatusCode, Body: raw}
}

func TestCustomerHTTP_CreateYGet(t *testing.T) {
	env := newCustomerEnv(t, true)

	rec := env.do(t, "POST", "/api/customers", dto.CreateCustomerRequest{
		Name:  "Juan Pérez",
		Phone: "6611-2233",
	})
	require.Equal(t, fiber.StatusCreated, rec.Code, rec.String())

	var created dto.CustomerResponse
	require.NoError(t, json.Unmarshal(rec.Body, &created))
	assert.Equal(t, "Juan Pérez", created.Name)
	assert.Equal(t, "biz-1", created.BusinessID)

	rec = env.do(t, "GET", "/api/customers/"+created.ID, nil)
	require.Equal(t, fiber.StatusOK, rec.Code)
}

func TestCustomerHTTP_NombreVacio_400(t *testing.T) {
	env := newCustomerEnv(t, true)

	rec := env.do(t, "POST", "/api/customers", dto.CreateCustomerRequest{Name: "  "})
	assert.Equal(t, fiber.StatusBadRequest, rec.Code)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body, &errResp))
	assert.Equal(t, "VALIDATION", errResp.Code)
}

// Usuario sin membresía: 404 NO_BUSINESS en cualquier ruta de clientes, antes
// de tocar el store.
func TestCustomerHTTP_SinNegocio_404(t *testing.T) {
	env := newCustomerEnv(t, false)

	rec := env.do(t, "GET", "/api/customers", nil)
	assert.Equal(t, fiber.StatusNotFound, rec.Code)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body, &errResp))
	assert.Equal(t, "NO_BUSINESS", errResp.Code)
}

// Fallo del store en el listado: 500, no un 200 con lista vacía.
func TestCustomerHTTP_FalloDelStore_500(t *testing.T) {
	env := newCustomerEnv(t, true)
	env.customers.err = assert.AnError

	rec := env.do(t, "GET", "/api/customers", nil)
	assert.Equal(t, fiber.StatusInternalServerError, rec.Code)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body, &errResp))
	assert.Equal(t, "INTERNAL", errResp.Code)
}

func TestCustomerHTTP_GetInexistente_404(t *testing.T) {
	env := newCustomerEnv(t, true)

	rec := env.do(t, "GET", "/api/customers/no-existe", nil)
	assert.Equal(t, fiber.StatusNotFound, rec.Code)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body, &errResp))
	assert.Equal(t, "NOT_FOUND", errResp.Code)
}

func TestCustomerHTTP_Delete_204(t *testing.T) {
	env := newCustomerEnv(t, true)

	rec := env.do(t, "POST", "/api/customers", dto.CreateCustomerRequest{Name: "Ana"})
	require.Equal(t, fiber.StatusCreated, rec.Code)
	var created dto.CustomerResponse
	require.NoError(t, json.Unmarshal(rec.Body, &created))

	rec = env.do(t, "DELETE", "/api/customers/"+created.ID, nil)
	assert.Equal(t, fiber.StatusNoContent, rec.Code)

	rec = env.do(t, "GET", "/api/customers/"+created.ID, nil)
	assert.Equal(t, fiber.StatusNotFound, rec.Code)
}
