package usecase_test

import (
	"context"
	"sort"
	"sync"

	"github.com/jcastillo-pa/salon-api/internal/domain/entity"
	"github.com/jcastillo-pa/salon-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Respetan los contratos de
// orden y aislamiento por negocio documentados en las interfaces.
// ──────────────────────────────────────────────────────────────────────────────

type fakeBusinessRepo struct {
	mu          sync.Mutex
	businesses  map[string]entity.Business
	memberships []entity.BusinessUser
	err         error // si no es nil, toda operación falla con este error
}

func newFakeBusinessRepo() *fakeBusinessRepo {
	return &fakeBusinessRepo{businesses: map[string]entity.Business{}}
}

func (f *fakeBusinessRepo) Create(_ context.Context, b *entity.Business) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.businesses[b.ID] = *b
	return nil
}

func (f *fakeBusinessRepo) GetByID(_ context.Context, id string) (*entity.Business, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.businesses[id]
	if !ok {
		return nil, nil
	}
	out := b
	return &out, nil
}

func (f *fakeBusinessRepo) CreateMembership(_ context.Context, m *entity.BusinessUser) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.memberships = append(f.memberships, *m)
	return nil
}

func (f *fakeBusinessRepo) GetMembershipByUser(_ context.Context, userID string) (*entity.BusinessUser, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var found *entity.BusinessUser
	for i := range f.memberships {
		m := f.memberships[i]
		if m.UserID != userID || !m.IsActive {
			continue
		}
		if found == nil || m.CreatedAt.Before(found.CreatedAt) {
			out := m
			found = &out
		}
	}
	return found, nil
}

// fakeBusinessTx ejecuta el callback directamente sobre el repo (sin
// transacción real); registra si hubo rollback lógico.
type fakeBusinessTx struct {
	repo *fakeBusinessRepo
}

func (f *fakeBusinessTx) Run(_ context.Context, fn func(repo repository.BusinessRepository) error) error {
	return fn(f.repo)
}

type fakeCustomerRepo struct {
	mu        sync.Mutex
	customers map[string]entity.Customer
	err       error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[string]entity.Customer{}}
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.customers[c.ID] = *c
	return nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, businessID, id string) (*entity.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.customers[id]
	if !ok || c.BusinessID != businessID {
		return nil, nil
	}
	out := c
	return &out, nil
}

func (f *fakeCustomerRepo) ListByBusiness(_ context.Context, businessID string) ([]*entity.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []*entity.Customer
	for _, c := range f.customers {
		if c.BusinessID != businessID {
			continue
		}
		out := c
		list = append(list, &out)
	}
	// Contrato del puerto: más recientes primero.
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.customers[c.ID]
	if !ok || stored.BusinessID != c.BusinessID {
		return nil
	}
	f.customers[c.ID] = *c
	return nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, businessID, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.customers[id]
	if !ok || c.BusinessID != businessID {
		return false, nil
	}
	delete(f.customers, id)
	return true, nil
}

type fakeServiceRepo struct {
	mu       sync.Mutex
	services map[string]entity.Service
	err      error
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: map[string]entity.Service{}}
}

func (f *fakeServiceRepo) Create(_ context.Context, s *entity.Service) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.services[s.ID] = *s
	return nil
}

func (f *fakeServiceRepo) GetByID(_ context.Context, businessID, id string) (*entity.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.services[id]
	if !ok || s.BusinessID != businessID {
		return nil, nil
	}
	out := s
	return &out, nil
}

func (f *fakeServiceRepo) ListByBusiness(_ context.Context, businessID string) ([]*entity.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []*entity.Service
	for _, s := range f.services {
		if s.BusinessID != businessID {
			continue
		}
		out := s
		list = append(list, &out)
	}
	// Contrato del puerto: nombre ascendente.
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list, nil
}

func (f *fakeServiceRepo) Update(_ context.Context, s *entity.Service) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.services[s.ID]
	if !ok || stored.BusinessID != s.BusinessID {
		return nil
	}
	f.services[s.ID] = *s
	return nil
}

func (f *fakeServiceRepo) Delete(_ context.Context, businessID, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.services[id]
	if !ok || s.BusinessID != businessID {
		return false, nil
	}
	delete(f.services, id)
	return true, nil
}
