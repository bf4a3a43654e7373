package usecase_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// fakeStore simula la base de datos en memoria. RunTx trabaja sobre un buffer
// que solo se vuelca al "commit", así un fallo a mitad no deja nada visible.
type fakeStore struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	headers   map[int64]*entity.TransactionHeader
	details   []*entity.TransactionDetail
	nextTrdID int64
	nextDtlID int64

	connectErr    error
	failDetailAt  int // índice de detalle que falla; -1 = ninguno
	reads, writes int
	detailQueries int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:     map[string]*entity.Product{},
		headers:      map[int64]*entity.TransactionHeader{},
		failDetailAt: -1,
	}
}

func (s *fakeStore) RunRead(ctx context.Context, fn func(repository.ProductRepository, repository.TransactionRepository) error) error {
	if s.connectErr != nil {
		return s.connectErr
	}
	s.mu.Lock()
	s.reads++
	s.mu.Unlock()
	return fn(&fakeProductRepo{s: s}, &fakeTxRepo{s: s})
}

func (s *fakeStore) RunTx(ctx context.Context, fn func(repository.TransactionRepository) error) error {
	if s.connectErr != nil {
		return s.connectErr
	}
	s.mu.Lock()
	s.writes++
	s.mu.Unlock()
	tx := &fakeTxRepo{s: s, staged: true}
	if err := fn(tx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range tx.pendingHeaders {
		s.headers[h.ID] = h
	}
	s.details = append(s.details, tx.pendingDetails...)
	return nil
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[code]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

type fakeTxRepo struct {
	s              *fakeStore
	staged         bool
	pendingHeaders []*entity.TransactionHeader
	pendingDetails []*entity.TransactionDetail
	detailCount    int
}

func (r *fakeTxRepo) Create(_ context.Context, h *entity.TransactionHeader) error {
	r.s.mu.Lock()
	r.s.nextTrdID++
	h.ID = r.s.nextTrdID
	r.s.mu.Unlock()
	h.Datetime = time.Now().UTC()
	cp := *h
	r.pendingHeaders = append(r.pendingHeaders, &cp)
	return nil
}

func (r *fakeTxRepo) CreateDetail(_ context.Context, d *entity.TransactionDetail) error {
	if r.detailCount == r.s.failDetailAt {
		return errors.New("violates foreign key constraint")
	}
	r.detailCount++
	r.s.mu.Lock()
	r.s.nextDtlID++
	d.ID = r.s.nextDtlID
	r.s.mu.Unlock()
	cp := *d
	r.pendingDetails = append(r.pendingDetails, &cp)
	return nil
}

func (r *fakeTxRepo) GetByID(_ context.Context, id int64) (*entity.TransactionHeader, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	h, ok := r.s.headers[id]
	if !ok {
		return nil, nil
	}
	cp := *h
	return &cp, nil
}

func (r *fakeTxRepo) GetDetailsByTransactionID(_ context.Context, id int64) ([]*entity.TransactionDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.detailQueries++
	var out []*entity.TransactionDetail
	for _, d := range r.s.details {
		if d.TransactionID == id {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}
