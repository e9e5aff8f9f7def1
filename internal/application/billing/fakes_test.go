package billing_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	appbilling "github.com/squarem/invoicing-api/internal/application/billing"
	"github.com/squarem/invoicing-api/internal/domain"
	"github.com/squarem/invoicing-api/internal/domain/entity"
	"github.com/squarem/invoicing-api/internal/domain/repository"
)

// In-memory fakes for the repository ports. A mutex guards each store so the
// concurrent-allocation test exercises real interleaving.

type fakeInvoiceRepo struct {
	mu       sync.Mutex
	invoices map[string]*entity.Invoice
	byNumber map[string]string // invoice_number -> id, emulates the unique index
	items    map[string][]*entity.InvoiceItem

	failCreates int // when > 0, Create fails with ErrDuplicate and decrements
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices: make(map[string]*entity.Invoice),
		byNumber: make(map[string]string),
		items:    make(map[string][]*entity.InvoiceItem),
	}
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreates > 0 {
		r.failCreates--
		return domain.ErrDuplicate
	}
	if _, taken := r.byNumber[inv.InvoiceNumber]; taken {
		return domain.ErrDuplicate
	}
	cp := *inv
	r.invoices[inv.ID] = &cp
	r.byNumber[inv.InvoiceNumber] = inv.ID
	return nil
}

func (r *fakeInvoiceRepo) Update(inv *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.invoices[inv.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(r.byNumber, inv.InvoiceNumber)
	delete(r.invoices, id)
	delete(r.items, id)
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) List(filter repository.InvoiceFilter) ([]*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		if filter.Status != "" && inv.Status != filter.Status {
			continue
		}
		cp := *inv
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InvoiceNumber < out[j].InvoiceNumber })
	return out, nil
}

func (r *fakeInvoiceRepo) Stats() (*repository.InvoiceStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	today := time.Now()
	startOfDay := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	stats := &repository.InvoiceStats{TotalRevenue: decimal.Zero}
	for _, inv := range r.invoices {
		stats.TotalInvoices++
		stats.TotalRevenue = stats.TotalRevenue.Add(inv.Total)
		if inv.Status == entity.StatusPaid {
			stats.PaidCount++
		} else {
			stats.UnpaidCount++
		}
		if (inv.Status == entity.StatusDraft || inv.Status == entity.StatusSent) && inv.DueDate.Before(startOfDay) {
			stats.OverdueCount++
		}
	}
	return stats, nil
}

func (r *fakeInvoiceRepo) Recent(limit int) ([]*entity.Invoice, error) {
	out, _ := r.List(repository.InvoiceFilter{})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeInvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *item
	r.items[item.InvoiceID] = append(r.items[item.InvoiceID], &cp)
	return nil
}

func (r *fakeInvoiceRepo) DeleteItems(invoiceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, invoiceID)
	return nil
}

func (r *fakeInvoiceRepo) GetItems(invoiceID string) ([]*entity.InvoiceItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := append([]*entity.InvoiceItem(nil), r.items[invoiceID]...)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Order != items[j].Order {
			return items[i].Order < items[j].Order
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

type fakeCounterRepo struct {
	mu   sync.Mutex
	last map[string]int64
}

func newFakeCounterRepo() *fakeCounterRepo {
	return &fakeCounterRepo{last: make(map[string]int64)}
}

func (r *fakeCounterRepo) NextSequence(period string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last[period]++
	return r.last[period], nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[string][]*entity.Payment
	byID     map[string]*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{
		payments: make(map[string][]*entity.Payment),
		byID:     make(map[string]*entity.Payment),
	}
}

func (r *fakePaymentRepo) Create(p *entity.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.payments[p.InvoiceID] = append(r.payments[p.InvoiceID], &cp)
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) GetByID(id string) (*entity.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) ListByInvoice(invoiceID string) ([]*entity.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]*entity.Payment(nil), r.payments[invoiceID]...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].PaidOn.After(out[j].PaidOn) })
	return out, nil
}

func (r *fakePaymentRepo) SumByInvoice(invoiceID string) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sum := decimal.Zero
	for _, p := range r.payments[invoiceID] {
		sum = sum.Add(p.Amount)
	}
	return sum, nil
}

type fakeCompanyRepo struct {
	mu        sync.Mutex
	companies map[string]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*entity.Company)}
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) Update(c *entity.Company) error { return r.Create(c) }

func (r *fakeCompanyRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.companies, id)
	return nil
}

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Company
	for _, c := range r.companies {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

type fakeClientRepo struct {
	mu      sync.Mutex
	clients map[string]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[string]*entity.Client)}
}

func (r *fakeClientRepo) Create(c *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) Update(c *entity.Client) error { return r.Create(c) }

func (r *fakeClientRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, id)
	return nil
}

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) List(limit, offset int) ([]*entity.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Client
	for _, c := range r.clients {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

type fakeInfoRepo struct {
	mu    sync.Mutex
	infos map[string]*entity.PaymentInfo // by invoice id
}

func newFakeInfoRepo() *fakeInfoRepo {
	return &fakeInfoRepo{infos: make(map[string]*entity.PaymentInfo)}
}

func (r *fakeInfoRepo) Upsert(info *entity.PaymentInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *info
	r.infos[info.InvoiceID] = &cp
	return nil
}

func (r *fakeInfoRepo) GetByInvoice(invoiceID string) (*entity.PaymentInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	info, ok := r.infos[invoiceID]
	if !ok {
		return nil, nil
	}
	cp := *info
	return &cp, nil
}

// fakeTxRunner hands the shared fakes to the callback; the fakes' own locks
// provide the atomicity the tests rely on.
type fakeTxRunner struct {
	invoiceRepo *fakeInvoiceRepo
	counterRepo *fakeCounterRepo
	paymentRepo *fakePaymentRepo
}

func (r *fakeTxRunner) RunInvoicing(ctx context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	counterRepo repository.CounterRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	return fn(r.invoiceRepo, r.counterRepo, r.paymentRepo)
}

// testEnv bundles the fakes with fully wired use cases.
type testEnv struct {
	invoiceRepo *fakeInvoiceRepo
	counterRepo *fakeCounterRepo
	paymentRepo *fakePaymentRepo
	companyRepo *fakeCompanyRepo
	clientRepo  *fakeClientRepo
	infoRepo    *fakeInfoRepo

	invoiceUC *appbilling.InvoiceUseCase
	paymentUC *appbilling.PaymentUseCase
}

func newTestEnv() *testEnv {
	env := &testEnv{
		invoiceRepo: newFakeInvoiceRepo(),
		counterRepo: newFakeCounterRepo(),
		paymentRepo: newFakePaymentRepo(),
		companyRepo: newFakeCompanyRepo(),
		clientRepo:  newFakeClientRepo(),
		infoRepo:    newFakeInfoRepo(),
	}
	tx := &fakeTxRunner{
		invoiceRepo: env.invoiceRepo,
		counterRepo: env.counterRepo,
		paymentRepo: env.paymentRepo,
	}
	env.invoiceUC = appbilling.NewInvoiceUseCase(tx, env.invoiceRepo, env.companyRepo, env.clientRepo, env.paymentRepo, env.infoRepo)
	env.paymentUC = appbilling.NewPaymentUseCase(tx, env.invoiceRepo, env.paymentRepo)
	return env
}

func (env *testEnv) seedCompanyAndClient() (companyID, clientID string) {
	company := &entity.Company{ID: "company-1", Name: "Squarem", Address: "12 MG Road", UPIID: "squarem@okaxis"}
	client := &entity.Client{ID: "client-1", Name: "Acme Builders", BillingAddress: "4 Park Street"}
	_ = env.companyRepo.Create(company)
	_ = env.clientRepo.Create(client)
	return company.ID, client.ID
}
