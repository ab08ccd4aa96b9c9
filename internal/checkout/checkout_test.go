package checkout_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/storefront/internal/catalog"
	"github.com/jcmexdev/storefront/internal/checkout"
	"github.com/jcmexdev/storefront/internal/checkout/journal"
	"github.com/jcmexdev/storefront/internal/inventory"
	"github.com/jcmexdev/storefront/internal/ordering"
	"github.com/jcmexdev/storefront/internal/payment"
)

// memJournal collects entries in memory for assertions.
type memJournal struct {
	mu      sync.Mutex
	entries []*journal.Entry
}

func (m *memJournal) Save(ctx context.Context, entry *journal.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

func (m *memJournal) statuses() []journal.Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]journal.Status, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Status
	}
	return out
}

// markerStep records execution and compensation order.
type markerStep struct {
	name string
	fail bool
	log  *[]string
}

func (s *markerStep) Name() string { return s.name }

func (s *markerStep) Execute(ctx context.Context) error {
	if s.fail {
		return errors.New(s.name + " boom")
	}
	*s.log = append(*s.log, "exec:"+s.name)
	return nil
}

func (s *markerStep) Compensate(ctx context.Context) error {
	*s.log = append(*s.log, "comp:"+s.name)
	return nil
}

func TestOrchestratorCompensatesLIFO(t *testing.T) {
	var log []string
	repo := &memJournal{}
	steps := []checkout.Step{
		&markerStep{name: "a", log: &log},
		&markerStep{name: "b", log: &log},
		&markerStep{name: "c", fail: true, log: &log},
	}

	err := checkout.NewOrchestrator("ck-1", steps, repo).Start(context.Background())
	require.Error(t, err)

	assert.Equal(t, []string{"exec:a", "exec:b", "comp:b", "comp:a"}, log)
	assert.Equal(t, []journal.Status{
		journal.StatusStarted,
		journal.StatusStepDone,
		journal.StatusStepDone,
		journal.StatusCompensating,
		journal.StatusFailed,
	}, repo.statuses())
}

func TestOrchestratorNilJournal(t *testing.T) {
	var log []string
	steps := []checkout.Step{&markerStep{name: "a", log: &log}}

	err := checkout.NewOrchestrator("ck-1", steps, nil).Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"exec:a"}, log)
}

func newSession(t *testing.T, limit float64) (*ordering.Customer, *inventory.Service, *payment.Processor, catalog.Product) {
	t.Helper()
	laptop, err := catalog.NewLaptop(1, "X1", 1000, "Acme", "i7", 16)
	require.NoError(t, err)
	customer := ordering.NewCustomer("John Doe", 12345, "9880854465", "123 Main St", "john.doe@gmail.com")
	return customer, inventory.NewService(), payment.NewProcessor(limit), laptop
}

func TestCheckoutSuccess(t *testing.T) {
	customer, inv, gw, laptop := newSession(t, 0)
	repo := &memJournal{}
	lines := []ordering.Line{{Product: laptop, Quantity: 2}}

	reserve := checkout.NewReserveStockStep(inv, "ck-1", lines)
	place := checkout.NewPlaceOrderStep(customer, gw, lines)

	err := checkout.NewOrchestrator("ck-1", []checkout.Step{reserve, place}, repo).Start(context.Background())
	require.NoError(t, err)

	order := place.Order()
	require.NotNil(t, order)
	assert.Equal(t, 2000.0, order.Total())
	assert.Len(t, customer.Orders(), 1)
	assert.Equal(t, catalog.DefaultStock-2, laptop.Quantity())
	assert.True(t, inv.Reserved("ck-1"))

	assert.Equal(t, []journal.Status{
		journal.StatusStarted,
		journal.StatusStepDone,
		journal.StatusStepDone,
		journal.StatusCompleted,
	}, repo.statuses())
}

func TestCheckoutPaymentDeclinedRestoresStock(t *testing.T) {
	customer, inv, gw, laptop := newSession(t, 500)
	repo := &memJournal{}
	lines := []ordering.Line{{Product: laptop, Quantity: 2}}

	reserve := checkout.NewReserveStockStep(inv, "ck-1", lines)
	place := checkout.NewPlaceOrderStep(customer, gw, lines)

	err := checkout.NewOrchestrator("ck-1", []checkout.Step{reserve, place}, repo).Start(context.Background())
	require.Error(t, err)

	var declined *ordering.PaymentDeclinedError
	assert.ErrorAs(t, err, &declined)

	assert.Empty(t, customer.Orders())
	assert.Equal(t, catalog.DefaultStock, laptop.Quantity())
	assert.False(t, inv.Reserved("ck-1"))
	assert.Nil(t, place.Order())

	assert.Contains(t, repo.statuses(), journal.StatusCompensating)
	assert.Contains(t, repo.statuses(), journal.StatusFailed)
}

func TestCheckoutInsufficientStockFailsFirst(t *testing.T) {
	customer, inv, gw, laptop := newSession(t, 0)
	lines := []ordering.Line{{Product: laptop, Quantity: catalog.DefaultStock + 1}}

	reserve := checkout.NewReserveStockStep(inv, "ck-1", lines)
	place := checkout.NewPlaceOrderStep(customer, gw, lines)

	err := checkout.NewOrchestrator("ck-1", []checkout.Step{reserve, place}, nil).Start(context.Background())
	assert.ErrorIs(t, err, catalog.ErrInsufficientStock)

	// Nothing happened: no order, no charge, stock untouched.
	assert.Empty(t, customer.Orders())
	assert.Equal(t, catalog.DefaultStock, laptop.Quantity())
	_, charged := gw.Charged(1)
	assert.False(t, charged)
}
