package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"reservabot/models"
	"reservabot/services/nlp"
)

// --- in-memory fakes ---

type fakeCustomerRepo struct {
	customers map[string]*models.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[string]*models.Customer{}}
}

func (f *fakeCustomerRepo) GetByID(id string) (*models.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) GetByPhone(phone string) (*models.Customer, error) {
	return f.customers[phone], nil
}

func (f *fakeCustomerRepo) GetOrCreateByPhone(phone string) (*models.Customer, error) {
	if c, ok := f.customers[phone]; ok {
		return c, nil
	}
	c := &models.Customer{ID: "cust-" + phone, Phone: phone}
	f.customers[phone] = c
	return c, nil
}

func (f *fakeCustomerRepo) Create(c *models.Customer) error {
	f.customers[c.Phone] = c
	return nil
}

type fakeResourceRepo struct {
	resources []models.Resource
}

func (f *fakeResourceRepo) GetByName(name string) (*models.Resource, error) {
	for i := range f.resources {
		if f.resources[i].Name == name {
			return &f.resources[i], nil
		}
	}
	return nil, nil
}

func (f *fakeResourceRepo) GetFirst() (*models.Resource, error) {
	if len(f.resources) == 0 {
		return nil, nil
	}
	return &f.resources[0], nil
}

func (f *fakeResourceRepo) GetAll() ([]models.Resource, error) { return f.resources, nil }
func (f *fakeResourceRepo) Create(r *models.Resource) error {
	f.resources = append(f.resources, *r)
	return nil
}

type fakeBookingRepo struct {
	bookings []*models.Booking
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	f.bookings = append(f.bookings, b)
	return nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) HasConflict(resourceID, date, start, end string) (bool, error) {
	for _, b := range f.bookings {
		if b.ResourceID == resourceID && b.Date == date && b.Status == models.BookingStatusConfirmed &&
			b.StartTime < end && b.EndTime > start {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) FindConfirmed(customerID, date, start string) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.CustomerID == customerID && b.Date == date && b.StartTime == start &&
			b.Status == models.BookingStatusConfirmed {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) ListConfirmedByDate(date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Date == date && b.Status == models.BookingStatusConfirmed {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListAll(limit int64) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBookingRepo) SetStatus(id, status string) error {
	for _, b := range f.bookings {
		if b.ID == id {
			b.Status = status
			return nil
		}
	}
	return nil
}

type fakeNotifier struct {
	messages []string
}

func (f *fakeNotifier) SendWhatsApp(_ context.Context, _, body string) error {
	f.messages = append(f.messages, body)
	return nil
}

func (f *fakeNotifier) last() string {
	if len(f.messages) == 0 {
		return ""
	}
	return f.messages[len(f.messages)-1]
}

type memoryConversationStore struct {
	pending map[string]*models.InterpretedRequest
}

func newMemoryConversationStore() *memoryConversationStore {
	return &memoryConversationStore{pending: map[string]*models.InterpretedRequest{}}
}

func (m *memoryConversationStore) Load(_ context.Context, phone string) (*models.InterpretedRequest, error) {
	return m.pending[phone], nil
}

func (m *memoryConversationStore) Save(_ context.Context, phone string, req *models.InterpretedRequest) error {
	m.pending[phone] = req
	return nil
}

func (m *memoryConversationStore) Clear(_ context.Context, phone string) error {
	delete(m.pending, phone)
	return nil
}

// --- fixtures ---

// Today is pinned to Wednesday, 2025-03-12; "amanhã" is 2025-03-13.
func testWorkflow() (*DefaultWorkflowService, *fakeBookingRepo, *fakeNotifier) {
	interpreter := nlp.NewInterpreterWithClock(nlp.DefaultLexicon(), func() time.Time {
		return time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	})
	bookings := &fakeBookingRepo{}
	notifier := &fakeNotifier{}
	svc := &DefaultWorkflowService{
		Interpreter: interpreter,
		Customers:   newFakeCustomerRepo(),
		Resources: &fakeResourceRepo{resources: []models.Resource{
			{ID: "res-a", Name: "Sala A"},
			{ID: "res-b", Name: "Sala B"},
			{ID: "res-g", Name: "Estúdio Grande"},
		}},
		Bookings: bookings,
		Notifier: notifier,
		Logger:   zap.NewNop(),
	}
	return svc, bookings, notifier
}

const testPhone = "+5511999990000"

func TestHandleMessageCreatesBooking(t *testing.T) {
	svc, bookings, notifier := testWorkflow()

	res, err := svc.HandleMessage(context.Background(), testPhone, "Quero reservar a sala a amanhã às 14h")
	require.NoError(t, err)

	assert.Equal(t, "confirmed", res.Status)
	require.Len(t, bookings.bookings, 1)
	b := bookings.bookings[0]
	assert.Equal(t, "res-a", b.ResourceID)
	assert.Equal(t, "2025-03-13", b.Date)
	assert.Equal(t, "14:00", b.StartTime)
	assert.Equal(t, "15:00", b.EndTime) // default 60 minutes
	assert.Equal(t, models.BookingStatusConfirmed, b.Status)
	assert.Contains(t, notifier.last(), "Confirmada")
}

func TestHandleMessageAppliesDurationPhrase(t *testing.T) {
	svc, bookings, _ := testWorkflow()

	res, err := svc.HandleMessage(context.Background(), testPhone, "Reservar a sala b amanhã às 10h por 2 horas")
	require.NoError(t, err)

	assert.Equal(t, "confirmed", res.Status)
	require.Len(t, bookings.bookings, 1)
	assert.Equal(t, "10:00", bookings.bookings[0].StartTime)
	assert.Equal(t, "12:00", bookings.bookings[0].EndTime)
}

func TestHandleMessageDefaultsToFirstResource(t *testing.T) {
	svc, bookings, _ := testWorkflow()

	res, err := svc.HandleMessage(context.Background(), testPhone, "Quero reservar amanhã às 09:00")
	require.NoError(t, err)

	assert.Equal(t, "confirmed", res.Status)
	require.Len(t, bookings.bookings, 1)
	assert.Equal(t, "Sala A", bookings.bookings[0].ResourceName)
}

func TestHandleMessageMissingInfoPrompts(t *testing.T) {
	svc, bookings, notifier := testWorkflow()

	res, err := svc.HandleMessage(context.Background(), testPhone, "Quero reservar a sala a")
	require.NoError(t, err)

	assert.Equal(t, "missing_info", res.Status)
	assert.Empty(t, bookings.bookings)
	assert.Contains(t, notifier.last(), "data e o horário")
}

func TestHandleMessageDetectsConflict(t *testing.T) {
	svc, bookings, notifier := testWorkflow()
	bookings.bookings = append(bookings.bookings, &models.Booking{
		ID: "existing", ResourceID: "res-a", ResourceName: "Sala A",
		Date: "2025-03-13", StartTime: "14:00", EndTime: "15:00",
		Status: models.BookingStatusConfirmed,
	})

	res, err := svc.HandleMessage(context.Background(), testPhone, "Reservar a sala a amanhã às 14:30")
	require.NoError(t, err)

	assert.Equal(t, "busy", res.Status)
	require.Len(t, bookings.bookings, 1) // nothing new persisted
	assert.Contains(t, notifier.last(), "reservada")
}

func TestHandleMessageCancelBooking(t *testing.T) {
	svc, bookings, notifier := testWorkflow()

	_, err := svc.HandleMessage(context.Background(), testPhone, "Reservar a sala a amanhã às 14h")
	require.NoError(t, err)
	require.Len(t, bookings.bookings, 1)

	res, err := svc.HandleMessage(context.Background(), testPhone, "Cancelar amanhã às 14h")
	require.NoError(t, err)

	assert.Equal(t, "canceled", res.Status)
	assert.Equal(t, models.BookingStatusCanceled, bookings.bookings[0].Status)
	assert.Contains(t, notifier.last(), "cancelada")
}

func TestHandleMessageCancelNotFound(t *testing.T) {
	svc, _, notifier := testWorkflow()

	res, err := svc.HandleMessage(context.Background(), testPhone, "Cancelar amanhã às 14h")
	require.NoError(t, err)

	assert.Equal(t, "not_found", res.Status)
	assert.Contains(t, notifier.last(), "Não encontrei")
}

func TestHandleMessageListsAvailability(t *testing.T) {
	svc, bookings, notifier := testWorkflow()
	bookings.bookings = append(bookings.bookings, &models.Booking{
		ID: "b1", ResourceID: "res-a", ResourceName: "Sala A",
		Date: "2025-03-13", StartTime: "14:00", EndTime: "15:00",
		Status: models.BookingStatusConfirmed,
	})

	res, err := svc.HandleMessage(context.Background(), testPhone, "Ver horários disponíveis amanhã")
	require.NoError(t, err)

	assert.Equal(t, "availability", res.Status)
	assert.Equal(t, "2025-03-13", res.Date)
	assert.Contains(t, notifier.last(), "Sala A")
	assert.Contains(t, notifier.last(), "14:00 - 15:00")
}

func TestHandleMessageAvailabilityAllFree(t *testing.T) {
	svc, _, notifier := testWorkflow()

	res, err := svc.HandleMessage(context.Background(), testPhone, "Ver horários disponíveis amanhã")
	require.NoError(t, err)

	assert.Equal(t, "availability", res.Status)
	assert.Contains(t, notifier.last(), "totalmente disponíveis")
}

func TestHandleMessageUnknownIntent(t *testing.T) {
	svc, _, notifier := testWorkflow()

	res, err := svc.HandleMessage(context.Background(), testPhone, "bom dia")
	require.NoError(t, err)

	assert.Equal(t, "unknown_intent", res.Status)
	assert.Contains(t, notifier.last(), "bot de reservas")
}

func TestHandleMessageFollowUpFillsMissingSlots(t *testing.T) {
	svc, bookings, _ := testWorkflow()
	svc.State = newMemoryConversationStore()

	res, err := svc.HandleMessage(context.Background(), testPhone, "Quero reservar a sala b")
	require.NoError(t, err)
	assert.Equal(t, "missing_info", res.Status)

	// The follow-up alone carries no intent and no resource; the pending
	// interpretation completes it.
	res, err = svc.HandleMessage(context.Background(), testPhone, "amanhã às 15h")
	require.NoError(t, err)

	assert.Equal(t, "confirmed", res.Status)
	require.Len(t, bookings.bookings, 1)
	assert.Equal(t, "Sala B", bookings.bookings[0].ResourceName)
	assert.Equal(t, "15:00", bookings.bookings[0].StartTime)
}
