package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"detailify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type fakeBookingRepo struct {
	bookings map[string]models.Booking
	seq      int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *fakeBookingRepo) Create(_ context.Context, booking models.Booking) (string, error) {
	r.seq++
	id := fmt.Sprintf("bk-%d", r.seq)
	booking.ID = id
	r.bookings[id] = booking
	return id, nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &booking, nil
}

func (r *fakeBookingRepo) List(_ context.Context, status string) ([]models.Booking, error) {
	out := make([]models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		if status != "" && b.Status != status {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledAt < out[j].ScheduledAt })
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id, status string) error {
	booking, ok := r.bookings[id]
	if !ok {
		return fmt.Errorf("booking not found")
	}
	booking.Status = status
	r.bookings[id] = booking
	return nil
}

func (r *fakeBookingRepo) SetReminderID(_ context.Context, id, reminderID string) error {
	booking, ok := r.bookings[id]
	if !ok {
		return fmt.Errorf("booking not found")
	}
	booking.ReminderID = reminderID
	r.bookings[id] = booking
	return nil
}

func (r *fakeBookingRepo) EnsureIndexes() error { return nil }

type fakeReminders struct {
	scheduled map[string]time.Time
	cancelled []string
	seq       int
	fail      bool
}

func newFakeReminders() *fakeReminders {
	return &fakeReminders{scheduled: make(map[string]time.Time)}
}

func (f *fakeReminders) ScheduleReminder(_ context.Context, _ models.Booking, fireAt time.Time) (string, error) {
	if f.fail {
		return "", errors.New("queue down")
	}
	f.seq++
	id := fmt.Sprintf("rem-%d", f.seq)
	f.scheduled[id] = fireAt
	return id, nil
}

func (f *fakeReminders) CancelReminder(_ context.Context, reminderID string) error {
	f.cancelled = append(f.cancelled, reminderID)
	return nil
}

type fakeDeposits struct {
	collected []int64
	released  []string
}

func (f *fakeDeposits) CollectDeposit(_ context.Context, _ models.Booking, amountCents int64) (string, error) {
	f.collected = append(f.collected, amountCents)
	return fmt.Sprintf("dep-%d", len(f.collected)), nil
}

func (f *fakeDeposits) ReleaseDeposit(_ context.Context, depositID string) error {
	f.released = append(f.released, depositID)
	return nil
}

type staticSettings struct {
	settings models.BusinessSettings
}

func (s *staticSettings) Current(context.Context) (*models.BusinessSettings, error) {
	out := s.settings
	return &out, nil
}

func newTestService(repo *fakeBookingRepo, reminders *fakeReminders, deposits *fakeDeposits, now time.Time, settings models.BusinessSettings) *DefaultSchedulingService {
	svc := &DefaultSchedulingService{
		Repo:      repo,
		Converter: NewConverter(NewLocationZoneDB(), "CST"),
		Zone:      chicago,
		Clock:     NewFixedClock(now),
		Settings:  &staticSettings{settings: settings},
	}
	if reminders != nil {
		svc.Reminders = reminders
	}
	if deposits != nil {
		svc.Deposits = deposits
	}
	return svc
}

var testNow = time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)

func defaultTestSettings() models.BusinessSettings {
	return models.BusinessSettings{PushEnabled: true, ReminderLeadMinutes: 120}
}

func TestCreateBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	reminders := newFakeReminders()
	svc := newTestService(repo, reminders, nil, testNow, defaultTestSettings())

	booking, err := svc.CreateBooking(context.Background(), models.BookingRequest{
		CustomerName: "Dana Reyes",
		Vehicle:      "2022 Model 3",
		Package:      "full-detail",
		Date:         "2026-02-10",
		Time:         "09:00",
	})
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}

	if booking.ScheduledAt != "2026-02-10T15:00:00.000Z" {
		t.Errorf("ScheduledAt = %q, want 2026-02-10T15:00:00.000Z", booking.ScheduledAt)
	}
	if booking.ScheduledFor != "02/10/2026, 09:00:00 AM CST" {
		t.Errorf("ScheduledFor = %q", booking.ScheduledFor)
	}
	if booking.Status != models.BookingStatusConfirmed {
		t.Errorf("Status = %q, want confirmed", booking.Status)
	}
	if booking.ID == "" {
		t.Error("booking was not assigned an ID")
	}

	// Reminder fires two hours ahead of the slot.
	fireAt, ok := reminders.scheduled[booking.ReminderID]
	if !ok {
		t.Fatalf("no reminder scheduled (reminderID %q)", booking.ReminderID)
	}
	wantFire := time.Date(2026, time.February, 10, 13, 0, 0, 0, time.UTC)
	if !fireAt.Equal(wantFire) {
		t.Errorf("reminder fireAt = %v, want %v", fireAt, wantFire)
	}

	stored, err := repo.GetByID(context.Background(), booking.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if stored.ReminderID != booking.ReminderID {
		t.Errorf("stored reminder id %q, want %q", stored.ReminderID, booking.ReminderID)
	}
	if stored.ScheduledFor != "" {
		t.Errorf("display string %q leaked into storage", stored.ScheduledFor)
	}
}

func TestCreateBookingRejectsPastSlot(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), nil, nil, testNow, defaultTestSettings())

	tests := []struct {
		name string
		date string
		tod  string
	}{
		{"yesterday", "2026-01-31", "09:00"},
		// 06:00 Chicago on the fixed-clock day is exactly 12:00Z: a slot
		// landing on "now" is already due.
		{"exactly now", "2026-02-01", "06:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateBooking(context.Background(), models.BookingRequest{
				CustomerName: "Dana Reyes",
				Vehicle:      "2022 Model 3",
				Package:      "full-detail",
				Date:         tt.date,
				Time:         tt.tod,
			})
			if err == nil {
				t.Fatal("CreateBooking accepted a past slot")
			}
			var schedErr *SchedulingError
			if !errors.As(err, &schedErr) {
				t.Errorf("error = %T, want *SchedulingError", err)
			}
		})
	}
}

func TestCreateBookingMalformedInput(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), nil, nil, testNow, defaultTestSettings())

	_, err := svc.CreateBooking(context.Background(), models.BookingRequest{
		CustomerName: "Dana Reyes",
		Vehicle:      "2022 Model 3",
		Package:      "full-detail",
		Date:         "2026-13-40",
		Time:         "25:99",
	})
	var malformed *MalformedCivilTimeError
	if !errors.As(err, &malformed) {
		t.Fatalf("error = %T (%v), want *MalformedCivilTimeError", err, err)
	}
}

func TestCreateBookingRequiresCoreFields(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), nil, nil, testNow, defaultTestSettings())

	_, err := svc.CreateBooking(context.Background(), models.BookingRequest{
		Date: "2026-02-10",
		Time: "09:00",
	})
	if err == nil {
		t.Fatal("CreateBooking accepted a request without customer/vehicle/package")
	}
}

func TestCreateBookingReminderLeadFromSettings(t *testing.T) {
	reminders := newFakeReminders()
	settings := defaultTestSettings()
	settings.ReminderLeadMinutes = 30
	svc := newTestService(newFakeBookingRepo(), reminders, nil, testNow, settings)

	booking, err := svc.CreateBooking(context.Background(), models.BookingRequest{
		CustomerName: "Dana Reyes",
		Vehicle:      "2022 Model 3",
		Package:      "express-wash",
		Date:         "2026-02-10",
		Time:         "09:00",
	})
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}

	wantFire := time.Date(2026, time.February, 10, 14, 30, 0, 0, time.UTC)
	if fireAt := reminders.scheduled[booking.ReminderID]; !fireAt.Equal(wantFire) {
		t.Errorf("reminder fireAt = %v, want %v", fireAt, wantFire)
	}
}

func TestCreateBookingSkipsElapsedReminder(t *testing.T) {
	reminders := newFakeReminders()
	svc := newTestService(newFakeBookingRepo(), reminders, nil, testNow, defaultTestSettings())

	// Slot is one hour out; the two-hour lead has already passed.
	booking, err := svc.CreateBooking(context.Background(), models.BookingRequest{
		CustomerName: "Dana Reyes",
		Vehicle:      "2022 Model 3",
		Package:      "express-wash",
		Date:         "2026-02-01",
		Time:         "07:00",
	})
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}
	if booking.ReminderID != "" || len(reminders.scheduled) != 0 {
		t.Errorf("reminder scheduled for an already-elapsed lead window")
	}
}

func TestCreateBookingReminderFailureIsNonFatal(t *testing.T) {
	reminders := newFakeReminders()
	reminders.fail = true
	svc := newTestService(newFakeBookingRepo(), reminders, nil, testNow, defaultTestSettings())

	booking, err := svc.CreateBooking(context.Background(), models.BookingRequest{
		CustomerName: "Dana Reyes",
		Vehicle:      "2022 Model 3",
		Package:      "full-detail",
		Date:         "2026-02-10",
		Time:         "09:00",
	})
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}
	if booking.ReminderID != "" {
		t.Errorf("reminder id %q set despite queue failure", booking.ReminderID)
	}
}

func TestCreateBookingDeposit(t *testing.T) {
	deposits := &fakeDeposits{}
	settings := defaultTestSettings()
	settings.DepositCents = 5000
	svc := newTestService(newFakeBookingRepo(), nil, deposits, testNow, settings)

	booking, err := svc.CreateBooking(context.Background(), models.BookingRequest{
		CustomerName: "Dana Reyes",
		Vehicle:      "2022 Model 3",
		Package:      "full-detail",
		Date:         "2026-02-10",
		Time:         "09:00",
		Deposit:      true,
	})
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}
	if booking.DepositID == "" {
		t.Error("deposit requested but no deposit id recorded")
	}
	if len(deposits.collected) != 1 || deposits.collected[0] != 5000 {
		t.Errorf("collected = %v, want one charge of 5000", deposits.collected)
	}
}

func TestCreateBookingDepositDisabled(t *testing.T) {
	deposits := &fakeDeposits{}
	// DepositCents unset: deposits are off regardless of the request flag.
	svc := newTestService(newFakeBookingRepo(), nil, deposits, testNow, defaultTestSettings())

	booking, err := svc.CreateBooking(context.Background(), models.BookingRequest{
		CustomerName: "Dana Reyes",
		Vehicle:      "2022 Model 3",
		Package:      "full-detail",
		Date:         "2026-02-10",
		Time:         "09:00",
		Deposit:      true,
	})
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}
	if booking.DepositID != "" || len(deposits.collected) != 0 {
		t.Error("deposit collected while deposits are disabled")
	}
}

func TestPreview(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), nil, nil, testNow, defaultTestSettings())

	preview, err := svc.Preview("2026-07-10", "09:00")
	if err != nil {
		t.Fatalf("Preview error: %v", err)
	}
	if preview.ScheduledAt != "2026-07-10T14:00:00.000Z" {
		t.Errorf("ScheduledAt = %q", preview.ScheduledAt)
	}
	if preview.Display != "07/10/2026, 09:00:00 AM CDT" {
		t.Errorf("Display = %q", preview.Display)
	}
	if preview.Due {
		t.Error("future slot reported as due")
	}

	past, err := svc.Preview("2026-01-15", "09:00")
	if err != nil {
		t.Fatalf("Preview error: %v", err)
	}
	if !past.Due {
		t.Error("past slot not reported as due")
	}
}

func TestGetBookingNotFound(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), nil, nil, testNow, defaultTestSettings())

	_, err := svc.GetBooking(context.Background(), "missing")
	if !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("error = %v, want ErrBookingNotFound", err)
	}
}

func TestListBookingsFiltersPast(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo, nil, nil, testNow, defaultTestSettings())

	seed := []struct {
		iso    string
		status string
	}{
		{"2026-01-20T15:00:00.000Z", models.BookingStatusCompleted},
		{"2026-02-10T15:00:00.000Z", models.BookingStatusConfirmed},
		{"2026-03-01T15:00:00.000Z", models.BookingStatusConfirmed},
	}
	for _, s := range seed {
		if _, err := repo.Create(context.Background(), models.Booking{
			CustomerName: "Dana Reyes",
			ScheduledAt:  s.iso,
			Status:       s.status,
		}); err != nil {
			t.Fatalf("seed error: %v", err)
		}
	}

	upcoming, err := svc.ListBookings(context.Background(), "", false)
	if err != nil {
		t.Fatalf("ListBookings error: %v", err)
	}
	if len(upcoming) != 2 {
		t.Fatalf("upcoming count = %d, want 2", len(upcoming))
	}
	for _, b := range upcoming {
		if b.ScheduledFor == "" {
			t.Errorf("booking %s missing display string", b.ID)
		}
	}

	all, err := svc.ListBookings(context.Background(), "", true)
	if err != nil {
		t.Fatalf("ListBookings error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all count = %d, want 3", len(all))
	}

	confirmed, err := svc.ListBookings(context.Background(), models.BookingStatusConfirmed, true)
	if err != nil {
		t.Fatalf("ListBookings error: %v", err)
	}
	if len(confirmed) != 2 {
		t.Errorf("confirmed count = %d, want 2", len(confirmed))
	}
}

func TestCancelBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	reminders := newFakeReminders()
	deposits := &fakeDeposits{}
	settings := defaultTestSettings()
	settings.DepositCents = 5000
	svc := newTestService(repo, reminders, deposits, testNow, settings)

	created, err := svc.CreateBooking(context.Background(), models.BookingRequest{
		CustomerName: "Dana Reyes",
		Vehicle:      "2022 Model 3",
		Package:      "full-detail",
		Date:         "2026-02-10",
		Time:         "09:00",
		Deposit:      true,
	})
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}

	cancelled, err := svc.CancelBooking(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("CancelBooking error: %v", err)
	}
	if cancelled.Status != models.BookingStatusCancelled {
		t.Errorf("Status = %q, want cancelled", cancelled.Status)
	}
	if len(reminders.cancelled) != 1 || reminders.cancelled[0] != created.ReminderID {
		t.Errorf("cancelled reminders = %v, want [%s]", reminders.cancelled, created.ReminderID)
	}
	if len(deposits.released) != 1 || deposits.released[0] != created.DepositID {
		t.Errorf("released deposits = %v, want [%s]", deposits.released, created.DepositID)
	}

	if _, err := svc.CancelBooking(context.Background(), created.ID); err == nil {
		t.Error("second cancel succeeded, want error")
	}
}

func TestCompleteBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo, nil, nil, testNow, defaultTestSettings())

	created, err := svc.CreateBooking(context.Background(), models.BookingRequest{
		CustomerName: "Dana Reyes",
		Vehicle:      "2022 Model 3",
		Package:      "full-detail",
		Date:         "2026-02-10",
		Time:         "09:00",
	})
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}

	completed, err := svc.CompleteBooking(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("CompleteBooking error: %v", err)
	}
	if completed.Status != models.BookingStatusCompleted {
		t.Errorf("Status = %q, want completed", completed.Status)
	}

	// A completed booking cannot be completed again.
	if _, err := svc.CompleteBooking(context.Background(), created.ID); err == nil {
		t.Error("double complete succeeded, want error")
	}
}
