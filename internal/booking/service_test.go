package booking

import (
	"context"
	"strings"
	"testing"
	"time"

	"pearl/internal/logging"

	"github.com/pkg/errors"
)

type recordingNotifier struct {
	messages []string
	err      error
}

func (n *recordingNotifier) Notify(ctx context.Context, text string) error {
	n.messages = append(n.messages, text)
	return n.err
}

func TestCreateBooking(t *testing.T) {
	repo := NewInMemoryRepository()
	notifier := &recordingNotifier{}
	service := NewService(repo, notifier, logging.Discard())

	b, err := service.Create(context.Background(), Input{
		Name:   "Meera",
		Phone:  "98765",
		Date:   "2024-12-31",
		Time:   "19:30",
		Guests: 4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.ID != 1 || b.TimeOfDay != 19*time.Hour+30*time.Minute {
		t.Fatalf("unexpected booking: %+v", b)
	}
	if len(notifier.messages) != 1 || !strings.Contains(notifier.messages[0], "Meera") {
		t.Fatalf("expected one notification, got %v", notifier.messages)
	}
}

func TestCreateBookingAcceptsSeconds(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil, logging.Discard())

	b, err := service.Create(context.Background(), Input{
		Name: "Ravi", Phone: "x", Date: "2001-01-01", Time: "08:05:30", Guests: 200,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.TimeString() != "08:05" {
		t.Fatalf("expected 08:05, got %s", b.TimeString())
	}
}

func TestCreateBookingValidation(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil, logging.Discard())

	for _, in := range []Input{
		{Phone: "1", Date: "2024-01-01", Time: "10:00", Guests: 2},
		{Name: "A", Phone: "1", Date: "01/01/2024", Time: "10:00", Guests: 2},
		{Name: "A", Phone: "1", Date: "2024-01-01", Time: "10am", Guests: 2},
		{Name: "A", Phone: "1", Date: "2024-01-01", Time: "10:00"},
	} {
		if _, err := service.Create(context.Background(), in); !errors.Is(err, ErrInvalidBooking) {
			t.Errorf("%+v: expected ErrInvalidBooking, got %v", in, err)
		}
	}
}

func TestNotifyFailureDoesNotFailBooking(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, &recordingNotifier{err: errors.New("telegram down")}, logging.Discard())

	if _, err := service.Create(context.Background(), Input{
		Name: "A", Phone: "1", Date: "2024-01-01", Time: "10:00", Guests: 2,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bookings, _ := repo.List(context.Background())
	if len(bookings) != 1 {
		t.Fatalf("expected stored booking, got %d", len(bookings))
	}
}

func TestListNewestFirst(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil, logging.Discard())
	for _, d := range []string{"2024-01-01", "2024-03-01", "2024-02-01"} {
		service.Create(context.Background(), Input{Name: "A", Phone: "1", Date: d, Time: "12:00", Guests: 2})
	}

	bookings, _ := service.List(context.Background())
	if bookings[0].DateString() != "2024-03-01" || bookings[2].DateString() != "2024-01-01" {
		t.Fatalf("unexpected order: %v, %v, %v", bookings[0].DateString(), bookings[1].DateString(), bookings[2].DateString())
	}
}
