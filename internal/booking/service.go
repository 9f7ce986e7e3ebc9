package booking

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"pearl/internal/notify"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var ErrInvalidBooking = errors.New("invalid booking")

type Input struct {
	Name   string
	Phone  string
	Date   string
	Time   string
	Guests int
}

type Service struct {
	repo     Repository
	notifier notify.Notifier
	log      logrus.FieldLogger
}

func NewService(repo Repository, notifier notify.Notifier, log logrus.FieldLogger) *Service {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &Service{repo: repo, notifier: notifier, log: log}
}

// Create stores the booking as given. Only presence and format are checked;
// past dates and any phone format are accepted.
func (s *Service) Create(ctx context.Context, in Input) (*Booking, error) {
	b, err := parseInput(in)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, errors.Wrap(err, "create booking")
	}

	if err := s.notifier.Notify(ctx, bookingMessage(b)); err != nil {
		s.log.WithError(err).WithField("booking_id", b.ID).Warn("booking notification failed")
	}
	return b, nil
}

func (s *Service) List(ctx context.Context) ([]Booking, error) {
	return s.repo.List(ctx)
}

func parseInput(in Input) (*Booking, error) {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	if name == "" || phone == "" || in.Date == "" || in.Time == "" || in.Guests == 0 {
		return nil, errors.Wrap(ErrInvalidBooking, "missing fields")
	}

	date, err := time.Parse(dateLayout, strings.TrimSpace(in.Date))
	if err != nil {
		return nil, errors.Wrap(ErrInvalidBooking, "date must be YYYY-MM-DD")
	}

	tod, err := parseTimeOfDay(strings.TrimSpace(in.Time))
	if err != nil {
		return nil, errors.Wrap(ErrInvalidBooking, "time must be HH:MM")
	}

	return &Booking{
		Name:      name,
		Phone:     phone,
		Date:      date,
		TimeOfDay: tod,
		Guests:    in.Guests,
	}, nil
}

func parseTimeOfDay(s string) (time.Duration, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, nil
		}
	}
	return 0, errors.Errorf("unrecognized time %q", s)
}

func bookingMessage(b *Booking) string {
	return fmt.Sprintf(
		"<b>New table booking #%d</b>\n%s (%s)\n%s at %s, %d guests",
		b.ID,
		html.EscapeString(b.Name),
		html.EscapeString(b.Phone),
		b.DateString(),
		b.TimeString(),
		b.Guests,
	)
}
