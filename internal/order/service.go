package order

import (
	"context"
	"fmt"
	"html"

	"pearl/internal/menu"
	"pearl/internal/notify"
	"pearl/internal/session"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var ErrEmptyCart = errors.New("cart is empty")

// MenuReader reports whether a cart line still points at a menu item.
type MenuReader interface {
	Get(ctx context.Context, id int64) (*menu.Item, error)
}

type Service struct {
	repo     Repository
	sessions session.Store
	menu     MenuReader
	notifier notify.Notifier
	log      logrus.FieldLogger
}

func NewService(
	repo Repository,
	sessions session.Store,
	menu MenuReader,
	notifier notify.Notifier,
	log logrus.FieldLogger,
) *Service {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &Service{repo: repo, sessions: sessions, menu: menu, notifier: notifier, log: log}
}

// Confirm turns the session cart into an order. The cart is cleared only
// after the order and its items are committed.
func (s *Service) Confirm(ctx context.Context, sess *session.Session) (*Order, error) {
	if sess.Cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	items := itemsFromCart(sess.Cart)
	total := sess.Cart.Total()

	if err := s.detachRemovedItems(ctx, items); err != nil {
		return nil, err
	}

	o, err := s.repo.Place(ctx, sess.UserID, total, items)
	if err != nil {
		return nil, errors.Wrap(err, "place order")
	}

	cleared := session.NewCart()
	if err := s.sessions.SaveCart(ctx, sess.ID, cleared); err != nil {
		s.log.WithError(err).WithField("order_id", o.ID).Error("order placed but cart not cleared")
	} else {
		sess.Cart = cleared
	}

	msg := fmt.Sprintf(
		"<b>New order #%d</b>\n%s, %d items, total %.2f",
		o.ID, html.EscapeString(sess.Username), len(items), o.TotalAmount,
	)
	if err := s.notifier.Notify(ctx, msg); err != nil {
		s.log.WithError(err).WithField("order_id", o.ID).Warn("order notification failed")
	}

	return o, nil
}

// detachRemovedItems clears MenuID on lines whose dish was deleted after it
// was added to the cart. The line keeps its captured price and quantity.
func (s *Service) detachRemovedItems(ctx context.Context, items []Item) error {
	if s.menu == nil {
		return nil
	}

	for i := range items {
		_, err := s.menu.Get(ctx, *items[i].MenuID)
		switch {
		case err == nil:
		case errors.Is(err, menu.ErrItemNotFound):
			s.log.WithField("menu_id", *items[i].MenuID).Warn("ordering item no longer on the menu")
			items[i].MenuID = nil
		default:
			return errors.Wrap(err, "check menu item")
		}
	}
	return nil
}

func (s *Service) ListForUser(ctx context.Context, userID int64) ([]Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) ListAll(ctx context.Context) ([]AdminOrder, error) {
	return s.repo.ListAll(ctx)
}
