package cart

import (
	"context"

	"pearl/internal/menu"
	"pearl/internal/session"

	"github.com/pkg/errors"
)

// MenuReader looks up the authoritative price of a menu item.
type MenuReader interface {
	Get(ctx context.Context, id int64) (*menu.Item, error)
}

type Service struct {
	sessions session.Store
	menu     MenuReader
}

func NewService(sessions session.Store, menu MenuReader) *Service {
	return &Service{sessions: sessions, menu: menu}
}

// Add puts one unit of the item in the session cart. The unit price comes
// from the stored menu item, never from the client.
func (s *Service) Add(ctx context.Context, sess *session.Session, itemID int64) (session.Cart, error) {
	item, err := s.menu.Get(ctx, itemID)
	if err != nil {
		return session.Cart{}, err
	}

	cart := sess.Cart.Clone()
	cart.Add(item.ID, item.Price)

	if err := s.sessions.SaveCart(ctx, sess.ID, cart); err != nil {
		return session.Cart{}, errors.Wrap(err, "save cart")
	}
	sess.Cart = cart
	return cart, nil
}

func (s *Service) Clear(ctx context.Context, sess *session.Session) error {
	cart := session.NewCart()
	if err := s.sessions.SaveCart(ctx, sess.ID, cart); err != nil {
		return errors.Wrap(err, "clear cart")
	}
	sess.Cart = cart
	return nil
}
