package notify

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}
	f.sent = append(f.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, nil
}

func TestTelegramNotify(t *testing.T) {
	fake := &fakeSender{}
	tg := &Telegram{bot: fake, chatID: 1001}

	if err := tg.Notify(context.Background(), "<b>New booking</b>"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fake.sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(fake.sent))
	}
	msg := fake.sent[0]
	if msg.ChatID != 1001 || msg.Text != "<b>New booking</b>" || msg.ParseMode != tgbotapi.ModeHTML {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

func TestTelegramNotifyErrors(t *testing.T) {
	tg := &Telegram{bot: &fakeSender{err: errors.New("blocked")}, chatID: 1}
	if err := tg.Notify(context.Background(), "x"); err == nil {
		t.Fatal("expected send error")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ok := &fakeSender{}
	tg = &Telegram{bot: ok, chatID: 1}
	if err := tg.Notify(ctx, "x"); err == nil || len(ok.sent) != 0 {
		t.Fatal("expected cancelled context to skip sending")
	}
}

func TestNoop(t *testing.T) {
	var n Notifier = Noop{}
	if err := n.Notify(context.Background(), "x"); err != nil {
		t.Fatal(err)
	}
}
