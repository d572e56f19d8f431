package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartcontract/internal/usecase/session"

	mock_interfaces "smartcontract/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSignatureUseCase_Sign(t *testing.T) {
	t.Run("blank signatory", func(t *testing.T) {
		uc := NewSignatureUseCase(nil, time.Millisecond, session.New())
		_, err := uc.Sign(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidSignatory) {
			t.Fatalf("expected ErrInvalidSignatory, got %v", err)
		}
	})

	t.Run("success after the configured delay", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clock := mock_interfaces.NewMockClock(ctrl)
		sess := session.New()
		uc := NewSignatureUseCase(clock, time.Millisecond, sess)

		signedAt := time.Date(2025, time.December, 12, 10, 30, 0, 0, time.UTC)
		clock.EXPECT().Now().Return(signedAt)

		receipt, err := uc.Sign(context.Background(), "张三")
		if err != nil {
			t.Fatalf("sign failed: %v", err)
		}
		if receipt.TransactionID == "" {
			t.Fatalf("expected a transaction id")
		}
		if receipt.Signatory != "张三" {
			t.Fatalf("unexpected signatory %s", receipt.Signatory)
		}
		if !receipt.SignedAt.Equal(signedAt) {
			t.Fatalf("unexpected signing time %v", receipt.SignedAt)
		}
		if sess.Snapshot().Loading {
			t.Fatalf("loading must be released after signing")
		}
	})

	t.Run("context cancellation aborts", func(t *testing.T) {
		sess := session.New()
		uc := NewSignatureUseCase(nil, time.Minute, sess)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := uc.Sign(ctx, "张三")
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if sess.Snapshot().Loading {
			t.Fatalf("loading must be released on cancellation")
		}
	})

	t.Run("non-positive delay falls back to default", func(t *testing.T) {
		uc := NewSignatureUseCase(nil, 0, session.New())
		if uc.delay != DefaultSignatureDelay {
			t.Fatalf("expected default delay, got %v", uc.delay)
		}
	})
}
