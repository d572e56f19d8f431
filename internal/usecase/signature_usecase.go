package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"smartcontract/internal/domain/entities"
	"smartcontract/internal/usecase/interfaces"
	"smartcontract/internal/usecase/session"
)

var ErrInvalidSignatory = errors.New("invalid signatory")

// DefaultSignatureDelay matches the simulated signing latency of the
// platform front end.
const DefaultSignatureDelay = 1500 * time.Millisecond

// ISignatureUseCase exposes the electronic signature flow.
//
// Signing is simulated: a fixed-latency completion with no remote call.

type ISignatureUseCase interface {
	Sign(ctx context.Context, signatory string) (entities.SignatureReceipt, error)
}

type SignatureUseCase struct {
	clock   interfaces.Clock
	delay   time.Duration
	session *session.Session
}

var _ ISignatureUseCase = (*SignatureUseCase)(nil)

func NewSignatureUseCase(clock interfaces.Clock, delay time.Duration, sess *session.Session) *SignatureUseCase {
	if delay <= 0 {
		delay = DefaultSignatureDelay
	}
	return &SignatureUseCase{clock: clock, delay: delay, session: sess}
}

// Sign completes after the configured latency and reports success with a
// fresh transaction id. The loading flag is released on every exit path,
// including context cancellation.
func (u *SignatureUseCase) Sign(ctx context.Context, signatory string) (entities.SignatureReceipt, error) {
	signatory = strings.TrimSpace(signatory)
	if signatory == "" {
		return entities.SignatureReceipt{}, ErrInvalidSignatory
	}

	release := u.session.Begin()
	defer release()

	log.Printf("[signature][usecase] sign start signatory=%s", signatory)
	timer := time.NewTimer(u.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		log.Printf("[signature][usecase] sign aborted signatory=%s err=%v", signatory, ctx.Err())
		return entities.SignatureReceipt{}, ctx.Err()
	}

	receipt := entities.SignatureReceipt{
		TransactionID: uuid.NewString(),
		Signatory:     signatory,
		SignedAt:      u.clock.Now(),
	}
	log.Printf("[signature][usecase] sign success signatory=%s transaction_id=%s", signatory, receipt.TransactionID)
	return receipt, nil
}
