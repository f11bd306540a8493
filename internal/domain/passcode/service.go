package passcode

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"clipshare/internal/domain/audit"
	"clipshare/internal/identity"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// Recorder appends audit events without reporting failures.
type Recorder interface {
	Record(ctx context.Context, p audit.Payload, who identity.Identity)
}

type Servicer interface {
	Verify(ctx context.Context, attempt string, who identity.Identity) bool
}

// Verifier checks passcode attempts against one shared secret. It issues no
// session: callers only learn whether the attempt matched.
type Verifier struct {
	secret []byte
	hash   []byte
	audit  Recorder
	log    *slog.Logger
}

// NewVerifier builds a verifier for secret, or for the bcrypt hash when one
// is given.
func NewVerifier(secret, hash string, rec Recorder, log *slog.Logger) (*Verifier, error) {
	if secret == "" && hash == "" {
		return nil, ErrEmptySecret
	}

	v := &Verifier{
		secret: []byte(secret),
		audit:  rec,
		log:    log.With("component", "passcode_verifier"),
	}
	if hash != "" {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, fmt.Errorf("passcode hash: %w", err)
		}
		v.hash = []byte(hash)
	}
	return v, nil
}

// Verify reports whether attempt matches and records exactly one login event.
func (v *Verifier) Verify(ctx context.Context, attempt string, who identity.Identity) bool {
	ok := v.match(attempt)

	v.audit.Record(ctx, audit.Login{PasscodeAttempted: attempt, Success: ok}, who)
	v.log.Info("passcode verified", "success", ok, "session_id", who.SessionID)
	return ok
}

func (v *Verifier) match(attempt string) bool {
	if v.hash != nil {
		err := bcrypt.CompareHashAndPassword(v.hash, []byte(attempt))
		if err != nil && !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			v.log.Warn("passcode hash comparison failed", "error", err)
		}
		return err == nil
	}
	return subtle.ConstantTimeCompare(v.secret, []byte(attempt)) == 1
}
