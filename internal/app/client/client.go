package client

import (
	"context"
	"errors"
	"fmt"

	"clipshare/internal/app/client/config"
	"clipshare/internal/domain/clipboard"

	"golang.org/x/exp/slog"
)

// ErrWrongPasscode is returned by Unlock when the server rejects the passcode.
var ErrWrongPasscode = errors.New("неверный пароль")

// PasscodePrompt asks the user for the passcode when none is configured.
type PasscodePrompt func() (string, error)

type App struct {
	config *config.Config
	log    *slog.Logger
	api    *HTTPClient
}

func New(cfg *config.Config, log *slog.Logger) *App {
	return &App{
		config: cfg,
		log:    log,
		api:    NewHTTPClient(cfg, log),
	}
}

// API exposes the raw HTTP client for commands that need no gate.
func (a *App) API() *HTTPClient {
	return a.api
}

// Unlock verifies the configured passcode, or the prompted one when the
// configuration has none. Every attempt is a login event on the server.
func (a *App) Unlock(ctx context.Context, prompt PasscodePrompt) error {
	passcode := a.config.Passcode
	if passcode == "" {
		if prompt == nil {
			return fmt.Errorf("пароль не задан")
		}
		var err error
		if passcode, err = prompt(); err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}
	}

	ok, err := a.api.VerifyPasscode(ctx, passcode)
	if err != nil {
		return fmt.Errorf("ошибка проверки пароля: %w", err)
	}
	if !ok {
		return ErrWrongPasscode
	}
	return nil
}

// Copy fetches an entry and reports the copy to the server. A failed report
// does not fail the copy.
func (a *App) Copy(ctx context.Context, id string) (clipboard.Entry, error) {
	entry, err := a.api.Get(ctx, id)
	if err != nil {
		return clipboard.Entry{}, err
	}

	if err := a.api.LogCopy(ctx, entry.ID, entry.Content); err != nil {
		a.log.Warn("Не удалось зафиксировать копирование", "id", entry.ID, "error", err)
	}
	return entry, nil
}
