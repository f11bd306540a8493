// Package identity derives the pseudo-identity attached to every audit event.
// It authenticates nobody: the session id is fresh for every request and only
// loosely correlates events of one request burst.
package identity

import (
	"context"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// Unknown marks a field that could not be captured.
const Unknown = "unknown"

const (
	HeaderForwardedFor = "X-Forwarded-For"
	HeaderRealIP       = "X-Real-IP"
	HeaderRemoteAddr   = "X-Remote-Addr"
	HeaderUserAgent    = "User-Agent"
)

type Identity struct {
	SessionID     string `json:"sessionId"`
	UserAgent     string `json:"userAgent"`
	ClientAddress string `json:"clientAddress"`
}

// Normalized fills the fields that were never captured with Unknown. The zero
// Identity was never captured at all. Otherwise an empty UserAgent is kept: it
// is the value of a User-Agent header that was sent empty.
func (i Identity) Normalized() Identity {
	if i == (Identity{}) {
		return Identity{SessionID: Unknown, UserAgent: Unknown, ClientAddress: Unknown}
	}
	if i.SessionID == "" {
		i.SessionID = Unknown
	}
	if i.ClientAddress == "" {
		i.ClientAddress = Unknown
	}
	return i
}

// Headers is satisfied by http.Header; HeaderFunc adapts other lookups.
type Headers interface {
	Get(key string) string
}

// multiHeaders can tell an absent header from an empty one.
type multiHeaders interface {
	Values(key string) []string
}

type HeaderFunc func(key string) string

func (f HeaderFunc) Get(key string) string { return f(key) }

// Extract builds the identity of one request. A missing User-Agent is recorded
// as Unknown; an empty one stays empty when h can report presence (http.Header
// does, HeaderFunc does not).
func Extract(h Headers) Identity {
	return Identity{
		SessionID:     NewSessionID(),
		UserAgent:     userAgent(h),
		ClientAddress: ClientIP(h),
	}
}

func userAgent(h Headers) string {
	if m, ok := h.(multiHeaders); ok {
		values := m.Values(HeaderUserAgent)
		if len(values) == 0 {
			return Unknown
		}
		return values[0]
	}
	if ua := h.Get(HeaderUserAgent); ua != "" {
		return ua
	}
	return Unknown
}

// ClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then
// X-Remote-Addr.
func ClientIP(h Headers) string {
	if forwarded := h.Get(HeaderForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if realIP := strings.TrimSpace(h.Get(HeaderRealIP)); realIP != "" {
		return realIP
	}
	if remote := strings.TrimSpace(h.Get(HeaderRemoteAddr)); remote != "" {
		return remote
	}
	return Unknown
}

// NewSessionID joins two random base-36 fragments and the base-36 millisecond clock.
func NewSessionID() string {
	return fragment() + fragment() + strconv.FormatInt(time.Now().UnixMilli(), 36)
}

func fragment() string {
	s := strconv.FormatUint(rand.Uint64(), 36)
	if len(s) > 13 {
		s = s[:13]
	}
	return s
}

type ctxKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the identity stored by WithIdentity, or an all-Unknown
// identity when the request did not pass the identity middleware.
func FromContext(ctx context.Context) Identity {
	id, _ := ctx.Value(ctxKey{}).(Identity)
	return id.Normalized()
}

// Lookup reports whether ctx carries an identity.
func Lookup(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}
