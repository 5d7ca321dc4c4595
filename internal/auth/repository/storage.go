package repository

import (
	"encoding/json"

	"pm_client/internal/auth/domain"
	"pm_client/internal/session"

	"github.com/google/uuid"
)

// AuthStorage decides which tier session data lands in and how it is
// restored. Storage faults never escape it: authentication already
// succeeded server-side, so persistence degrades to "nothing saved"
// rather than failing the flow.
type AuthStorage struct {
	durable   Store
	ephemeral Store
}

func NewAuthStorage(durable, ephemeral Store) *AuthStorage {
	return &AuthStorage{durable: durable, ephemeral: ephemeral}
}

// PersistAuth writes the session record into the tier selected by remember
// and maintains the remember-me preference. An empty token means a
// half-formed result; nothing is written.
func (a *AuthStorage) PersistAuth(identity domain.Identity, token string, remember bool) {
	if token == "" {
		return
	}

	tier := a.ephemeral
	if remember {
		tier = a.durable
	}

	_ = tier.Set(domain.KeyToken, token)
	if raw, err := json.Marshal(identity); err == nil {
		_ = tier.Set(domain.KeyUser, string(raw))
	}
	if identity.Email != "" {
		_ = tier.Set(domain.KeyEmail, identity.Email)
	}

	if remember && identity.Email != "" {
		_ = a.durable.Set(domain.KeyRememberedEmail, identity.Email)
		_ = a.durable.Set(domain.KeyRememberFlag, domain.RememberFlagSet)
	} else if !remember {
		// The preference is actively forgotten, not left stale.
		_ = a.durable.Delete(domain.KeyRememberFlag)
		_ = a.durable.Delete(domain.KeyRememberedEmail)
	}
}

// LoadRememberState reads the remember-me preference from the durable tier.
// Any storage fault yields the safe default: not remembered, no email.
func (a *AuthStorage) LoadRememberState() (email string, remember bool) {
	flag, err := a.durable.Get(domain.KeyRememberFlag)
	if err != nil || flag != domain.RememberFlagSet {
		return "", false
	}
	email, err = a.durable.Get(domain.KeyRememberedEmail)
	if err != nil {
		return "", false
	}
	return email, true
}

// LoadStored reads a persisted session record, preferring the durable tier
// per key. ok is false when either half is missing or the stored identity
// does not parse.
func (a *AuthStorage) LoadStored() (identity domain.Identity, token string, ok bool) {
	token = a.firstValue(domain.KeyToken)
	raw := a.firstValue(domain.KeyUser)
	if token == "" || raw == "" {
		return domain.Identity{}, "", false
	}
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		return domain.Identity{}, "", false
	}
	return identity, token, true
}

// Hydrate seeds the session store from persisted state. It is idempotent:
// a store that is already populated is left alone so a fresher in-memory
// session is never clobbered.
func (a *AuthStorage) Hydrate(store *session.Store) {
	if store.Current().Token != "" {
		return
	}
	identity, token, ok := a.LoadStored()
	if !ok {
		return
	}
	_ = store.Login(identity, token)
}

// ClearAuth removes the session record from both tiers. The remember-me
// preference survives so the login form can still pre-fill the last email.
func (a *AuthStorage) ClearAuth() {
	for _, tier := range []Store{a.durable, a.ephemeral} {
		_ = tier.Delete(domain.KeyToken)
		_ = tier.Delete(domain.KeyUser)
		_ = tier.Delete(domain.KeyEmail)
	}
}

// ClientID returns the stable installation identifier, minting and
// persisting one on first use. Best effort: if the durable tier is down
// the ID is simply regenerated next run.
func (a *AuthStorage) ClientID() string {
	if id, err := a.durable.Get(domain.KeyClientID); err == nil && id != "" {
		return id
	}
	id := uuid.New().String()
	_ = a.durable.Set(domain.KeyClientID, id)
	return id
}

func (a *AuthStorage) firstValue(key string) string {
	if v, err := a.durable.Get(key); err == nil && v != "" {
		return v
	}
	if v, err := a.ephemeral.Get(key); err == nil && v != "" {
		return v
	}
	return ""
}
