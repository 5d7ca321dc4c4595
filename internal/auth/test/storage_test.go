package test

import (
	"errors"
	"testing"

	"pm_client/internal/auth/domain"
	"pm_client/internal/auth/repository"
	"pm_client/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupStorage() (durable, ephemeral *repository.EphemeralStore, storage *repository.AuthStorage) {
	// Two in-memory tiers keep the policy branch under test, not sqlite.
	durable = repository.NewEphemeralStore()
	ephemeral = repository.NewEphemeralStore()
	storage = repository.NewAuthStorage(durable, ephemeral)
	return durable, ephemeral, storage
}

func TestPersistAuth_RememberRoundTrip(t *testing.T) {
	durable, _, storage := setupStorage()

	identity := domain.Identity{Email: "john.doe@example.com", Name: "John Doe"}
	storage.PersistAuth(identity, "tok-123", true)

	email, remember := storage.LoadRememberState()
	assert.True(t, remember)
	assert.Equal(t, "john.doe@example.com", email)

	restored, token, ok := storage.LoadStored()
	require.True(t, ok)
	assert.Equal(t, "tok-123", token)
	assert.Equal(t, identity, restored)

	flag, err := durable.Get(domain.KeyRememberFlag)
	require.NoError(t, err)
	assert.Equal(t, domain.RememberFlagSet, flag)
}

func TestPersistAuth_EphemeralDoesNotTouchDurable(t *testing.T) {
	durable, ephemeral, storage := setupStorage()

	storage.PersistAuth(domain.Identity{Email: "a@b.com"}, "tok-456", false)

	token, err := durable.Get(domain.KeyToken)
	require.NoError(t, err)
	assert.Empty(t, token)

	token, err = ephemeral.Get(domain.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-456", token)

	email, remember := storage.LoadRememberState()
	assert.False(t, remember)
	assert.Empty(t, email)
}

func TestPersistAuth_EmptyTokenIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No EXPECT calls: any storage access fails the test.
	durable := NewMockStore(ctrl)
	ephemeral := NewMockStore(ctrl)
	storage := repository.NewAuthStorage(durable, ephemeral)

	storage.PersistAuth(domain.Identity{Email: "a@b.com"}, "", true)
	storage.PersistAuth(domain.Identity{Email: "a@b.com"}, "", false)
}

func TestPersistAuth_RememberFalseForgetsPreviousEmail(t *testing.T) {
	durable, _, storage := setupStorage()

	storage.PersistAuth(domain.Identity{Email: "old@b.com"}, "tok-1", true)
	_, remember := storage.LoadRememberState()
	require.True(t, remember)

	storage.PersistAuth(domain.Identity{Email: "new@b.com"}, "tok-2", false)

	email, remember := storage.LoadRememberState()
	assert.False(t, remember)
	assert.Empty(t, email)

	stored, err := durable.Get(domain.KeyRememberedEmail)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestLoadRememberState_StorageFaultFailsSoft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	durable := NewMockStore(ctrl)
	durable.EXPECT().Get(domain.KeyRememberFlag).Return("", errors.New("storage disabled"))
	storage := repository.NewAuthStorage(durable, repository.NewEphemeralStore())

	email, remember := storage.LoadRememberState()

	assert.False(t, remember)
	assert.Empty(t, email)
}

func TestLoadRememberState_EmailReadFaultFailsSoft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	durable := NewMockStore(ctrl)
	durable.EXPECT().Get(domain.KeyRememberFlag).Return(domain.RememberFlagSet, nil)
	durable.EXPECT().Get(domain.KeyRememberedEmail).Return("", errors.New("storage disabled"))
	storage := repository.NewAuthStorage(durable, repository.NewEphemeralStore())

	email, remember := storage.LoadRememberState()

	assert.False(t, remember)
	assert.Empty(t, email)
}

func TestHydrate_PopulatesEmptyStore(t *testing.T) {
	_, _, storage := setupStorage()
	store := session.NewStore()

	storage.PersistAuth(domain.Identity{Email: "a@b.com", Name: "A"}, "tok-789", true)
	storage.Hydrate(store)

	current := store.Current()
	require.True(t, current.Active())
	assert.Equal(t, "tok-789", current.Token)
	assert.Equal(t, "a@b.com", current.Identity.Email)
}

func TestHydrate_FallsBackToEphemeralTier(t *testing.T) {
	_, _, storage := setupStorage()
	store := session.NewStore()

	storage.PersistAuth(domain.Identity{Email: "a@b.com"}, "tok-eph", false)
	storage.Hydrate(store)

	current := store.Current()
	require.True(t, current.Active())
	assert.Equal(t, "tok-eph", current.Token)
}

func TestHydrate_IdempotentWhenStorePopulated(t *testing.T) {
	_, _, storage := setupStorage()
	store := session.NewStore()
	require.NoError(t, store.Login(domain.Identity{Email: "fresh@b.com"}, "fresh-token"))

	storage.PersistAuth(domain.Identity{Email: "stale@b.com"}, "stale-token", true)
	storage.Hydrate(store)

	current := store.Current()
	assert.Equal(t, "fresh-token", current.Token)
	assert.Equal(t, "fresh@b.com", current.Identity.Email)
}

func TestHydrate_MalformedStoredUserLeavesStoreEmpty(t *testing.T) {
	durable, _, storage := setupStorage()
	store := session.NewStore()

	require.NoError(t, durable.Set(domain.KeyToken, "tok-bad"))
	require.NoError(t, durable.Set(domain.KeyUser, "{not json"))

	storage.Hydrate(store)

	assert.False(t, store.Current().Active())
}

func TestHydrate_TokenWithoutUserLeavesStoreEmpty(t *testing.T) {
	durable, _, storage := setupStorage()
	store := session.NewStore()

	require.NoError(t, durable.Set(domain.KeyToken, "tok-lonely"))

	storage.Hydrate(store)

	assert.False(t, store.Current().Active())
}

func TestClearAuth_PreservesRememberedEmail(t *testing.T) {
	durable, ephemeral, storage := setupStorage()

	storage.PersistAuth(domain.Identity{Email: "a@b.com"}, "tok-1", true)
	storage.ClearAuth()

	token, err := durable.Get(domain.KeyToken)
	require.NoError(t, err)
	assert.Empty(t, token)

	token, err = ephemeral.Get(domain.KeyToken)
	require.NoError(t, err)
	assert.Empty(t, token)

	email, remember := storage.LoadRememberState()
	assert.True(t, remember)
	assert.Equal(t, "a@b.com", email)
}

func TestClientID_StableAcrossCalls(t *testing.T) {
	_, _, storage := setupStorage()

	first := storage.ClientID()
	second := storage.ClientID()

	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
}
