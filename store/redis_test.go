package store

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis instance for testing
func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, client
}

func TestRedisStore(t *testing.T) {
	mr, client := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	s := NewRedisStoreWithClient(client, "amelia")

	var missing payload
	assert.ErrorIs(t, s.Load("absent", &missing), ErrNotFound)

	want := payload{Name: "borradores", Count: 7}
	require.NoError(t, s.Save("slot", want))

	var got payload
	require.NoError(t, s.Load("slot", &got))
	assert.Equal(t, want, got)
}

func TestRedisStore_Namespacing(t *testing.T) {
	mr, client := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	a := NewRedisStoreWithClient(client, "tienda-a")
	b := NewRedisStoreWithClient(client, "tienda-b")

	require.NoError(t, a.Save("slot", payload{Name: "a"}))

	// The key carries the namespace prefix.
	assert.True(t, mr.Exists("tienda-a:slot"))

	var got payload
	assert.ErrorIs(t, b.Load("slot", &got), ErrNotFound)
	require.NoError(t, a.Load("slot", &got))
	assert.Equal(t, "a", got.Name)
}

func TestRedisStore_CorruptValue(t *testing.T) {
	mr, client := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	s := NewRedisStoreWithClient(client, "amelia")
	require.NoError(t, mr.Set("amelia:slot", "{not json"))

	var got payload
	err := s.Load("slot", &got)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestNewRedisStore_BadURL(t *testing.T) {
	_, err := NewRedisStore("not-a-url", "amelia")
	assert.Error(t, err)
}
