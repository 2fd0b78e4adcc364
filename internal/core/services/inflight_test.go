package services

import (
	"sync"
	"testing"

	"github.com/SscSPs/journal_lifecycle_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInFlightGuard_RejectsSamePair(t *testing.T) {
	g := NewInFlightGuard()

	release, err := g.TryEnter("c1|2024-03", ActionApprove, "s1")
	require.NoError(t, err)
	assert.True(t, g.IsBusy("s1"))

	_, err = g.TryEnter("c1|2024-03", ActionApprove, "s1")
	assert.ErrorIs(t, err, apperrors.ErrActionInProgress)

	// A different action on the same entity is allowed.
	releaseDelete, err := g.TryEnter("c1|2024-03", ActionDelete, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"approve:s1", "delete:s1"}, g.Pending("c1|2024-03"))
	assert.Empty(t, g.Pending("c2|2024-03"))

	release()
	release()
	assert.True(t, g.IsBusy("s1"))
	releaseDelete()
	assert.False(t, g.IsBusy("s1"))

	release, err = g.TryEnter("c1|2024-03", ActionApprove, "s1")
	require.NoError(t, err)
	release()
}

func TestInFlightGuard_ConcurrentEntersAdmitOne(t *testing.T) {
	g := NewInFlightGuard()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		admitted int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := g.TryEnter("scope", ActionMarkPosted, "scope"); err == nil {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, admitted)
}
