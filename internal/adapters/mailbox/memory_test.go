package mailbox

import (
	"context"
	"fmt"
	"testing"

	"github.com/liorb/inbox-assistant/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMemoryMailboxNewestFirst(t *testing.T) {
	box := NewMemoryMailbox(zap.NewNop(), 10)
	box.Append(core.EmailMessage{ID: "old"})
	box.Append(core.EmailMessage{ID: "new"})

	messages, err := box.ListMessages(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "new", messages[0].ID)
	assert.Equal(t, "old", messages[1].ID)
}

func TestMemoryMailboxHonorsMaxResults(t *testing.T) {
	box := NewMemoryMailbox(zap.NewNop(), 10)
	for i := 0; i < 5; i++ {
		box.Append(core.EmailMessage{ID: fmt.Sprintf("m%d", i)})
	}

	messages, err := box.ListMessages(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, messages, 2)
	assert.Equal(t, "m4", messages[0].ID)
}

func TestMemoryMailboxEmptyIsNotAnError(t *testing.T) {
	box := NewMemoryMailbox(zap.NewNop(), 10)

	messages, err := box.ListMessages(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestMemoryMailboxDropsOldestBeyondBound(t *testing.T) {
	box := NewMemoryMailbox(zap.NewNop(), 3)
	for i := 0; i < 5; i++ {
		box.Append(core.EmailMessage{ID: fmt.Sprintf("m%d", i)})
	}

	assert.Equal(t, 3, box.Len())
	messages, err := box.ListMessages(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "m4", messages[0].ID)
	assert.Equal(t, "m2", messages[2].ID)
}
