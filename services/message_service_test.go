package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveMessage_Validation(t *testing.T) {
	svc := NewMessageService(newTestDB(t))

	_, err := svc.Save("", "alice", "hello")
	require.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Save("CH123", "alice", "")
	require.ErrorIs(t, err, ErrMissingFields)

	// nothing persisted by the failed attempts
	messages, err := svc.List("CH123")
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestSaveMessage_AssignsTimestamp(t *testing.T) {
	svc := NewMessageService(newTestDB(t))

	msg, err := svc.Save("CH123", "alice", "hello")
	require.NoError(t, err)
	assert.NotZero(t, msg.ID)
	assert.False(t, msg.DateCreated.IsZero())
	assert.Equal(t, "alice", msg.Author)
}

func TestListMessages_OrderAndIsolation(t *testing.T) {
	svc := NewMessageService(newTestDB(t))

	// interleave appends to a second conversation
	_, err := svc.Save("C", "alice", "m1")
	require.NoError(t, err)
	_, err = svc.Save("D", "bob", "other-1")
	require.NoError(t, err)
	_, err = svc.Save("C", "bob", "m2")
	require.NoError(t, err)
	_, err = svc.Save("D", "alice", "other-2")
	require.NoError(t, err)
	_, err = svc.Save("C", "alice", "m3")
	require.NoError(t, err)

	messages, err := svc.List("C")
	require.NoError(t, err)
	require.Len(t, messages, 3)

	bodies := []string{messages[0].Body, messages[1].Body, messages[2].Body}
	assert.Equal(t, []string{"m1", "m2", "m3"}, bodies)

	for i := 1; i < len(messages); i++ {
		assert.False(t, messages[i].DateCreated.Before(messages[i-1].DateCreated))
	}
}

func TestListMessages_EmptyConversation(t *testing.T) {
	svc := NewMessageService(newTestDB(t))

	messages, err := svc.List("CH-none")
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}
