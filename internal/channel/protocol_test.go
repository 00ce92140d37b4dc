package channel

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alzin/comy-chatsync/internal/entity"
	"github.com/alzin/comy-chatsync/pkg/constant"
)

func TestIsMessageEvent(t *testing.T) {
	assert.True(t, IsMessageEvent(constant.EventReceiveMessage))
	assert.True(t, IsMessageEvent(constant.EventNewMessage))
	assert.False(t, IsMessageEvent(constant.EventJoinChat))
	assert.False(t, IsMessageEvent("typing"))
}

func messageFrame(t *testing.T, event string, ev *entity.MessageEvent) []byte {
	t.Helper()
	data, err := json.Marshal(ev)
	require.NoError(t, err)
	raw, err := json.Marshal(Frame{Event: event, Data: data})
	require.NoError(t, err)
	return raw
}

func TestDispatch_BothAliasesReachHandler(t *testing.T) {
	c := &WsChannel{}

	var got []*entity.MessageEvent
	c.Subscribe(func(ctx context.Context, ev *entity.MessageEvent) {
		got = append(got, ev)
	})

	ev := &entity.MessageEvent{ConversationId: "c1", Content: "hi", CreatedAt: 100, ReadBy: []string{"u2"}}
	require.NoError(t, c.dispatch(context.Background(), messageFrame(t, constant.EventReceiveMessage, ev)))
	require.NoError(t, c.dispatch(context.Background(), messageFrame(t, constant.EventNewMessage, ev)))

	require.Len(t, got, 2)
	assert.Equal(t, "c1", got[0].ConversationId)
	assert.Equal(t, got[0].Content, got[1].Content)
}

func TestDispatch_IgnoresForeignEvents(t *testing.T) {
	c := &WsChannel{}

	called := false
	c.Subscribe(func(ctx context.Context, ev *entity.MessageEvent) { called = true })

	raw, err := json.Marshal(Frame{Event: "presence_update", Data: json.RawMessage(`{}`)})
	require.NoError(t, err)

	require.NoError(t, c.dispatch(context.Background(), raw))
	assert.False(t, called)
}

func TestDispatch_MalformedFrames(t *testing.T) {
	c := &WsChannel{}
	c.Subscribe(func(ctx context.Context, ev *entity.MessageEvent) {
		t.Fatal("handler must not run for malformed frames")
	})

	t.Run("not json", func(t *testing.T) {
		assert.ErrorIs(t, c.dispatch(context.Background(), []byte("not-json")), ErrInvalidFrame)
	})

	t.Run("bad payload", func(t *testing.T) {
		raw, err := json.Marshal(Frame{Event: constant.EventNewMessage, Data: json.RawMessage(`"nope"`)})
		require.NoError(t, err)
		assert.ErrorIs(t, c.dispatch(context.Background(), raw), ErrInvalidFrame)
	})

	t.Run("missing conversation id", func(t *testing.T) {
		raw := messageFrame(t, constant.EventNewMessage, &entity.MessageEvent{Content: "hi"})
		assert.ErrorIs(t, c.dispatch(context.Background(), raw), ErrInvalidFrame)
	})
}

func TestJoinFrameEncoding(t *testing.T) {
	data, err := Encode(JoinData{ConversationId: "c1"})
	require.NoError(t, err)

	var decoded JoinData
	require.NoError(t, Decode(data, &decoded))
	assert.Equal(t, "c1", decoded.ConversationId)
}
