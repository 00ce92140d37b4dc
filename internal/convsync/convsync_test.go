package convsync

import (
	"context"
	"sync"

	"github.com/alzin/comy-chatsync/internal/channel"
	"github.com/alzin/comy-chatsync/internal/config"
	"github.com/alzin/comy-chatsync/internal/entity"
	"github.com/alzin/comy-chatsync/pkg/constant"
)

// fakeProvider serves snapshots from a closure
type fakeProvider struct {
	fetch func(ctx context.Context, viewerId string) ([]*entity.RawConversation, error)
}

func (p *fakeProvider) FetchConversations(ctx context.Context, viewerId string) ([]*entity.RawConversation, error) {
	return p.fetch(ctx, viewerId)
}

// fakeChannel records joins and captures subscribed handlers
type fakeChannel struct {
	mu       sync.Mutex
	joins    []string
	handlers []channel.Handler
	joinErr  error
}

func (c *fakeChannel) Subscribe(h channel.Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, h)
}

func (c *fakeChannel) Join(conversationId string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.joinErr != nil {
		return c.joinErr
	}
	c.joins = append(c.joins, conversationId)
	return nil
}

func (c *fakeChannel) Run(ctx context.Context) error { return nil }

func (c *fakeChannel) Close() error { return nil }

func (c *fakeChannel) joined() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.joins))
	copy(out, c.joins)
	return out
}

func testConfig() *config.Config {
	return &config.Config{
		Bot: config.BotConfig{
			Name:  constant.DefaultBotName,
			Image: constant.DefaultBotImage,
		},
	}
}

func staticProvider(raws []*entity.RawConversation) *fakeProvider {
	return &fakeProvider{
		fetch: func(ctx context.Context, viewerId string) ([]*entity.RawConversation, error) {
			return raws, nil
		},
	}
}

// snapshotOf builds the two-member conversation used across the suite:
// viewer u1 talking to u2, latest message "hi" at t0 read only by u2.
func snapshotOf(id string, t0 int64) *entity.RawConversation {
	return &entity.RawConversation{
		Id: id,
		Users: []entity.Participant{
			{Id: "u1", Role: constant.RoleMember},
			{Id: "u2", Role: constant.RoleMember, Image: "/images/u2.png"},
		},
		LatestMessage: &entity.RawMessage{
			Content:   "hi",
			CreatedAt: t0,
			ReadBy:    []string{"u2"},
		},
		UpdatedAt: t0,
	}
}

func botSnapshot(botUserId string) *entity.RawConversation {
	return &entity.RawConversation{
		Id:   "c_bot",
		Name: constant.DefaultBotName,
		Users: []entity.Participant{
			{Id: "u1", Role: constant.RoleMember},
			{Id: botUserId, Role: constant.RoleBot},
		},
		UpdatedAt: 1000,
	}
}
