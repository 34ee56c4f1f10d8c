package moderation

import (
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type banCall struct{ guildID, userID, reason string }

type timeoutCall struct {
	guildID, userID string
	durationMs      int64
	reason          string
}

// fakeActions records calls and returns configured state. The zero value
// knows no members and no channels.
type fakeActions struct {
	members  map[string]*Member
	channels map[string]*Channel
	messages []string

	bans     []banCall
	kicks    []banCall
	timeouts []timeoutCall
	deleted  [][]string
	sent     []string

	err error
}

func (f *fakeActions) Ban(guildID, userID, reason string) error {
	if f.err != nil {
		return f.err
	}
	f.bans = append(f.bans, banCall{guildID, userID, reason})
	return nil
}

func (f *fakeActions) Kick(guildID, userID, reason string) error {
	if f.err != nil {
		return f.err
	}
	f.kicks = append(f.kicks, banCall{guildID, userID, reason})
	return nil
}

func (f *fakeActions) ApplyTimeout(guildID, userID string, durationMs int64, reason string) error {
	if f.err != nil {
		return f.err
	}
	f.timeouts = append(f.timeouts, timeoutCall{guildID, userID, durationMs, reason})
	return nil
}

func (f *fakeActions) ResolveMember(guildID, userID string) (*Member, error) {
	return f.members[userID], nil
}

func (f *fakeActions) FetchRecentMessages(channelID string, limit int) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > len(f.messages) {
		limit = len(f.messages)
	}
	return f.messages[:limit], nil
}

func (f *fakeActions) BulkDelete(channelID string, messageIDs []string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, messageIDs)
	return nil
}

func (f *fakeActions) SendMessage(channelID, content string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, content)
	return nil
}

func (f *fakeActions) SendEmbed(channelID string, embed *discordgo.MessageEmbed) error {
	return nil
}

func (f *fakeActions) ResolveChannel(channelID string) (*Channel, error) {
	ch, ok := f.channels[channelID]
	if !ok {
		return nil, errors.New("unknown channel")
	}
	return ch, nil
}

func (f *fakeActions) Latency() time.Duration { return 42 * time.Millisecond }

var (
	actor  = User{ID: "mod1", Tag: "moderator"}
	target = User{ID: "u1", Tag: "troublemaker"}
)

func TestBan(t *testing.T) {
	fake := &fakeActions{}
	svc := NewService(fake)

	res, err := svc.Ban("g1", target, actor, "spamming invites")
	require.NoError(t, err)

	require.Len(t, fake.bans, 1)
	assert.Equal(t, banCall{"g1", "u1", "spamming invites"}, fake.bans[0])
	assert.Equal(t, KindBan, res.Kind)
	assert.Equal(t, target, res.Target)
	assert.Equal(t, actor, res.Actor)
	assert.Equal(t, "spamming invites", res.Reason)
}

func TestBanDefaultsReason(t *testing.T) {
	fake := &fakeActions{}
	res, err := NewService(fake).Ban("g1", target, actor, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultReason, res.Reason)
	assert.Equal(t, DefaultReason, fake.bans[0].reason)
}

func TestBanRemoteFailure(t *testing.T) {
	fake := &fakeActions{err: errors.New("missing permissions")}
	res, err := NewService(fake).Ban("g1", target, actor, "x")
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Equal(t, RemoteActionFailed, KindOf(err))
	// The user-facing message never carries the raw error.
	assert.NotContains(t, err.Error(), "missing permissions")
}

func TestKickNonMember(t *testing.T) {
	fake := &fakeActions{}
	res, err := NewService(fake).Kick("g1", target, actor, "")
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Equal(t, ValidationFailed, KindOf(err))
	assert.Equal(t, "That user is not a member of this server.", err.Error())
	assert.Empty(t, fake.kicks)
}

func TestKick(t *testing.T) {
	fake := &fakeActions{members: map[string]*Member{"u1": {User: target}}}
	res, err := NewService(fake).Kick("g1", target, actor, "rude")
	require.NoError(t, err)
	require.Len(t, fake.kicks, 1)
	assert.Equal(t, KindKick, res.Kind)
	assert.Equal(t, "rude", res.Reason)
}

func TestTimeoutConvertsToMilliseconds(t *testing.T) {
	fake := &fakeActions{members: map[string]*Member{"u1": {User: target}}}
	res, err := NewService(fake).Timeout("g1", target, actor, 600, "", KindMute)
	require.NoError(t, err)

	require.Len(t, fake.timeouts, 1)
	assert.Equal(t, int64(600000), fake.timeouts[0].durationMs)
	assert.Equal(t, DefaultReason, fake.timeouts[0].reason)
	assert.Equal(t, "10 minutes", res.DurationDisplay())
	assert.Equal(t, KindMute, res.Kind)
	assert.Equal(t, DefaultReason, res.Reason)
}

func TestTimeoutNonMember(t *testing.T) {
	fake := &fakeActions{}
	_, err := NewService(fake).Timeout("g1", target, actor, 60, "", KindTimeout)
	require.Error(t, err)
	assert.Equal(t, ValidationFailed, KindOf(err))
	assert.Empty(t, fake.timeouts)
}

func TestPurgeBounds(t *testing.T) {
	for _, amount := range []int{0, 101, -5} {
		fake := &fakeActions{err: errors.New("must not be called")}
		_, err := NewService(fake).Purge("c1", actor, amount)
		require.Error(t, err, "amount %d", amount)
		assert.Equal(t, ValidationFailed, KindOf(err))
		assert.Equal(t, "You can only purge between 1 and 100 messages.", err.Error())
	}
}

func TestPurge(t *testing.T) {
	msgs := make([]string, 100)
	for i := range msgs {
		msgs[i] = strings.Repeat("m", i+1)
	}

	for _, amount := range []int{1, 100} {
		fake := &fakeActions{messages: msgs}
		res, err := NewService(fake).Purge("c1", actor, amount)
		require.NoError(t, err)
		require.Len(t, fake.deleted, 1)
		assert.Len(t, fake.deleted[0], amount)
		assert.Equal(t, amount, res.DeletedCount)
		assert.Equal(t, "c1", res.ChannelID)
		assert.Equal(t, KindPurge, res.Kind)
	}
}

func TestPurgeRemoteFailure(t *testing.T) {
	fake := &fakeActions{err: errors.New("messages too old")}
	res, err := NewService(fake).Purge("c1", actor, 10)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Equal(t, RemoteActionFailed, KindOf(err))
}

func TestSend(t *testing.T) {
	fake := &fakeActions{channels: map[string]*Channel{
		"c1": {ID: "c1", Name: "general", Text: true},
	}}
	res, channel, err := NewService(fake).Send("c1", "hello there")
	require.NoError(t, err)
	assert.Equal(t, "general", channel.Name)
	assert.Equal(t, KindBridgeSend, res.Kind)
	assert.Equal(t, "hello there", res.Preview)
	assert.Equal(t, []string{"hello there"}, fake.sent)
}

func TestSendUnknownOrNonTextChannel(t *testing.T) {
	fake := &fakeActions{channels: map[string]*Channel{
		"voice": {ID: "voice", Name: "Voice", Text: false},
	}}
	svc := NewService(fake)

	for _, id := range []string{"missing", "voice"} {
		_, _, err := svc.Send(id, "hello")
		require.Error(t, err, "channel %s", id)
		assert.Equal(t, ValidationFailed, KindOf(err))
	}
	assert.Empty(t, fake.sent)
}

func TestSendPreviewCapped(t *testing.T) {
	fake := &fakeActions{channels: map[string]*Channel{
		"c1": {ID: "c1", Name: "general", Text: true},
	}}
	long := strings.Repeat("a", 3000)
	res, _, err := NewService(fake).Send("c1", long)
	require.NoError(t, err)
	assert.Len(t, res.Preview, 1024)
	// The full body still goes out unmodified.
	assert.Equal(t, long, fake.sent[0])
}

func TestSendPreviewCappedOnRuneBoundary(t *testing.T) {
	fake := &fakeActions{channels: map[string]*Channel{
		"c1": {ID: "c1", Name: "general", Text: true},
	}}
	long := strings.Repeat("a", 1023) + strings.Repeat("é", 10)
	res, _, err := NewService(fake).Send("c1", long)
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(res.Preview))
	assert.Equal(t, 1024, utf8.RuneCountInString(res.Preview))
	assert.Equal(t, strings.Repeat("a", 1023)+"é", res.Preview)
	assert.Equal(t, long, fake.sent[0])
}
