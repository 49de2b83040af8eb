package collector

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wikidot-applications-deleter/internal/inbox"
	"wikidot-applications-deleter/internal/inbox/inboxtest"
	"wikidot-applications-deleter/internal/logger"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// 3 solicitudes, una página sin solicitudes, 5 solicitudes
func gappedInbox() *inboxtest.Surface {
	return inboxtest.New(
		inboxtest.Page("p1", "A", 3, 2),
		inboxtest.Page("p2", "A", 0, 4),
		inboxtest.Page("p3", "B", 5, 1),
	)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("recent")
	require.NoError(t, err)
	assert.Equal(t, ModeRecent, m)

	m, err = ParseMode("all")
	require.NoError(t, err)
	assert.Equal(t, ModeAll, m)

	_, err = ParseMode("some")
	assert.Error(t, err)
}

func TestCollectRecentStopsAtEmptyPage(t *testing.T) {
	s := gappedInbox()

	sess, err := Collect(context.Background(), s, ModeRecent)

	require.NoError(t, err)
	assert.Equal(t, 2, sess.Pages)
	assert.Equal(t, []string{"p1-a0", "p1-a1", "p1-a2"}, inbox.IDs(sess.Applications))
	assert.Equal(t, 0, s.Current(), "inbox is reset to the first page")
}

func TestCollectAllContinuesPastEmptyPage(t *testing.T) {
	s := gappedInbox()

	sess, err := Collect(context.Background(), s, ModeAll)

	require.NoError(t, err)
	assert.Equal(t, 3, sess.Pages)
	require.Len(t, sess.Applications, 8)
	assert.Equal(t, "p1-a0", sess.Applications[0].ID)
	assert.Equal(t, "p3-a4", sess.Applications[7].ID)
	assert.Equal(t, 0, s.Current())
	assert.Equal(t, []inbox.Target{inbox.TargetNext, inbox.TargetNext, inbox.TargetFirst}, s.Clicks)
}

func TestCollectStartsFromFirstPage(t *testing.T) {
	s := gappedInbox()
	s.GoTo(2)

	sess, err := Collect(context.Background(), s, ModeRecent)

	require.NoError(t, err)
	assert.Len(t, sess.Applications, 3)
	assert.Equal(t, inbox.TargetFirst, s.Clicks[0])
}

func TestCollectRecentEmptyFirstPage(t *testing.T) {
	s := inboxtest.New(
		inboxtest.Page("p1", "A", 0, 3),
		inboxtest.Page("p2", "A", 4, 0),
	)

	sess, err := Collect(context.Background(), s, ModeRecent)

	require.NoError(t, err)
	assert.Empty(t, sess.Applications)
	assert.Equal(t, 1, sess.Pages)
	assert.Empty(t, s.Clicks)
}

func TestCollectSinglePage(t *testing.T) {
	s := inboxtest.New(inboxtest.Page("p1", "A", 2, 1))

	sess, err := Collect(context.Background(), s, ModeAll)

	require.NoError(t, err)
	assert.Len(t, sess.Applications, 2)
	assert.Empty(t, s.Clicks)
}

func TestCollectHonoursUserSelection(t *testing.T) {
	page := inboxtest.Page("p1", "A", 3, 1)
	page[1].Selected = true
	page[3].Selected = true // a selected personal message is still skipped
	s := inboxtest.New(page)

	sess, err := Collect(context.Background(), s, ModeAll)

	require.NoError(t, err)
	assert.Equal(t, []string{"p1-a1"}, inbox.IDs(sess.Applications))
}

func TestCollectKeepsSites(t *testing.T) {
	sess, err := Collect(context.Background(), gappedInbox(), ModeAll)
	require.NoError(t, err)

	for _, m := range sess.Applications[:3] {
		assert.Equal(t, "A", m.Site)
	}
	for _, m := range sess.Applications[3:] {
		assert.Equal(t, "B", m.Site)
	}
}
