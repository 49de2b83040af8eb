package inbox_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wikidot-applications-deleter/internal/inbox"
	"wikidot-applications-deleter/internal/inbox/inboxtest"
)

func TestIsListView(t *testing.T) {
	for _, hash := range []string{"", "#", "#/inbox", "#/inbox/", "#/inbox/p2", "#/inbox/p13/"} {
		assert.True(t, inbox.IsListView(hash), hash)
	}
	for _, hash := range []string{"#/inbox/123456", "#/sent", "#/new", "#/new/2893766", "#/inbox/p2/x", "#/drafts"} {
		assert.False(t, inbox.IsListView(hash), hash)
	}
}

func TestScanClassifiesRows(t *testing.T) {
	s := inboxtest.New([]inbox.Row{
		inboxtest.Application("1", "ExampleWiki"),
		inboxtest.Personal("2"),
	})

	msgs, err := inbox.Scan(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	assert.True(t, msgs[0].IsApplication)
	assert.Equal(t, "ExampleWiki", msgs[0].Site)
	assert.False(t, msgs[1].IsApplication)
	assert.Empty(t, msgs[1].Site)
}

func TestScanTwiceIsEquivalent(t *testing.T) {
	s := inboxtest.New(inboxtest.Page("p1", "ExampleWiki", 3, 2))

	first, err := inbox.Scan(context.Background(), s)
	require.NoError(t, err)
	second, err := inbox.Scan(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// Mutating one scan must not leak into the other
	first[0].Selected = true
	assert.False(t, second[0].Selected)
}

func TestCandidatesSelectsAllWhenNothingSelected(t *testing.T) {
	msgs := []inbox.Message{
		{ID: "a", IsApplication: true, Site: "A"},
		{ID: "b"},
		{ID: "c", IsApplication: true, Site: "C"},
	}

	got := inbox.Candidates(msgs)

	assert.Equal(t, []string{"a", "c"}, inbox.IDs(got))
	for _, m := range got {
		assert.True(t, m.Selected)
	}
}

func TestCandidatesHonoursUserSelection(t *testing.T) {
	msgs := []inbox.Message{
		{ID: "a", IsApplication: true, Site: "A"},
		{ID: "b", Selected: true},
		{ID: "c", IsApplication: true, Site: "C", Selected: true},
	}

	got := inbox.Candidates(msgs)

	assert.Equal(t, []string{"c"}, inbox.IDs(got))
}

func TestCandidatesEmptyPage(t *testing.T) {
	assert.Empty(t, inbox.Candidates(nil))
}

func TestAwaitReplacementWaitsForRerender(t *testing.T) {
	s := inboxtest.New(inboxtest.Page("p1", "A", 1, 0))
	acted := false

	err := inbox.AwaitReplacement(context.Background(), s, func(ctx context.Context) error {
		acted = true
		s.Replace()
		return nil
	})

	require.NoError(t, err)
	assert.True(t, acted)
}

func TestAwaitReplacementBlocksUntilContentChanges(t *testing.T) {
	s := inboxtest.New(inboxtest.Page("p1", "A", 1, 0))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	// The act succeeds but the host never re-renders
	err := inbox.AwaitReplacement(ctx, s, func(ctx context.Context) error { return nil })

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAwaitReplacementActError(t *testing.T) {
	s := inboxtest.New(inboxtest.Page("p1", "A", 1, 0))
	boom := errors.New("boom")

	err := inbox.AwaitReplacement(context.Background(), s, func(ctx context.Context) error { return boom })

	assert.ErrorIs(t, err, boom)
}
