package collector

import (
	"context"
	"fmt"

	"wikidot-applications-deleter/internal/inbox"
	"wikidot-applications-deleter/internal/logger"
	"wikidot-applications-deleter/internal/pager"
)

// Mode decide hasta dónde se recorre el inbox
type Mode string

const (
	// ModeRecent stops at the first page without applications
	ModeRecent Mode = "recent"
	// ModeAll scans every page, even after an empty one
	ModeAll Mode = "all"
)

// ParseMode convierte el nombre de un modo
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeRecent, ModeAll:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown collection mode %q (want %q or %q)", s, ModeRecent, ModeAll)
}

// Session is the state of one collect run. It is dropped once the run ends.
type Session struct {
	Mode         Mode
	Pages        int
	Applications []inbox.Message
}

// Collect recorre el inbox y acumula las solicitudes encontradas.
// On success the inbox is left on the first page again.
func Collect(ctx context.Context, s inbox.Surface, mode Mode) (*Session, error) {
	p := pager.New(s)
	sess := &Session{Mode: mode}

	if _, err := p.First(ctx); err != nil {
		return nil, err
	}

	for {
		msgs, err := inbox.Scan(ctx, s)
		if err != nil {
			return nil, err
		}
		sess.Pages++

		found := inbox.Candidates(msgs)
		logger.Debug("Found %d applications on page %d", len(found), sess.Pages)
		sess.Applications = append(sess.Applications, found...)

		// En modo recent una página vacía indica que ya no hay solicitudes recientes
		if len(found) == 0 && mode != ModeAll {
			break
		}

		more, err := p.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}

	// Reset UI back to the first page
	if _, err := p.First(ctx); err != nil {
		return nil, err
	}
	return sess, nil
}
