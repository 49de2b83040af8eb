package inbox

import (
	"context"
	"fmt"
	"regexp"

	"wikidot-applications-deleter/internal/classifier"
)

// Row es la instantánea cruda de una fila tr.message
type Row struct {
	ID       string // Value of the row checkbox
	Selected bool   // Checked state of the row checkbox
	Fields   classifier.Fields
}

// Message representa una entrada del inbox ya clasificada.
// Each scan builds new values; nothing points back at the DOM.
type Message struct {
	ID            string
	Subject       string
	Preview       string
	Selected      bool
	IsApplication bool
	Site          string
}

// PagerState describe el control de paginación tal como se ve en pantalla
type PagerState struct {
	Present     bool   // The .pager element exists
	Current     string // Text of the .current indicator, empty if missing
	FirstTarget bool   // A link to #/inbox/p1 is available
	NextLabel   string // Text of the last .target link
}

// Target es un enlace del paginador
type Target int

const (
	TargetFirst Target = iota
	TargetNext
)

func (t Target) String() string {
	switch t {
	case TargetFirst:
		return "first"
	case TargetNext:
		return "next"
	default:
		return fmt.Sprintf("target(%d)", int(t))
	}
}

// Waiter is a one-shot content-replacement observer
type Waiter interface {
	Wait(ctx context.Context) error
}

// Surface is the externally rendered inbox view. All reads and writes of the host page
// go through it; callers are expected to be its only driver for the whole run.
type Surface interface {
	Rows(ctx context.Context) ([]Row, error)
	Pager(ctx context.Context) (PagerState, error)
	// Arm must be called before Click so the replacement is never missed
	Arm(ctx context.Context) (Waiter, error)
	Click(ctx context.Context, target Target) error
	RemoveMessages(ctx context.Context, ids []string) error
	Refresh(ctx context.Context) error
}

// Armer installs a one-shot observer on the message area
type Armer interface {
	Arm(ctx context.Context) (Waiter, error)
}

// AwaitReplacement arms the observer, runs act and returns once the message area has
// been replaced. act is anything that makes the host re-render: a pager click, a hash change.
func AwaitReplacement(ctx context.Context, a Armer, act func(ctx context.Context) error) error {
	w, err := a.Arm(ctx)
	if err != nil {
		return fmt.Errorf("arming content observer: %w", err)
	}
	if err := act(ctx); err != nil {
		return err
	}
	if err := w.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for message area: %w", err)
	}
	return nil
}

var listViewHash = regexp.MustCompile(`^(#(/inbox(/(p[0-9]+/?)?)?)?)?$`)

// IsListView reports whether the location hash points at the inbox list
// (and not at a single message, the composer or the sent folder).
func IsListView(hash string) bool {
	return listViewHash.MatchString(hash)
}

// NewMessage clasifica una fila
func NewMessage(r Row) Message {
	res := classifier.Classify(r.Fields)
	return Message{
		ID:            r.ID,
		Subject:       r.Fields.Subject,
		Preview:       r.Fields.Preview,
		Selected:      r.Selected,
		IsApplication: res.IsApplication,
		Site:          res.Site,
	}
}

// Scan lee la página actual y devuelve sus mensajes clasificados
func Scan(ctx context.Context, s Surface) ([]Message, error) {
	rows, err := s.Rows(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading inbox rows: %w", err)
	}
	msgs := make([]Message, 0, len(rows))
	for _, r := range rows {
		msgs = append(msgs, NewMessage(r))
	}
	return msgs, nil
}

// CountSelected cuenta los mensajes marcados por el usuario
func CountSelected(msgs []Message) int {
	n := 0
	for _, m := range msgs {
		if m.Selected {
			n++
		}
	}
	return n
}

// Candidates returns the applications the user wants deleted on this page.
// If nothing is selected the whole page counts as selected.
func Candidates(msgs []Message) []Message {
	selectAll := CountSelected(msgs) == 0

	var out []Message
	for _, m := range msgs {
		if !m.IsApplication {
			continue
		}
		if selectAll || m.Selected {
			m.Selected = true
			out = append(out, m)
		}
	}
	return out
}

// IDs extrae los identificadores en orden
func IDs(msgs []Message) []string {
	ids := make([]string, len(msgs))
	for i, m := range msgs {
		ids[i] = m.ID
	}
	return ids
}
