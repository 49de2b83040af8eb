// Package inboxtest provides an in-memory inbox.Surface for tests.
package inboxtest

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"wikidot-applications-deleter/internal/classifier"
	"wikidot-applications-deleter/internal/inbox"
)

const NextLabel = "next »"

// Surface simula el inbox paginado de Wikidot
type Surface struct {
	mu      sync.Mutex
	pages   [][]inbox.Row
	current int
	armed   chan struct{}

	// FailRemoveAt makes the n-th RemoveMessages call (0-based) fail; -1 disables it
	FailRemoveAt int

	Clicks    []inbox.Target
	Removed   [][]string
	Refreshes int
}

// New crea un inbox con las páginas dadas, empezando en la primera
func New(pages ...[]inbox.Row) *Surface {
	return &Surface{pages: pages, FailRemoveAt: -1}
}

// GoTo coloca el inbox en una página sin pasar por el paginador
func (s *Surface) GoTo(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = page
}

// Current returns the 0-based page index
func (s *Surface) Current() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Surface) Rows(ctx context.Context) ([]inbox.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pages) == 0 {
		return nil, nil
	}
	rows := make([]inbox.Row, len(s.pages[s.current]))
	copy(rows, s.pages[s.current])
	return rows, nil
}

func (s *Surface) Pager(ctx context.Context) (inbox.PagerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pages) < 2 {
		return inbox.PagerState{}, nil
	}
	st := inbox.PagerState{
		Present:     true,
		Current:     strconv.Itoa(s.current + 1),
		FirstTarget: true,
		NextLabel:   strconv.Itoa(len(s.pages)),
	}
	if s.current < len(s.pages)-1 {
		st.NextLabel = NextLabel
	}
	return st, nil
}

func (s *Surface) Arm(ctx context.Context) (inbox.Waiter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan struct{})
	s.armed = ch
	return waiter(ch), nil
}

func (s *Surface) Click(ctx context.Context, target inbox.Target) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Clicks = append(s.Clicks, target)

	switch target {
	case inbox.TargetFirst:
		s.current = 0
	case inbox.TargetNext:
		if s.current >= len(s.pages)-1 {
			return errors.New("no next page")
		}
		s.current++
	default:
		return fmt.Errorf("unknown target %v", target)
	}

	s.replaceLocked()
	return nil
}

// Replace simula un re-render del área de mensajes sin pasar por el paginador
func (s *Surface) Replace() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceLocked()
}

func (s *Surface) replaceLocked() {
	if s.armed != nil {
		close(s.armed)
		s.armed = nil
	}
}

func (s *Surface) RemoveMessages(ctx context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailRemoveAt == len(s.Removed) {
		s.Removed = append(s.Removed, nil)
		return errors.New("removeMessages rejected")
	}
	batch := make([]string, len(ids))
	copy(batch, ids)
	s.Removed = append(s.Removed, batch)
	return nil
}

func (s *Surface) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Refreshes++
	return nil
}

type waiter chan struct{}

func (w waiter) Wait(ctx context.Context) error {
	select {
	case <-w:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Application construye una fila de solicitud en inglés para el sitio dado
func Application(id, site string) inbox.Row {
	return inbox.Row{
		ID: id,
		Fields: classifier.Fields{
			SenderIsSystem: true,
			SenderName:     classifier.SystemSender,
			Subject:        "You received a membership application",
			Preview:        "someone applied for membership on " + site + ", one of your sites",
		},
	}
}

// Personal construye una fila de un usuario normal
func Personal(id string) inbox.Row {
	return inbox.Row{
		ID: id,
		Fields: classifier.Fields{
			SenderName: "someone",
			Subject:    "hello",
			Preview:    "just saying hi",
		},
	}
}

// Page builds a page of n applications for site followed by extra personal rows
func Page(prefix, site string, n, personal int) []inbox.Row {
	var rows []inbox.Row
	for i := 0; i < n; i++ {
		rows = append(rows, Application(fmt.Sprintf("%s-a%d", prefix, i), site))
	}
	for i := 0; i < personal; i++ {
		rows = append(rows, Personal(fmt.Sprintf("%s-p%d", prefix, i)))
	}
	return rows
}
