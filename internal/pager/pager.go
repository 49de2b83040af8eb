package pager

import (
	"context"
	"fmt"
	"strings"

	"wikidot-applications-deleter/internal/inbox"
	"wikidot-applications-deleter/internal/logger"
)

// NextLabel es el texto del enlace "siguiente" en el paginador de Wikidot
const NextLabel = "next »"

// Pager drives the inbox through its pages. It is the only writer of the page position.
type Pager struct {
	surface inbox.Surface
}

// New crea un paginador sobre el inbox dado
func New(s inbox.Surface) *Pager {
	return &Pager{surface: s}
}

// First goes back to page 1. It returns false without navigating when there is no
// pager or the inbox is already on the first page.
func (p *Pager) First(ctx context.Context) (bool, error) {
	logger.Debug("Going to first page")
	st, err := p.surface.Pager(ctx)
	if err != nil {
		return false, fmt.Errorf("reading pager: %w", err)
	}
	if !st.Present || st.Current == "" {
		return false, nil
	}
	if strings.TrimSpace(st.Current) == "1" {
		return false, nil
	}
	// El botón de la primera página debería estar siempre visible
	if !st.FirstTarget {
		return false, nil
	}

	if err := p.navigate(ctx, inbox.TargetFirst); err != nil {
		return false, err
	}
	return true, nil
}

// Next avanza una página. Devuelve false si ya estamos en la última.
func (p *Pager) Next(ctx context.Context) (bool, error) {
	logger.Debug("Going to next page")
	st, err := p.surface.Pager(ctx)
	if err != nil {
		return false, fmt.Errorf("reading pager: %w", err)
	}
	if !st.Present {
		return false, nil
	}
	if strings.TrimSpace(st.NextLabel) != NextLabel {
		return false, nil
	}

	if err := p.navigate(ctx, inbox.TargetNext); err != nil {
		return false, err
	}
	return true, nil
}

// navigate clicks the target and returns once the message area has been replaced.
// That is a render signal, not a guarantee that the host request finished.
func (p *Pager) navigate(ctx context.Context, target inbox.Target) error {
	err := inbox.AwaitReplacement(ctx, p.surface, func(ctx context.Context) error {
		if err := p.surface.Click(ctx, target); err != nil {
			return fmt.Errorf("clicking %s page: %w", target, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("going to %s page: %w", target, err)
	}
	return nil
}
