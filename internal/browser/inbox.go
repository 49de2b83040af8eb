package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wikidot-applications-deleter/internal/classifier"
	"wikidot-applications-deleter/internal/i18n"
	"wikidot-applications-deleter/internal/inbox"
	"wikidot-applications-deleter/internal/logger"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

const inboxLoadTimeout = 30 * time.Second

// Selectores y llamadas del módulo de mensajes de Wikidot
const (
	jsRows = `() => Array.from(document.querySelectorAll("tr.message")).map(el => {
		const box = el.querySelector("input[type=checkbox]")
		const from = el.querySelector("td .from .printuser")
		const text = sel => { const n = el.querySelector(sel); return n ? n.innerText : "" }
		return {
			id: box ? box.value : "",
			selected: box ? box.checked : false,
			system: from ? !from.classList.contains("avatarhover") : false,
			sender: from ? from.innerText : "",
			subject: text(".subject"),
			preview: text(".preview"),
		}
	})`

	jsPager = `() => {
		const pager = document.querySelector("#message-area .pager")
		if (!pager) return { present: false }
		const current = pager.querySelector(".current")
		const first = pager.querySelector(".target [href='#/inbox/p1']")
		const next = pager.querySelector(".target:last-child a")
		return {
			present: true,
			current: current ? current.textContent.trim() : "",
			first: first !== null,
			next: next ? next.textContent.trim() : "",
		}
	}`

	jsClick = `(target) => {
		const pager = document.querySelector("#message-area .pager")
		const sel = target === "first" ? ".target [href='#/inbox/p1']" : ".target:last-child a"
		const el = pager && pager.querySelector(sel)
		if (!el) throw new Error("pager target not found: " + target)
		el.click()
	}`

	jsArm = `() => {
		const area = document.getElementById("message-area")
		if (!area) throw new Error("message area not found")
		window.__applicationsDeleterReplaced = new Promise(resolve => {
			const observer = new MutationObserver(() => {
				observer.disconnect()
				resolve(true)
			})
			observer.observe(area, { childList: true })
		})
	}`

	jsWait = `() => window.__applicationsDeleterReplaced`

	jsRemove = `(ids) => new Promise((resolve, reject) => {
		try {
			OZONE.ajax.requestModule(
				null,
				{ action: "DashboardMessageAction", event: "removeMessages", messages: ids },
				resolve
			)
		} catch (error) {
			reject(error)
		}
	})`

	jsRefresh = `() => WIKIDOT.modules.DashboardMessagesModule.app.refresh()`

	jsHash = `() => location.hash`

	jsShowList = `() => { location.hash = "#/inbox" }`
)

// InboxPage es el inbox de Wikidot abierto en una pestaña. Implements inbox.Surface.
type InboxPage struct {
	page *rod.Page
}

var _ inbox.Surface = (*InboxPage)(nil)

// OpenInbox abre el inbox y se asegura de estar en la vista de lista
func (m *Manager) OpenInbox(ctx context.Context) (*InboxPage, error) {
	logger.Info("%s", i18n.T("opening_inbox"))
	page, err := m.Browser.Context(ctx).Page(proto.TargetCreateTarget{URL: m.MessagesURL})
	if err != nil {
		return nil, fmt.Errorf("opening inbox: %w", err)
	}
	// Every call passes its own ctx; the tab itself is not bound to this one
	ip := &InboxPage{page: page.Context(context.Background())}

	if err := ip.showList(ctx); err != nil {
		if cerr := ip.Close(); cerr != nil {
			logger.Debug("closing inbox tab: %v", cerr)
		}
		return nil, err
	}
	return ip, nil
}

// showList waits for the first render and leaves the page on the inbox list
func (p *InboxPage) showList(ctx context.Context) error {
	if err := p.waitRendered(ctx); err != nil {
		return err
	}

	hash, err := p.eval(ctx, jsHash)
	if err != nil {
		return err
	}
	if inbox.IsListView(hash.Value.Str()) {
		return nil
	}

	logger.Debug("Not on the inbox list (%q), switching view", hash.Value.Str())
	// The old view already fills #message-area, so wait for it to be replaced
	return inbox.AwaitReplacement(ctx, p, func(ctx context.Context) error {
		_, err := p.eval(ctx, jsShowList)
		return err
	})
}

// Close cierra la pestaña
func (p *InboxPage) Close() error {
	return p.page.Close()
}

func (p *InboxPage) waitRendered(ctx context.Context) error {
	err := p.page.Context(ctx).Timeout(inboxLoadTimeout).WaitElementsMoreThan("#message-area > *", 0)
	if err != nil {
		return fmt.Errorf("waiting for inbox to render: %w", err)
	}
	return nil
}

func (p *InboxPage) eval(ctx context.Context, js string, args ...interface{}) (*proto.RuntimeRemoteObject, error) {
	res, err := p.page.Context(ctx).Eval(js, args...)
	if err != nil {
		return nil, fmt.Errorf("evaluating in inbox page: %w", err)
	}
	return res, nil
}

type rawRow struct {
	ID       string `json:"id"`
	Selected bool   `json:"selected"`
	System   bool   `json:"system"`
	Sender   string `json:"sender"`
	Subject  string `json:"subject"`
	Preview  string `json:"preview"`
}

func (r rawRow) toRow() inbox.Row {
	return inbox.Row{
		ID:       r.ID,
		Selected: r.Selected,
		Fields: classifier.Fields{
			SenderIsSystem: r.System,
			SenderName:     r.Sender,
			Subject:        r.Subject,
			Preview:        r.Preview,
		},
	}
}

func decodeRows(data []byte) ([]inbox.Row, error) {
	var raw []rawRow
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding inbox rows: %w", err)
	}
	rows := make([]inbox.Row, 0, len(raw))
	for _, r := range raw {
		// Filas sin checkbox no se pueden borrar
		if r.ID == "" {
			continue
		}
		rows = append(rows, r.toRow())
	}
	return rows, nil
}

type rawPager struct {
	Present bool   `json:"present"`
	Current string `json:"current"`
	First   bool   `json:"first"`
	Next    string `json:"next"`
}

func decodePager(data []byte) (inbox.PagerState, error) {
	var raw rawPager
	if err := json.Unmarshal(data, &raw); err != nil {
		return inbox.PagerState{}, fmt.Errorf("decoding pager: %w", err)
	}
	return inbox.PagerState{
		Present:     raw.Present,
		Current:     raw.Current,
		FirstTarget: raw.First,
		NextLabel:   raw.Next,
	}, nil
}

func (p *InboxPage) Rows(ctx context.Context) ([]inbox.Row, error) {
	res, err := p.eval(ctx, jsRows)
	if err != nil {
		return nil, err
	}
	return decodeRows([]byte(res.Value.JSON("", "")))
}

func (p *InboxPage) Pager(ctx context.Context) (inbox.PagerState, error) {
	res, err := p.eval(ctx, jsPager)
	if err != nil {
		return inbox.PagerState{}, err
	}
	return decodePager([]byte(res.Value.JSON("", "")))
}

func (p *InboxPage) Arm(ctx context.Context) (inbox.Waiter, error) {
	if _, err := p.eval(ctx, jsArm); err != nil {
		return nil, err
	}
	return replacement{page: p}, nil
}

func (p *InboxPage) Click(ctx context.Context, target inbox.Target) error {
	_, err := p.eval(ctx, jsClick, target.String())
	return err
}

func (p *InboxPage) RemoveMessages(ctx context.Context, ids []string) error {
	_, err := p.eval(ctx, jsRemove, ids)
	return err
}

func (p *InboxPage) Refresh(ctx context.Context) error {
	_, err := p.eval(ctx, jsRefresh)
	return err
}

// replacement espera a la promesa instalada por Arm
type replacement struct {
	page *InboxPage
}

func (r replacement) Wait(ctx context.Context) error {
	_, err := r.page.eval(ctx, jsWait)
	return err
}
