package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wikidot-applications-deleter/internal/browser"
	"wikidot-applications-deleter/internal/classifier"
	"wikidot-applications-deleter/internal/collector"
	"wikidot-applications-deleter/internal/config"
	"wikidot-applications-deleter/internal/deleter"
	"wikidot-applications-deleter/internal/i18n"
	"wikidot-applications-deleter/internal/inbox"
	"wikidot-applications-deleter/internal/logger"
	"wikidot-applications-deleter/internal/notifier"
	"wikidot-applications-deleter/internal/report"
)

var errSessionInvalid = errors.New("wikidot session is not valid")

// runOptions configura una ejecución de recolección y borrado
type runOptions struct {
	Mode      collector.Mode
	DryRun    bool
	BatchSize int
	Reporter  *report.Reporter
	Notifier  *notifier.Notifier
}

// runDelete is the whole operation behind one trigger: collect, confirm, delete in
// batches and ask the host to re-render. Any failure ends the run here.
func runDelete(ctx context.Context, s inbox.Surface, opts runOptions) error {
	r := opts.Reporter

	if unsupported := classifier.UnsupportedLocales(); len(unsupported) > 0 {
		names := make([]string, len(unsupported))
		for i, l := range unsupported {
			names[i] = string(l)
		}
		logger.Warn(i18n.T("unsupported_locales"), strings.Join(names, ", "))
	}

	logger.Info("%s", i18n.T("scanning"))
	sess, err := collector.Collect(ctx, s, opts.Mode)
	if err != nil {
		return fmt.Errorf("scanning inbox: %w", err)
	}
	logger.Debug(i18n.T("scan_done"), sess.Pages)

	summary := report.Summarize(sess.Applications)
	if summary.Total == 0 {
		logger.Info("%s", i18n.T("nothing_found"))
		return nil
	}

	r.Render(summary)
	if opts.DryRun {
		logger.Info("%s", i18n.T("dry_run"))
		return nil
	}

	ok, err := r.Confirm(summary)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	r.Start(summary.Total)
	delErr := deleter.DeleteInBatches(ctx, s, inbox.IDs(sess.Applications), opts.BatchSize, r.BeforeBatch)

	// Refresh even when the run was interrupted between batches
	if err := s.Refresh(context.WithoutCancel(ctx)); err != nil {
		logger.Warn(i18n.T("refresh_failed"), err)
	}

	if delErr != nil {
		r.Failed()
		notify(opts.Notifier, i18n.T("alert_subject_fail"), delErr.Error())
		return delErr
	}

	r.Done(summary.Total)
	notify(opts.Notifier, i18n.T("alert_subject_ok"), fmt.Sprintf(i18n.T("delete_done"), summary.Total))
	return nil
}

func notify(n *notifier.Notifier, subject, body string) {
	if n == nil {
		return
	}
	if err := n.SendAlert(subject, body); err != nil {
		logger.Warn(i18n.T("notifier_error"), err)
	}
}

// withInbox launches the browser, checks the saved session and hands the open inbox to fn
func withInbox(ctx context.Context, fn func(ctx context.Context, s inbox.Surface) error) error {
	bm, err := browser.New(config.AppConfig.UserDataDir, config.AppConfig.MessagesURL, config.AppConfig.Headless)
	if err != nil {
		return err
	}
	defer bm.Close()

	if !bm.VerifySession() {
		logger.Error("%s", i18n.T("session_invalid"))
		return errSessionInvalid
	}

	page, err := bm.OpenInbox(ctx)
	if err != nil {
		return err
	}
	defer page.Close()

	return fn(ctx, page)
}
