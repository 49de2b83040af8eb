package report

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"wikidot-applications-deleter/internal/deleter"
	"wikidot-applications-deleter/internal/i18n"
	"wikidot-applications-deleter/internal/inbox"
)

// SupportContact is where users should report deletion problems
const SupportContact = "Croquembouche (https://www.wikidot.com/account/messages#/new/2893766)"

const barWidth = 30

// SiteCount es el número de solicitudes de un sitio
type SiteCount struct {
	Site  string
	Count int
}

// Summary describe el borrado pendiente
type Summary struct {
	Total int
	Sites []SiteCount // First-seen order
}

// Summarize agrupa las solicitudes por sitio
func Summarize(msgs []inbox.Message) Summary {
	s := Summary{Total: len(msgs)}
	pos := make(map[string]int)
	for _, m := range msgs {
		i, ok := pos[m.Site]
		if !ok {
			i = len(s.Sites)
			pos[m.Site] = i
			s.Sites = append(s.Sites, SiteCount{Site: m.Site})
		}
		s.Sites[i].Count++
	}
	return s
}

// Reporter is the terminal side of a delete run: the summary, the confirmation and
// the per-batch progress.
type Reporter struct {
	Out         io.Writer
	In          io.Reader
	Interactive bool // Redraw the progress bar in place
	AssumeYes   bool
	Pacer       deleter.Pacer

	in *bufio.Reader
}

// Render imprime el resumen del borrado
func (r *Reporter) Render(s Summary) {
	fmt.Fprintf(r.Out, i18n.T("confirm_title")+"\n", s.Total)
	fmt.Fprintf(r.Out, i18n.T("confirm_support")+"\n", SupportContact)
	for _, site := range s.Sites {
		fmt.Fprintf(r.Out, "  - %s: %d\n", site.Site, site.Count)
	}
}

// Confirm asks the user to go ahead. Anything but an explicit yes cancels.
func (r *Reporter) Confirm(s Summary) (bool, error) {
	if r.AssumeYes {
		return true, nil
	}
	if r.in == nil {
		r.in = bufio.NewReader(r.In)
	}

	fmt.Fprintf(r.Out, "%s: ", i18n.T("confirm_prompt"))
	line, err := r.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "s", "si", "sí":
		return true, nil
	}
	fmt.Fprintln(r.Out, i18n.T("cancelled"))
	return false, nil
}

// Start anuncia el comienzo del borrado
func (r *Reporter) Start(total int) {
	fmt.Fprintf(r.Out, i18n.T("deleting")+"\n", total)
}

// BeforeBatch is the deleter hook: it draws progress and paces the requests.
// A single batch goes out straight away.
func (r *Reporter) BeforeBatch(ctx context.Context, index, count, size int) error {
	if count <= 1 {
		return nil
	}
	text := fmt.Sprintf(i18n.T("batch_progress"), index+1, count, size)
	if r.Interactive {
		fmt.Fprintf(r.Out, "\r\033[K%s %s", bar(index+1, count), text)
		if index+1 == count {
			fmt.Fprintln(r.Out)
		}
	} else {
		fmt.Fprintln(r.Out, text)
	}
	return r.Pacer.Wait(ctx, count)
}

// Done imprime el aviso de éxito
func (r *Reporter) Done(total int) {
	fmt.Fprintf(r.Out, i18n.T("delete_done")+"\n", total)
}

// Failed imprime el aviso de error con el contacto de soporte
func (r *Reporter) Failed() {
	fmt.Fprintln(r.Out, "❌ "+i18n.T("delete_failed"))
	fmt.Fprintf(r.Out, i18n.T("delete_failed_support")+"\n", SupportContact)
}

func bar(done, total int) string {
	filled := 0
	if total > 0 {
		filled = done * barWidth / total
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled) + "]"
}
