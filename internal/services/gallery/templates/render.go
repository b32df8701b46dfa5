package templates

import (
	"context"

	"github.com/a-h/templ"
	templruntime "github.com/a-h/templ/runtime"
)

// htmlWriter appends markup to the pooled templ buffer and keeps the first
// write error.
type htmlWriter struct {
	buf *templruntime.Buffer
	err error
}

func (w *htmlWriter) raw(parts ...string) {
	for _, part := range parts {
		if w.err != nil {
			return
		}
		_, w.err = w.buf.WriteString(part)
	}
}

func (w *htmlWriter) text(s string) {
	w.raw(templ.EscapeString(s))
}

func (w *htmlWriter) attr(name, value string) {
	w.raw(` `, name, `="`, templ.EscapeString(value), `"`)
}

func (w *htmlWriter) render(ctx context.Context, c templ.Component) {
	if w.err != nil {
		return
	}
	w.err = c.Render(ctx, w.buf)
}

// component builds a templ component whose body, and any component it nests,
// writes into a single buffer that is flushed to the caller's writer once.
func component(body func(ctx context.Context, w *htmlWriter)) templ.Component {
	return templruntime.GeneratedTemplate(func(in templruntime.GeneratedComponentInput) (err error) {
		ctx := in.Context
		if err := ctx.Err(); err != nil {
			return err
		}
		buf, existing := templruntime.GetBuffer(in.Writer)
		if !existing {
			defer func() {
				if releaseErr := templruntime.ReleaseBuffer(buf); err == nil {
					err = releaseErr
				}
			}()
		}
		w := &htmlWriter{buf: buf}
		body(ctx, w)
		return w.err
	})
}
