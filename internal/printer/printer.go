// Package printer is the sink a finished budget document is handed to.
package printer

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/noah-isme/orcamento-api/internal/document"
)

// DefaultDelay is how long the sink waits between displaying a document
// and firing the print trigger, giving the surface time to settle.
const DefaultDelay = 500 * time.Millisecond

// Surface is the platform capability that shows a rendered document and
// invokes printing.
type Surface interface {
	Display(name string, content []byte) error
	Print(name string) error
}

// Dispatcher renders an assembled document to HTML, hands it to the
// surface and schedules the print trigger after a fixed delay. The
// scheduled trigger is fire-and-forget: it cannot be cancelled and
// reports nothing back.
type Dispatcher struct {
	Surface Surface
	Delay   time.Duration
	Logger  zerolog.Logger
}

// Present displays the document and schedules the print trigger.
func (d Dispatcher) Present(doc document.Document) error {
	if d.Surface == nil {
		return fmt.Errorf("print surface not configured")
	}
	html, err := document.RenderHTML(doc)
	if err != nil {
		return err
	}
	name := documentName(doc)
	if err := d.Surface.Display(name, html); err != nil {
		return fmt.Errorf("display document: %w", err)
	}
	time.AfterFunc(d.delay(), func() {
		if err := d.Surface.Print(name); err != nil {
			d.Logger.Error().Err(err).Str("document", name).Msg("print trigger failed")
		}
	})
	return nil
}

func (d Dispatcher) delay() time.Duration {
	if d.Delay <= 0 {
		return DefaultDelay
	}
	return d.Delay
}

func documentName(doc document.Document) string {
	number := doc.Meta.Number
	if number == "" {
		number = "orcamento"
	}
	return "orcamento-" + number + ".html"
}

// FileSurface displays documents by writing them into a directory. The
// print trigger is a structured log event, the hook point a desktop
// shell or browser wrapper attaches its real print call to.
type FileSurface struct {
	Dir    string
	Logger zerolog.Logger
}

// Display writes the rendered document under Dir.
func (f FileSurface) Display(name string, content []byte) error {
	if f.Dir == "" {
		f.Dir = os.TempDir()
	}
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(f.Dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return err
	}
	f.Logger.Info().Str("path", path).Msg("document displayed")
	return nil
}

// Print fires the platform print hook for a displayed document.
func (f FileSurface) Print(name string) error {
	f.Logger.Info().Str("document", name).Msg("print trigger")
	return nil
}
