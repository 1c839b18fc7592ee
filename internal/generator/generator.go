package generator

import (
	"fmt"
	"io"
	"path/filepath"

	"mkicons/internal/icons"
	"mkicons/internal/paths"
)

// Marks are the status prefixes used in console output.
type Marks struct {
	OK   string
	Done string
	Warn string
}

var (
	UnicodeMarks = Marks{OK: "✓", Done: "✅", Warn: "⚠️ "}
	ASCIIMarks   = Marks{OK: "*", Done: "OK:", Warn: "NOTE:"}
)

// Generator writes the placeholder icon set under Root/public/icons.
// Each run overwrites existing files unconditionally; the first failure
// aborts the run and leaves any already-written files in place.
type Generator struct {
	Root    string
	Out     io.Writer
	Marks   Marks
	Records []icons.Record
}

// New returns a Generator over the embedded icon registry.
func New(root string, out io.Writer) *Generator {
	return &Generator{
		Root:    root,
		Out:     out,
		Marks:   UnicodeMarks,
		Records: icons.Records,
	}
}

// EnsureOutputDirectory creates Root/public/icons and any missing parents.
func (g *Generator) EnsureOutputDirectory() error {
	dir := paths.IconsDir(g.Root)
	if err := paths.EnsureDir(dir); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}

// WriteIcon decodes one embedded record and writes icon-<size>.png.
// The size only names the file; the decoded bytes are not validated.
func (g *Generator) WriteIcon(size int, encoded string) error {
	raw, err := icons.Decode(encoded)
	if err != nil {
		return fmt.Errorf("%s: %w", icons.FileName(size), err)
	}
	return g.WriteImage(size, raw)
}

// WriteImage writes already-decoded image bytes as icon-<size>.png.
func (g *Generator) WriteImage(size int, data []byte) error {
	name := icons.FileName(size)
	path := filepath.Join(paths.IconsDir(g.Root), name)
	if err := paths.AtomicWrite(path, data); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	fmt.Fprintf(g.Out, "%s Created %s\n", g.Marks.OK, name)
	return nil
}

// Run writes all embedded placeholder icons in ascending size order.
func (g *Generator) Run() error {
	fmt.Fprintln(g.Out, "Creating placeholder icon files...")
	if err := g.EnsureOutputDirectory(); err != nil {
		return err
	}
	for _, rec := range g.Records {
		if err := g.WriteIcon(rec.Size, rec.Data); err != nil {
			return err
		}
	}
	g.finish()
	return nil
}

// RunRendered writes one icon per supported size using render to produce
// the image bytes, instead of the embedded registry.
func (g *Generator) RunRendered(render func(size int) ([]byte, error)) error {
	fmt.Fprintln(g.Out, "Drawing placeholder icon files...")
	if err := g.EnsureOutputDirectory(); err != nil {
		return err
	}
	for _, size := range icons.Sizes {
		data, err := render(size)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", icons.FileName(size), err)
		}
		if err := g.WriteImage(size, data); err != nil {
			return err
		}
	}
	g.finish()
	return nil
}

func (g *Generator) finish() {
	fmt.Fprintf(g.Out, "\n%s All placeholder icons created!\n", g.Marks.Done)
	fmt.Fprintf(g.Out, "%s Replace these with actual designs later.\n", g.Marks.Warn)
}
