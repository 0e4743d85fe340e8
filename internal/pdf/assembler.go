// Package pdf renders a group's documents into per-type A4 bundles.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log/slog"

	_ "image/jpeg"
	_ "image/png"

	"github.com/go-pdf/fpdf"

	"github.com/scanvault/scanvault/constants"
	"github.com/scanvault/scanvault/internal/entity"
)

// A4 portrait in millimetres, with the page margin applied on all
// four sides. Images are placed at natural size (72 dpi) and scaled
// down, never up, when they exceed the printable area.
const (
	pageWidthMM  = 210.0
	pageHeightMM = 297.0
	marginMM     = 10.0

	printableWidthMM  = pageWidthMM - 2*marginMM
	printableHeightMM = pageHeightMM - 2*marginMM

	mmPerPixel = 25.4 / 72.0
)

// ImageFetcher resolves a document's image reference to raw bytes.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Assembler builds the PDF bundles for one group.
type Assembler struct {
	fetcher ImageFetcher
	logger  *slog.Logger
}

func NewAssembler(fetcher ImageFetcher, logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{fetcher: fetcher, logger: logger}
}

// Partition splits documents by type, preserving document order within
// each partition and first-appearance order across partitions.
func Partition(docs []*entity.Document) ([]string, map[string][]*entity.Document) {
	var order []string
	parts := map[string][]*entity.Document{}
	for _, d := range docs {
		if _, seen := parts[d.Type]; !seen {
			order = append(order, d.Type)
		}
		parts[d.Type] = append(parts[d.Type], d)
	}
	return order, parts
}

// Assemble produces one PDF per document type, keyed by type name. A
// document whose image cannot be fetched or decoded is skipped with a
// log line; a type whose every page was skipped is omitted from the
// result. Empty input yields an empty map.
func (a *Assembler) Assemble(ctx context.Context, docs []*entity.Document) (map[string][]byte, error) {
	out := map[string][]byte{}
	order, parts := Partition(docs)

	for _, docType := range order {
		data, pages, err := a.renderBundle(ctx, parts[docType])
		if err != nil {
			return nil, fmt.Errorf("render %s bundle: %w", docType, err)
		}
		if pages == 0 {
			a.logger.Warn("pdf.bundle.empty", "type", docType, "documents", len(parts[docType]))
			continue
		}
		out[docType] = data
		a.logger.Debug("pdf.bundle.ok", "type", docType, "pages", pages, "bytes", len(data))
	}
	return out, nil
}

// renderBundle draws one page per renderable document and returns the
// encoded PDF along with the number of pages it got.
func (a *Assembler) renderBundle(ctx context.Context, docs []*entity.Document) ([]byte, int, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginMM, marginMM, marginMM)
	pdf.SetAutoPageBreak(false, 0)

	pages := 0
	for _, d := range docs {
		data, err := a.fetcher.Fetch(ctx, d.ImageRef)
		if err != nil {
			a.logger.Warn("pdf.page.fetch_failed", "document_id", d.ID, "error", err)
			continue
		}
		format := constants.SniffImageFormat(data)
		if format == "" {
			a.logger.Warn("pdf.page.unsupported_format", "document_id", d.ID)
			continue
		}
		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			a.logger.Warn("pdf.page.decode_failed", "document_id", d.ID, "error", err)
			continue
		}

		w, h := fitPage(cfg.Width, cfg.Height)
		x := (pageWidthMM - w) / 2
		y := (pageHeightMM - h) / 2

		name := d.ID.String()
		pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: format}, bytes.NewReader(data))
		pdf.AddPage()
		pdf.ImageOptions(name, x, y, w, h, false, fpdf.ImageOptions{ImageType: format}, 0, "")
		pages++
	}
	if pages == 0 {
		return nil, 0, nil
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), pages, nil
}

// fitPage converts pixel dimensions to millimetres and scales down to
// the printable area when needed, preserving aspect ratio.
func fitPage(pxW, pxH int) (float64, float64) {
	w := float64(pxW) * mmPerPixel
	h := float64(pxH) * mmPerPixel
	if w <= printableWidthMM && h <= printableHeightMM {
		return w, h
	}
	scale := printableWidthMM / w
	if s := printableHeightMM / h; s < scale {
		scale = s
	}
	return w * scale, h * scale
}
