// Package scan orchestrates a capture batch: stub documents appear
// synchronously, then one task per page runs OCR, classification, and
// identifier extraction, folding results back into the session state.
package scan

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/scanvault/scanvault/constants"
	"github.com/scanvault/scanvault/internal/blob"
	"github.com/scanvault/scanvault/internal/classify"
	"github.com/scanvault/scanvault/internal/entity"
	"github.com/scanvault/scanvault/internal/ocr"
)

// Deps are the collaborators a session needs.
type Deps struct {
	OCR       ocr.TextExtractor
	Blobs     blob.Store
	Table     *classify.RuleTable
	Extractor classify.Extractor
	Logger    *slog.Logger
}

// SessionConfig tunes a scan session.
type SessionConfig struct {
	// OCRTimeout bounds each OCR call. It is a safety margin only; a
	// task that has started always runs to completion or failure.
	OCRTimeout time.Duration
	// Enhance preprocesses captured pages before upload.
	Enhance          bool
	ArtifactCacheDir string
}

// Session is the mutable state of one scan batch. It replaces the
// original's global scan singletons: callers construct one per batch
// (or per resumed group) and pass it around explicitly.
//
// All mutation goes through the session mutex. Each settlement task
// writes only its own document's type; the group's customer id is
// shared, and by contract the last task to settle with a found
// identifier wins, in completion order. That race is intentional and
// documented, not a defect.
type Session struct {
	cfg  SessionConfig
	deps Deps

	mu    sync.Mutex
	group entity.Group
	docs  []*entity.Document
	errs  []error

	wg sync.WaitGroup
}

// NewSession starts a batch. When existing is nil a fresh group is
// synthesized up front (so later edits can reference its id before the
// first persist); otherwise the session takes over the given group and
// its already-known documents.
func NewSession(ownerID uuid.UUID, existing *entity.Group, existingDocs []entity.Document, cfg SessionConfig, deps Deps) *Session {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Extractor == nil {
		deps.Extractor = classify.NewDigitRunExtractor(0)
	}
	if cfg.OCRTimeout <= 0 {
		cfg.OCRTimeout = 45 * time.Second
	}

	s := &Session{cfg: cfg, deps: deps}
	if existing != nil {
		s.group = *existing
	} else {
		now := time.Now().UTC()
		s.group = entity.Group{
			ID:        uuid.New(),
			OwnerID:   ownerID,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}
	for _, d := range existingDocs {
		cp := d
		s.docs = append(s.docs, &cp)
	}
	return s
}

// Group returns a snapshot of the session's group.
func (s *Session) Group() entity.Group {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.group
}

// Documents returns a snapshot of the in-memory document list.
func (s *Session) Documents() []entity.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Document, len(s.docs))
	for i, d := range s.docs {
		out[i] = *d
	}
	return out
}

// SetCustomerID applies a manual edit to the group's identifier.
func (s *Session) SetCustomerID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.group.CustomerID = id
	s.group.UpdatedAt = time.Now().UTC()
}

// Errors returns the per-task errors collected so far.
func (s *Session) Errors() []error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]error, len(s.errs))
	copy(out, s.errs)
	return out
}

// AddPages uploads each captured page, appends a stub document
// immediately, and spawns one settlement task per page. The returned
// stubs let the caller render placeholders without waiting on OCR.
// Pages whose upload fails are skipped and reported via Errors.
func (s *Session) AddPages(ctx context.Context, paths []string) []entity.Document {
	stubs := make([]entity.Document, 0, len(paths))
	for _, path := range paths {
		src := path
		if s.cfg.Enhance {
			enhanced, err := ocr.EnhanceForOCR(path, s.cfg.ArtifactCacheDir)
			if err != nil {
				s.deps.Logger.Warn("scan.enhance.failed", "path", path, "error", err)
			} else {
				src = enhanced
			}
		}

		asset, err := s.deps.Blobs.Upload(ctx, src)
		if err != nil {
			s.deps.Logger.Error("scan.upload.failed", "path", path, "error", err)
			s.recordErr(err)
			continue
		}

		now := time.Now().UTC()
		doc := &entity.Document{
			ID:        uuid.New(),
			GroupID:   s.group.ID,
			ImageRef:  asset.URL,
			AssetID:   asset.ID,
			Type:      constants.TypeUnclassified,
			CreatedAt: now,
			UpdatedAt: now,
		}
		s.mu.Lock()
		s.docs = append(s.docs, doc)
		s.mu.Unlock()
		stubs = append(stubs, *doc)

		s.wg.Add(1)
		// Settlement tasks are never cancelled once started.
		go s.settle(context.WithoutCancel(ctx), doc.ID, doc.ImageRef)
	}
	return stubs
}

// settle runs OCR, classification, and identifier extraction for one
// page, then applies the result. OCR failure or empty text downgrades
// the page to Other with no identifier extraction and no retry.
func (s *Session) settle(ctx context.Context, docID uuid.UUID, imageRef string) {
	defer s.wg.Done()

	octx, cancel := context.WithTimeout(ctx, s.cfg.OCRTimeout)
	text, err := s.deps.OCR.ExtractText(octx, imageRef)
	cancel()

	if err != nil {
		s.deps.Logger.Error("scan.ocr.failed", "document_id", docID, "error", err)
		s.recordErr(err)
		s.apply(docID, constants.TypeOther, "", false)
		return
	}
	if strings.TrimSpace(text) == "" {
		s.deps.Logger.Debug("scan.ocr.empty", "document_id", docID)
		s.apply(docID, constants.TypeOther, "", false)
		return
	}

	docType := classify.Classify(text, s.deps.Table)
	customerID, found := s.deps.Extractor.ExtractCustomerID(text)

	s.apply(docID, docType, customerID, found)
	s.deps.Logger.Debug("scan.settled",
		"document_id", docID,
		"type", docType,
		"customer_id_found", found,
	)
}

func (s *Session) apply(docID uuid.UUID, docType, customerID string, found bool) {
	now := time.Now().UTC()
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.docs {
		if d.ID == docID {
			d.Type = docType
			d.UpdatedAt = now
			break
		}
	}
	if found {
		// Last settlement wins.
		s.group.CustomerID = customerID
		s.group.UpdatedAt = now
	}
}

func (s *Session) recordErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = append(s.errs, err)
}

// Wait blocks until every spawned settlement task has finished. The
// batch is settled afterwards; callers are not required to wait and
// normally observe mutations as they happen.
func (s *Session) Wait() {
	s.wg.Wait()
}
