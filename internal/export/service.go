// Package export pushes finished groups to an external destination as
// per-type PDF bundles, one folder per customer.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/scanvault/scanvault/internal/entity"
	"github.com/scanvault/scanvault/internal/pdf"
	"github.com/scanvault/scanvault/internal/repository"
)

// Progress is emitted after each group is handled, including failures,
// so a caller can render a live sync view.
type Progress struct {
	GroupID    uuid.UUID
	CustomerID string
	Done       int
	Total      int
	Bundles    int
	Err        error
}

// ProgressFunc receives sync progress. May be nil.
type ProgressFunc func(Progress)

// groupStatus values for the summary report.
const (
	statusSynced  = "synced"
	statusFailed  = "failed"
	statusSkipped = "skipped"
)

// Service runs the one-way sync: local persisted groups out to the
// destination. Nothing is ever pulled back or deleted remotely.
type Service struct {
	groups    repository.GroupRepository
	docs      repository.DocumentRepository
	assembler *pdf.Assembler
	writer    FileWriter
	logger    *slog.Logger
}

func NewService(groups repository.GroupRepository, docs repository.DocumentRepository, assembler *pdf.Assembler, writer FileWriter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{groups: groups, docs: docs, assembler: assembler, writer: writer, logger: logger}
}

// SyncSummary totals one sync run. Report is an XLSX workbook with one
// row per considered group.
type SyncSummary struct {
	Total   int
	Synced  int
	Skipped int
	Failed  int
	Report  []byte
}

// Sync exports every eligible group. A group is skipped when it has no
// customer id yet or when the destination already has a folder with
// that id. Groups are processed independently; one group's failure is
// reported through progress and the summary, not returned. Zero
// eligible groups is a completed sync, not an error.
func (s *Service) Sync(ctx context.Context, onProgress ProgressFunc) (*SyncSummary, error) {
	start := time.Now()
	if onProgress == nil {
		onProgress = func(Progress) {}
	}

	existing, err := s.writer.ListFolders()
	if err != nil {
		return nil, fmt.Errorf("list destination folders: %w", err)
	}
	exclude := make(map[string]struct{}, len(existing))
	for _, f := range existing {
		exclude[f] = struct{}{}
	}

	groups, err := s.groups.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}

	summary := &SyncSummary{Total: len(groups)}
	var rows []summaryRow
	var eligible []*entity.Group

	for _, g := range groups {
		if g.CustomerID == "" {
			s.logger.Info("export.sync.skip", "group_id", g.ID, "reason", "no customer id")
			summary.Skipped++
			rows = append(rows, summaryRow{Group: g, Status: statusSkipped, Detail: "no customer id"})
			continue
		}
		if _, done := exclude[g.CustomerID]; done {
			s.logger.Info("export.sync.skip", "group_id", g.ID, "customer_id", g.CustomerID, "reason", "already synced")
			summary.Skipped++
			rows = append(rows, summaryRow{Group: g, Status: statusSkipped, Detail: "already synced"})
			continue
		}
		eligible = append(eligible, g)
	}

	for i, g := range eligible {
		bundles, err := s.syncGroup(ctx, g)
		p := Progress{
			GroupID:    g.ID,
			CustomerID: g.CustomerID,
			Done:       i + 1,
			Total:      len(eligible),
			Bundles:    bundles,
			Err:        err,
		}
		if err != nil {
			s.logger.Error("export.sync.group_failed", "group_id", g.ID, "customer_id", g.CustomerID, "error", err)
			summary.Failed++
			rows = append(rows, summaryRow{Group: g, Status: statusFailed, Detail: err.Error()})
		} else {
			summary.Synced++
			rows = append(rows, summaryRow{Group: g, Bundles: bundles, Status: statusSynced})
		}
		onProgress(p)
	}

	report, err := buildSummaryWorkbook(rows)
	if err != nil {
		return nil, fmt.Errorf("summary workbook: %w", err)
	}
	summary.Report = report
	// The report lands next to the customer folders. A failed write is
	// not a failed sync; the bundles are already out.
	if err := s.writer.WriteFile(".", summaryFileName, report); err != nil {
		s.logger.Warn("export.sync.summary_write_failed", "error", err)
	}

	s.logger.Info("export.sync.done",
		"groups", summary.Total,
		"synced", summary.Synced,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return summary, nil
}

// syncGroup assembles and writes one group's bundles, returning how
// many bundle files landed.
func (s *Service) syncGroup(ctx context.Context, g *entity.Group) (int, error) {
	docs, err := s.docs.ListByGroup(ctx, g.ID)
	if err != nil {
		return 0, fmt.Errorf("list documents: %w", err)
	}

	bundles, err := s.assembler.Assemble(ctx, docs)
	if err != nil {
		return 0, err
	}

	written := 0
	for docType, data := range bundles {
		if err := s.writer.WriteFile(g.CustomerID, docType+".pdf", data); err != nil {
			return written, fmt.Errorf("write %s bundle: %w", docType, err)
		}
		written++
	}
	s.logger.Debug("export.sync.group_ok", "group_id", g.ID, "customer_id", g.CustomerID, "bundles", written)
	return written, nil
}
