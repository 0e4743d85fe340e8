package scan

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/scanvault/scanvault/internal/blob"
	"github.com/scanvault/scanvault/internal/repository"
)

// Service persists sessions and drives group and document deletion.
type Service struct {
	groups repository.GroupRepository
	docs   repository.DocumentRepository
	blobs  blob.Store
	logger *slog.Logger
}

func NewService(groups repository.GroupRepository, docs repository.DocumentRepository, blobs blob.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{groups: groups, docs: docs, blobs: blobs, logger: logger}
}

// SaveFailure records one document that could not be persisted.
type SaveFailure struct {
	DocumentID uuid.UUID
	Err        error
}

// SaveResult reports a best-effort save: the group outcome plus the
// per-document outcomes, independently.
type SaveResult struct {
	GroupID       uuid.UUID
	DocumentCount int
	Saved         int
	Failed        []SaveFailure
	GroupErr      error
}

// OK reports whether everything persisted.
func (r *SaveResult) OK() bool {
	return r.GroupErr == nil && len(r.Failed) == 0
}

// SaveSession writes the session's group and documents through the
// repositories. The document count is recomputed from the in-memory
// list at save time; it is never maintained incrementally. Persistence
// is best-effort: a failed document upsert is recorded and the rest
// proceed.
func (s *Service) SaveSession(ctx context.Context, sess *Session) *SaveResult {
	group := sess.Group()
	docs := sess.Documents()
	group.DocumentCount = len(docs)

	res := &SaveResult{GroupID: group.ID, DocumentCount: len(docs)}

	if _, err := s.groups.Upsert(ctx, &group); err != nil {
		s.logger.Error("scan.save.group_failed", "group_id", group.ID, "error", err)
		res.GroupErr = err
	}

	for i := range docs {
		d := docs[i]
		if _, err := s.docs.Upsert(ctx, &d); err != nil {
			s.logger.Error("scan.save.document_failed", "document_id", d.ID, "error", err)
			res.Failed = append(res.Failed, SaveFailure{DocumentID: d.ID, Err: err})
			continue
		}
		res.Saved++
	}

	s.logger.Info("scan.save.done",
		"group_id", group.ID,
		"document_count", res.DocumentCount,
		"saved", res.Saved,
		"failed", len(res.Failed),
	)
	return res
}

// DeleteDocument removes one document and its stored image. The blob
// delete is best-effort; a stale asset is logged, not fatal.
func (s *Service) DeleteDocument(ctx context.Context, docID uuid.UUID) error {
	doc, err := s.docs.GetByID(ctx, docID)
	if err != nil {
		return err
	}
	if doc.AssetID != "" {
		if err := s.blobs.Delete(ctx, doc.AssetID); err != nil {
			s.logger.Warn("scan.delete.blob_failed", "asset_id", doc.AssetID, "error", err)
		}
	}
	return s.docs.Delete(ctx, docID)
}

// DeleteGroup cascades: every document's blob and record are removed
// concurrently, all sub-deletes are awaited, then the group record
// goes. Blob failures are logged and do not block the cascade.
func (s *Service) DeleteGroup(ctx context.Context, groupID uuid.UUID) error {
	docs, err := s.docs.ListByGroup(ctx, groupID)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	for _, d := range docs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if d.AssetID != "" {
				if err := s.blobs.Delete(ctx, d.AssetID); err != nil {
					s.logger.Warn("scan.delete.blob_failed", "asset_id", d.AssetID, "error", err)
				}
			}
			if err := s.docs.Delete(ctx, d.ID); err != nil {
				s.logger.Error("scan.delete.document_failed", "document_id", d.ID, "error", err)
			}
		}()
	}
	wg.Wait()

	if err := s.groups.Delete(ctx, groupID); err != nil {
		return err
	}
	s.logger.Info("scan.delete.group_done", "group_id", groupID, "documents", len(docs))
	return nil
}
