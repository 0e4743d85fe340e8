// scanbatch scans a directory (or watches it) with no server involved:
// classify every image into a fresh group, persist it, then sync the
// finished groups to a local folder as per-type PDF bundles.
package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/scanvault/scanvault/constants"
	"github.com/scanvault/scanvault/internal/blob"
	"github.com/scanvault/scanvault/internal/classify"
	"github.com/scanvault/scanvault/internal/common"
	"github.com/scanvault/scanvault/internal/export"
	"github.com/scanvault/scanvault/internal/ocr"
	"github.com/scanvault/scanvault/internal/pdf"
	"github.com/scanvault/scanvault/internal/repository"
	"github.com/scanvault/scanvault/internal/repository/entdb"
	"github.com/scanvault/scanvault/internal/scan"
	"github.com/scanvault/scanvault/internal/users"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir   = flag.String("dir", "", "directory of page images to process (required)")
		out   = flag.String("out", "", "sync destination directory (defaults to <dir>/../scanvault-out)")
		inmem = flag.Bool("inmem", false, "use an in-memory SQLite database")
		watch = flag.Bool("watch", false, "keep watching the directory for new pages")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "scanvault-out")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := common.LoadConfig()
	if *inmem {
		cfg.Database.Driver = "sqlite"
		cfg.Database.DSN = ""
	}

	entc, pool, err := entdb.Open(ctx, entdb.Config{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.DSN,
	}, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer entdb.Close(entc, pool, logger)
	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("failed to create schema", "error", err)
		os.Exit(1)
	}

	groupsRepo := entdb.NewGroupRepository(entc, logger)
	docsRepo := entdb.NewDocumentRepository(entc, logger)

	blobs, err := blob.NewLocalStore(filepath.Join(*out, ".blobs"))
	if err != nil {
		logger.Error("failed to prepare blob store", "error", err)
		os.Exit(1)
	}

	var extractor ocr.TextExtractor
	if cfg.OCR.Endpoint != "" {
		extractor = ocr.NewClient(ocr.Config{
			Endpoint: cfg.OCR.Endpoint,
			APIKey:   cfg.OCR.APIKey,
			Language: cfg.OCR.Language,
			Timeout:  cfg.OCR.Timeout,
		}, logger)
	} else {
		logger.Warn("OCR endpoint not configured, every page will classify as Other")
		extractor = ocr.Noop{}
	}

	table, err := classify.LoadTableFile(cfg.Scan.RuleTablePath)
	if err != nil {
		logger.Error("failed to load rule table", "path", cfg.Scan.RuleTablePath, "error", err)
		os.Exit(1)
	}

	deps := scan.Deps{
		OCR:       extractor,
		Blobs:     blobs,
		Table:     table,
		Extractor: classify.NewDigitRunExtractor(cfg.Scan.CustomerIDLength),
		Logger:    logger,
	}
	sessCfg := scan.SessionConfig{
		OCRTimeout:       cfg.OCR.Timeout,
		Enhance:          cfg.Scan.Enhance,
		ArtifactCacheDir: cfg.Scan.ArtifactCacheDir,
	}
	scanSvc := scan.NewService(groupsRepo, docsRepo, blobs, logger)

	// Groups reference their owner, so the batch user row has to exist
	// before the first group upsert. The id is derived from a fixed
	// name so repeated runs share one account.
	usersSvc := users.NewService(entdb.NewUserRepository(entc, logger), groupsRepo, logger)
	batchUser, err := usersSvc.EnsureUser(ctx, uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://scanvault.local/users/batch")), "Local Batch")
	if err != nil {
		logger.Error("failed to ensure batch user", "error", err)
		os.Exit(1)
	}
	owner := batchUser.ID
	if *watch {
		runWatch(ctx, *dir, owner, sessCfg, deps, scanSvc, logger)
	} else {
		paths, err := collectImages(*dir)
		if err != nil {
			logger.Error("failed to scan directory", "dir", *dir, "error", err)
			os.Exit(1)
		}
		if len(paths) == 0 {
			logger.Info("no page images found", "dir", *dir)
		} else {
			runBatch(ctx, paths, owner, sessCfg, deps, scanSvc, logger)
		}
	}

	// Sync still runs after an interrupt ends watch mode.
	if err := runSync(context.WithoutCancel(ctx), *out, groupsRepo, docsRepo, blobs, logger); err != nil {
		logger.Error("sync failed", "error", err)
		os.Exit(1)
	}
}

func collectImages(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; ok {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}

func runBatch(ctx context.Context, paths []string, owner uuid.UUID, sessCfg scan.SessionConfig, deps scan.Deps, svc *scan.Service, logger *slog.Logger) {
	sess := scan.NewSession(owner, nil, nil, sessCfg, deps)
	sess.AddPages(ctx, paths)
	sess.Wait()

	res := svc.SaveSession(ctx, sess)
	if !res.OK() {
		logger.Warn("save incomplete", "group_id", res.GroupID, "saved", res.Saved, "failed", len(res.Failed))
	}
	logger.Info("batch complete",
		"group_id", res.GroupID,
		"customer_id", sess.Group().CustomerID,
		"documents", res.DocumentCount,
		"errors", len(sess.Errors()),
	)
}

// runWatch starts one session per debounce window so each drop of
// pages becomes its own group, until interrupted.
func runWatch(ctx context.Context, dir string, owner uuid.UUID, sessCfg scan.SessionConfig, deps scan.Deps, svc *scan.Service, logger *slog.Logger) {
	wctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pathCh, errCh, err := scan.StartWatcher(wctx, scan.WatchConfig{
		Roots:       []string{dir},
		InitialScan: true,
		Debounce:    2 * time.Second,
		Logger:      logger,
	})
	if err != nil {
		logger.Error("failed to start watcher", "dir", dir, "error", err)
		os.Exit(1)
	}
	logger.Info("watching", "dir", dir)

	const settle = 5 * time.Second
	for {
		var batch []string
		timer := time.NewTimer(settle)
	gather:
		for {
			select {
			case p, ok := <-pathCh:
				if !ok {
					timer.Stop()
					if len(batch) > 0 {
						runBatch(context.WithoutCancel(ctx), batch, owner, sessCfg, deps, svc, logger)
					}
					return
				}
				batch = append(batch, p)
				timer.Reset(settle)
			case err := <-errCh:
				logger.Error("watch error", "error", err)
			case <-timer.C:
				break gather
			}
		}
		if len(batch) > 0 {
			runBatch(ctx, batch, owner, sessCfg, deps, svc, logger)
		}
	}
}

func runSync(ctx context.Context, out string, groups repository.GroupRepository, docs repository.DocumentRepository, blobs blob.Store, logger *slog.Logger) error {
	writer, err := export.NewLocalWriter(out)
	if err != nil {
		return err
	}
	svc := export.NewService(groups, docs, pdf.NewAssembler(blobs, logger), writer, logger)
	sum, err := svc.Sync(ctx, func(p export.Progress) {
		logger.Info("sync progress", "done", p.Done, "total", p.Total, "customer_id", p.CustomerID, "bundles", p.Bundles)
	})
	if err != nil {
		return err
	}
	logger.Info("sync complete", "synced", sum.Synced, "skipped", sum.Skipped, "failed", sum.Failed)
	return nil
}
