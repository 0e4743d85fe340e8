package export

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/scanvault/scanvault/internal/entity"
	"github.com/scanvault/scanvault/internal/pdf"
	"github.com/scanvault/scanvault/internal/repository/memdb"
)

type mapFetcher struct {
	images map[string][]byte
}

func (f *mapFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	data, ok := f.images[url]
	if !ok {
		return nil, errors.New("no such image")
	}
	return data, nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 32, 32))))
	return buf.Bytes()
}

type fixture struct {
	svc     *Service
	groups  *memdb.GroupRepo
	docs    *memdb.DocumentRepo
	outDir  string
	fetcher *mapFetcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	outDir := t.TempDir()
	writer, err := NewLocalWriter(outDir)
	require.NoError(t, err)

	f := &fixture{
		groups:  memdb.NewGroupRepository(),
		docs:    memdb.NewDocumentRepository(),
		outDir:  outDir,
		fetcher: &mapFetcher{images: map[string][]byte{}},
	}
	f.svc = NewService(f.groups, f.docs, pdf.NewAssembler(f.fetcher, nil), writer, nil)
	return f
}

func (f *fixture) seedGroup(t *testing.T, customerID string, types ...string) *entity.Group {
	t.Helper()
	ctx := context.Background()
	g := &entity.Group{ID: uuid.New(), OwnerID: uuid.New(), CustomerID: customerID, DocumentCount: len(types)}
	_, err := f.groups.Upsert(ctx, g)
	require.NoError(t, err)
	for _, docType := range types {
		ref := "mem://" + uuid.NewString()
		f.fetcher.images[ref] = pngBytes(t)
		_, err := f.docs.Upsert(ctx, &entity.Document{
			ID:       uuid.New(),
			GroupID:  g.ID,
			ImageRef: ref,
			Type:     docType,
		})
		require.NoError(t, err)
	}
	return g
}

func TestSyncWritesBundlesPerCustomer(t *testing.T) {
	f := newFixture(t)
	f.seedGroup(t, "11111111111", "Invoice", "Invoice", "Contract")
	f.seedGroup(t, "22222222222", "Other")

	var progress []Progress
	sum, err := f.svc.Sync(context.Background(), func(p Progress) { progress = append(progress, p) })
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Synced)
	assert.Zero(t, sum.Skipped)
	assert.Zero(t, sum.Failed)
	require.Len(t, progress, 2)
	assert.Equal(t, 2, progress[1].Done)
	assert.Equal(t, 2, progress[1].Total)

	data, err := os.ReadFile(filepath.Join(f.outDir, "11111111111", "Invoice.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	_, err = os.Stat(filepath.Join(f.outDir, "11111111111", "Contract.pdf"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(f.outDir, "22222222222", "Other.pdf"))
	require.NoError(t, err)
}

func TestSyncSkipsExistingAndUnidentified(t *testing.T) {
	f := newFixture(t)
	f.seedGroup(t, "", "Invoice")
	synced := f.seedGroup(t, "33333333333", "Invoice")
	fresh := f.seedGroup(t, "44444444444", "Contract")

	// The destination already holds the first customer's folder.
	require.NoError(t, os.MkdirAll(filepath.Join(f.outDir, synced.CustomerID), 0755))

	var progress []Progress
	sum, err := f.svc.Sync(context.Background(), func(p Progress) { progress = append(progress, p) })
	require.NoError(t, err)

	assert.Equal(t, 1, sum.Synced)
	assert.Equal(t, 2, sum.Skipped)
	require.Len(t, progress, 1)
	assert.Equal(t, fresh.ID, progress[0].GroupID)

	entries, err := os.ReadDir(filepath.Join(f.outDir, synced.CustomerID))
	require.NoError(t, err)
	assert.Empty(t, entries, "already-synced folder must not be touched")
}

func TestSyncNothingEligible(t *testing.T) {
	f := newFixture(t)
	f.seedGroup(t, "", "Invoice")

	called := false
	sum, err := f.svc.Sync(context.Background(), func(Progress) { called = true })
	require.NoError(t, err)
	assert.False(t, called)
	assert.Zero(t, sum.Synced)
	assert.Equal(t, 1, sum.Skipped)
	assert.NotEmpty(t, sum.Report)
}

func TestSyncGroupFailureDoesNotAbortRun(t *testing.T) {
	f := newFixture(t)
	f.seedGroup(t, "55555555555", "Invoice")

	// A regular file squatting on the customer folder path makes every
	// write for that group fail.
	broken := f.seedGroup(t, "66666666666", "Contract")
	require.NoError(t, os.WriteFile(filepath.Join(f.outDir, broken.CustomerID), []byte("file in the way"), 0644))

	var progress []Progress
	sum, err := f.svc.Sync(context.Background(), func(p Progress) { progress = append(progress, p) })
	require.NoError(t, err)

	assert.Equal(t, 1, sum.Synced)
	assert.Equal(t, 1, sum.Failed)
	require.Len(t, progress, 2)
	var failed *Progress
	for i := range progress {
		if progress[i].Err != nil {
			failed = &progress[i]
		}
	}
	require.NotNil(t, failed)
	assert.Equal(t, broken.ID, failed.GroupID)
}

func TestSyncWritesSummaryWorkbook(t *testing.T) {
	f := newFixture(t)
	f.seedGroup(t, "", "Invoice")
	f.seedGroup(t, "77777777777", "Invoice")

	sum, err := f.svc.Sync(context.Background(), nil)
	require.NoError(t, err)

	// The report lands in the destination root even when the caller
	// ignores the returned summary.
	data, err := os.ReadFile(filepath.Join(f.outDir, "sync-summary.xlsx"))
	require.NoError(t, err)
	assert.Equal(t, sum.Report, data)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()
	assert.Equal(t, []string{"Sync"}, wb.GetSheetList())

	rows, err := wb.GetRows("Sync")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per considered group")
	assert.Equal(t, "Customer ID", rows[0][0])
}

func TestLocalWriterListFolders(t *testing.T) {
	dir := t.TempDir()
	w, err := NewLocalWriter(dir)
	require.NoError(t, err)

	folders, err := w.ListFolders()
	require.NoError(t, err)
	assert.Empty(t, folders)

	require.NoError(t, w.WriteFile("12345678901", "Invoice.pdf", []byte("%PDF-1.4")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stray.txt"), []byte("x"), 0644))

	folders, err = w.ListFolders()
	require.NoError(t, err)
	assert.Equal(t, []string{"12345678901"}, folders)
}
