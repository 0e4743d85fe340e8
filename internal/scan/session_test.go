package scan

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanvault/scanvault/constants"
	"github.com/scanvault/scanvault/internal/blob"
	"github.com/scanvault/scanvault/internal/classify"
	"github.com/scanvault/scanvault/internal/entity"
)

type fakeOCR struct {
	mu    sync.Mutex
	texts map[string]string
	errs  map[string]error
	gates map[string]chan struct{}
}

func (f *fakeOCR) ExtractText(ctx context.Context, imageRef string) (string, error) {
	f.mu.Lock()
	gate := f.gates[imageRef]
	f.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.errs[imageRef]; err != nil {
		return "", err
	}
	return f.texts[imageRef], nil
}

type fakeBlob struct {
	mu         sync.Mutex
	deleted    []string
	failUpload map[string]bool
	failDelete map[string]bool
}

func (f *fakeBlob) Upload(_ context.Context, localPath string) (blob.Asset, error) {
	base := filepath.Base(localPath)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpload[base] {
		return blob.Asset{}, errors.New("upload rejected")
	}
	return blob.Asset{ID: "asset-" + base, URL: memRef(base)}, nil
}

func (f *fakeBlob) Delete(_ context.Context, assetID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDelete[assetID] {
		return errors.New("delete rejected")
	}
	f.deleted = append(f.deleted, assetID)
	return nil
}

func (f *fakeBlob) Fetch(context.Context, string) ([]byte, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBlob) deletedAssets() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.deleted))
	copy(out, f.deleted)
	return out
}

func memRef(base string) string { return "mem://" + base }

func testTable(t *testing.T) *classify.RuleTable {
	t.Helper()
	table, err := classify.NewRuleTable([]classify.Rule{
		{Type: "Invoice", Keywords: []classify.Keyword{{Phrase: "invoice", Weight: 5}}},
		{Type: "Contract", Keywords: []classify.Keyword{{Phrase: "contract", Weight: 5}}},
	})
	require.NoError(t, err)
	return table
}

func newTestSession(t *testing.T, ocr *fakeOCR, blobs blob.Store) *Session {
	t.Helper()
	if blobs == nil {
		blobs = &fakeBlob{}
	}
	return NewSession(uuid.New(), nil, nil, SessionConfig{OCRTimeout: 5 * time.Second}, Deps{
		OCR:   ocr,
		Blobs: blobs,
		Table: testTable(t),
	})
}

func TestAddPagesReturnsStubsImmediately(t *testing.T) {
	gate := make(chan struct{})
	ocrStub := &fakeOCR{
		texts: map[string]string{},
		gates: map[string]chan struct{}{},
	}
	paths := []string{"a.jpg", "b.jpg", "c.png"}
	for _, p := range paths {
		ocrStub.texts[memRef(p)] = "an invoice"
		ocrStub.gates[memRef(p)] = gate
	}

	sess := newTestSession(t, ocrStub, nil)
	stubs := sess.AddPages(context.Background(), paths)

	require.Len(t, stubs, 3)
	for _, d := range stubs {
		assert.Equal(t, constants.TypeUnclassified, d.Type)
		assert.Equal(t, sess.Group().ID, d.GroupID)
		assert.NotEmpty(t, d.ImageRef)
		assert.NotEmpty(t, d.AssetID)
	}
	// Settlement is still blocked behind the gate.
	for _, d := range sess.Documents() {
		assert.Equal(t, constants.TypeUnclassified, d.Type)
	}

	close(gate)
	sess.Wait()
	for _, d := range sess.Documents() {
		assert.Equal(t, "Invoice", d.Type)
	}
}

func TestSessionClassifiesAndExtracts(t *testing.T) {
	ocrStub := &fakeOCR{texts: map[string]string{
		memRef("a.jpg"): "INVOICE for customer 12345678901",
		memRef("b.jpg"): "this contract binds both parties",
		memRef("c.jpg"): "nothing recognizable here",
	}}
	sess := newTestSession(t, ocrStub, nil)
	sess.AddPages(context.Background(), []string{"a.jpg", "b.jpg", "c.jpg"})
	sess.Wait()

	types := map[string]string{}
	for _, d := range sess.Documents() {
		types[d.ImageRef] = d.Type
	}
	assert.Equal(t, "Invoice", types[memRef("a.jpg")])
	assert.Equal(t, "Contract", types[memRef("b.jpg")])
	assert.Equal(t, constants.TypeOther, types[memRef("c.jpg")])
	assert.Equal(t, "12345678901", sess.Group().CustomerID)
	assert.Empty(t, sess.Errors())
}

func TestSessionOCRFailureDowngradesToOther(t *testing.T) {
	ocrStub := &fakeOCR{
		texts: map[string]string{memRef("ok.jpg"): "invoice 99988877766"},
		errs:  map[string]error{memRef("bad.jpg"): errors.New("ocr timeout")},
	}
	sess := newTestSession(t, ocrStub, nil)
	sess.AddPages(context.Background(), []string{"ok.jpg", "bad.jpg"})
	sess.Wait()

	types := map[string]string{}
	for _, d := range sess.Documents() {
		types[d.ImageRef] = d.Type
	}
	assert.Equal(t, "Invoice", types[memRef("ok.jpg")])
	assert.Equal(t, constants.TypeOther, types[memRef("bad.jpg")])
	assert.Equal(t, "99988877766", sess.Group().CustomerID)
	assert.Len(t, sess.Errors(), 1)
}

func TestSessionEmptyTextIsOther(t *testing.T) {
	ocrStub := &fakeOCR{texts: map[string]string{memRef("blank.jpg"): "   \n\t "}}
	sess := newTestSession(t, ocrStub, nil)
	sess.AddPages(context.Background(), []string{"blank.jpg"})
	sess.Wait()

	docs := sess.Documents()
	require.Len(t, docs, 1)
	assert.Equal(t, constants.TypeOther, docs[0].Type)
	assert.Empty(t, sess.Group().CustomerID)
	assert.Empty(t, sess.Errors())
}

func TestCustomerIDLastSettlementWins(t *testing.T) {
	pages := []string{"first.jpg", "second.jpg"}
	ids := map[string]string{
		"first.jpg":  "11111111111",
		"second.jpg": "22222222222",
	}

	for _, winner := range pages {
		t.Run("winner="+winner, func(t *testing.T) {
			ocrStub := &fakeOCR{
				texts: map[string]string{},
				gates: map[string]chan struct{}{},
			}
			gates := map[string]chan struct{}{}
			for _, p := range pages {
				ocrStub.texts[memRef(p)] = fmt.Sprintf("invoice %s end", ids[p])
				g := make(chan struct{})
				gates[p] = g
				ocrStub.gates[memRef(p)] = g
			}

			sess := newTestSession(t, ocrStub, nil)
			sess.AddPages(context.Background(), pages)

			// Release the loser first and wait for its settlement to
			// land, then release the winner.
			for _, p := range pages {
				if p != winner {
					close(gates[p])
					require.Eventually(t, func() bool {
						return sess.Group().CustomerID == ids[p]
					}, 5*time.Second, 5*time.Millisecond)
				}
			}
			close(gates[winner])
			sess.Wait()

			assert.Equal(t, ids[winner], sess.Group().CustomerID)
		})
	}
}

func TestAddPagesUploadFailureSkipsPage(t *testing.T) {
	ocrStub := &fakeOCR{texts: map[string]string{
		memRef("good.jpg"):  "contract",
		memRef("other.jpg"): "contract",
	}}
	blobs := &fakeBlob{failUpload: map[string]bool{"broken.jpg": true}}

	sess := newTestSession(t, ocrStub, blobs)
	stubs := sess.AddPages(context.Background(), []string{"good.jpg", "broken.jpg", "other.jpg"})
	sess.Wait()

	assert.Len(t, stubs, 2)
	assert.Len(t, sess.Documents(), 2)
	assert.Len(t, sess.Errors(), 1)
}

func TestNewSessionSynthesizesGroup(t *testing.T) {
	owner := uuid.New()
	sess := NewSession(owner, nil, nil, SessionConfig{}, Deps{OCR: &fakeOCR{}, Blobs: &fakeBlob{}, Table: testTable(t)})

	g := sess.Group()
	assert.NotEqual(t, uuid.Nil, g.ID)
	assert.Equal(t, owner, g.OwnerID)
	assert.Empty(t, sess.Documents())
}

func TestNewSessionResumesExistingGroup(t *testing.T) {
	existing := &entity.Group{ID: uuid.New(), OwnerID: uuid.New(), CustomerID: "55544433322"}
	prior := []entity.Document{
		{ID: uuid.New(), GroupID: existing.ID, ImageRef: "mem://old.jpg", Type: "Invoice"},
	}
	sess := NewSession(uuid.Nil, existing, prior, SessionConfig{}, Deps{OCR: &fakeOCR{}, Blobs: &fakeBlob{}, Table: testTable(t)})

	g := sess.Group()
	assert.Equal(t, existing.ID, g.ID)
	assert.Equal(t, "55544433322", g.CustomerID)
	require.Len(t, sess.Documents(), 1)
	assert.Equal(t, "Invoice", sess.Documents()[0].Type)
}

func TestSetCustomerIDManualEdit(t *testing.T) {
	sess := newTestSession(t, &fakeOCR{}, nil)
	sess.SetCustomerID("00011122233")
	assert.Equal(t, "00011122233", sess.Group().CustomerID)
}
