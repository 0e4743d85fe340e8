package pdf

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanvault/scanvault/internal/entity"
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

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func doc(ref, docType string) *entity.Document {
	return &entity.Document{ID: uuid.New(), GroupID: uuid.New(), ImageRef: ref, Type: docType}
}

func TestPartitionPreservesOrder(t *testing.T) {
	docs := []*entity.Document{
		doc("1", "Invoice"),
		doc("2", "Contract"),
		doc("3", "Invoice"),
		doc("4", "Other"),
	}
	order, parts := Partition(docs)
	assert.Equal(t, []string{"Invoice", "Contract", "Other"}, order)
	assert.Len(t, parts["Invoice"], 2)
	assert.Equal(t, "1", parts["Invoice"][0].ImageRef)
	assert.Equal(t, "3", parts["Invoice"][1].ImageRef)
}

func TestAssembleBundlesPerType(t *testing.T) {
	fetcher := &mapFetcher{images: map[string][]byte{
		"a": encodePNG(t, 100, 140),
		"b": encodeJPEG(t, 80, 60),
		"c": encodePNG(t, 50, 50),
	}}
	a := NewAssembler(fetcher, nil)

	bundles, err := a.Assemble(context.Background(), []*entity.Document{
		doc("a", "Invoice"),
		doc("b", "Invoice"),
		doc("c", "Contract"),
	})
	require.NoError(t, err)
	require.Len(t, bundles, 2)
	assert.True(t, bytes.HasPrefix(bundles["Invoice"], []byte("%PDF")))
	assert.True(t, bytes.HasPrefix(bundles["Contract"], []byte("%PDF")))
	// Two pages should make the Invoice bundle the bigger one.
	assert.Greater(t, len(bundles["Invoice"]), len(bundles["Contract"]))
}

func TestAssembleEmptyInput(t *testing.T) {
	a := NewAssembler(&mapFetcher{}, nil)
	bundles, err := a.Assemble(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, bundles)
}

func TestAssembleSkipsBadImages(t *testing.T) {
	fetcher := &mapFetcher{images: map[string][]byte{
		"good":    encodePNG(t, 64, 64),
		"garbage": []byte("definitely not an image"),
	}}
	a := NewAssembler(fetcher, nil)

	bundles, err := a.Assemble(context.Background(), []*entity.Document{
		doc("good", "Invoice"),
		doc("garbage", "Invoice"),
		doc("missing", "Invoice"),
	})
	require.NoError(t, err)
	require.Contains(t, bundles, "Invoice")
	assert.True(t, bytes.HasPrefix(bundles["Invoice"], []byte("%PDF")))
}

func TestAssembleOmitsUnrenderableType(t *testing.T) {
	fetcher := &mapFetcher{images: map[string][]byte{
		"good": encodeJPEG(t, 64, 64),
	}}
	a := NewAssembler(fetcher, nil)

	bundles, err := a.Assemble(context.Background(), []*entity.Document{
		doc("good", "Invoice"),
		doc("missing", "Contract"),
	})
	require.NoError(t, err)
	assert.Contains(t, bundles, "Invoice")
	assert.NotContains(t, bundles, "Contract")
}

func TestFitPage(t *testing.T) {
	// Small image keeps natural size.
	w, h := fitPage(100, 100)
	assert.InDelta(t, 100*25.4/72.0, w, 0.001)
	assert.Equal(t, w, h)

	// Oversized image scales to the printable area, keeping ratio.
	w, h = fitPage(4000, 2000)
	assert.InDelta(t, 190.0, w, 0.001)
	assert.InDelta(t, 95.0, h, 0.001)

	// Tall image is bounded by printable height.
	w, h = fitPage(1000, 4000)
	assert.InDelta(t, 277.0, h, 0.001)
	assert.InDelta(t, 277.0/4, w, 0.001)
}
