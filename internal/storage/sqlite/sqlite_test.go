package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vendorunity/vendorunity/internal/models"
	"github.com/vendorunity/vendorunity/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestKVGetPutDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, ok, err := store.Get(ctx, storage.Vendors)
	require.NoError(t, err)
	require.False(t, ok, "missing key should report absent")

	require.NoError(t, store.Put(ctx, storage.Vendors, []byte(`[{"id":"a"}]`)))

	payload, ok, err := store.Get(ctx, storage.Vendors)
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `[{"id":"a"}]`, string(payload))

	// Put overwrites the whole payload.
	require.NoError(t, store.Put(ctx, storage.Vendors, []byte(`[]`)))
	payload, _, err = store.Get(ctx, storage.Vendors)
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(payload))

	require.NoError(t, store.Delete(ctx, storage.Vendors))
	_, ok, err = store.Get(ctx, storage.Vendors)
	require.NoError(t, err)
	require.False(t, ok)

	// Deleting again is a no-op.
	require.NoError(t, store.Delete(ctx, storage.Vendors))
}

func TestRecordsRoundTrip(t *testing.T) {
	store := newTestStore(t)
	records := storage.NewRecords(store)
	ctx := context.Background()

	in := []models.VendorRecord{
		{ID: "1", Name: "Asha", GroupCode: "GRPAAAAAA", IsGroupCreator: true, CreatedAt: 100},
		{ID: "2", Name: "Binod", GroupCode: "GRPAAAAAA", CreatedAt: 200},
		{ID: "3", Name: "Chand", GroupCode: "GRPBBBBBB", IsGroupCreator: true, CreatedAt: 300},
	}
	require.NoError(t, records.Save(ctx, storage.Vendors, in))

	var out []models.VendorRecord
	require.NoError(t, records.Load(ctx, storage.Vendors, &out))
	require.Equal(t, in, out, "round-trip must preserve records and order")
}

func TestRecordsLoadMissingCollection(t *testing.T) {
	store := newTestStore(t)
	records := storage.NewRecords(store)

	var out []models.SupplierRecord
	require.NoError(t, records.Load(context.Background(), storage.Suppliers, &out))
	require.Empty(t, out)
}

func TestRecordsQuarantinesMalformedPayload(t *testing.T) {
	store := newTestStore(t)
	records := storage.NewRecords(store)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, storage.Vendors, []byte(`{not json`)))

	var out []models.VendorRecord
	require.NoError(t, records.Load(ctx, storage.Vendors, &out), "malformed payload must not surface an error")
	require.Empty(t, out)

	n, err := store.QuarantineCount(ctx, storage.Vendors)
	require.NoError(t, err)
	require.Equal(t, 1, n, "the raw payload must be kept in quarantine")

	// The live row is gone; the next load starts clean.
	_, ok, err := store.Get(ctx, storage.Vendors)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRecordsClear(t *testing.T) {
	store := newTestStore(t)
	records := storage.NewRecords(store)
	ctx := context.Background()

	require.NoError(t, records.Save(ctx, storage.Suppliers, []models.SupplierRecord{{ID: "s1"}}))
	require.NoError(t, records.Clear(ctx, storage.Suppliers))

	var out []models.SupplierRecord
	require.NoError(t, records.Load(ctx, storage.Suppliers, &out))
	require.Empty(t, out)
}

func TestRecordsScalarValues(t *testing.T) {
	store := newTestStore(t)
	records := storage.NewRecords(store)
	ctx := context.Background()

	_, ok, err := records.GetValue(ctx, storage.Language)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, records.SetValue(ctx, storage.Language, "hi"))
	code, ok, err := records.GetValue(ctx, storage.Language)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "hi", code)
}
