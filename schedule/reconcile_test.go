package schedule

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classifiedFormOf(stored []StoredEvent) []ClassifiedRecord {
	out := make([]ClassifiedRecord, 0, len(stored))
	for _, ev := range stored {
		out = append(out, ClassifiedRecord{
			Date:     ev.Date,
			Type:     ev.Type,
			Title:    ev.Description,
			IsPassed: ev.IsPassed,
		})
	}
	return out
}

func TestReconcileIdempotence(t *testing.T) {
	stored := []StoredEvent{
		{ID: 1, Date: "2026-03-05", Type: TypeHCManha, Description: "Manhã HC"},
		{ID: 2, Date: "2026-03-06", Type: TypeZNTarde, Description: "Corredor", IsPassed: true},
		{ID: 3, Date: "2026-03-07", Type: TypeApoio},
	}

	res := Reconcile(classifiedFormOf(stored), stored)

	assert.Empty(t, res.MissingInStore)
	assert.Empty(t, res.StatusDiffs)
	assert.Empty(t, res.StoreOnly)
}

func TestReconcileEmptyInputs(t *testing.T) {
	res := Reconcile(nil, nil)
	assert.Empty(t, res.MissingInStore)
	assert.Empty(t, res.StatusDiffs)
	assert.Empty(t, res.StoreOnly)
}

func TestReconcileMissingInStore(t *testing.T) {
	imported := []ClassifiedRecord{
		{Date: "2026-03-05", Type: TypeHCManha, Title: "Manhã HC"},
	}

	res := Reconcile(imported, nil)

	require.Len(t, res.MissingInStore, 1)
	assert.Equal(t, imported[0], res.MissingInStore[0])
	assert.Empty(t, res.StatusDiffs)
	assert.Empty(t, res.StoreOnly)
}

func TestReconcileStoreOnly(t *testing.T) {
	stored := []StoredEvent{
		{ID: 1, Date: "2026-03-05", Type: TypeHCManha},
		{ID: 2, Date: "2026-03-09", Type: TypeNoturno},
	}
	imported := []ClassifiedRecord{
		{Date: "2026-03-05", Type: TypeHCManha},
	}

	res := Reconcile(imported, stored)

	assert.Empty(t, res.MissingInStore)
	assert.Empty(t, res.StatusDiffs)
	require.Len(t, res.StoreOnly, 1)
	assert.Equal(t, uint(2), res.StoreOnly[0].ID)
}

func TestReconcileStatusDiff(t *testing.T) {
	stored := []StoredEvent{
		{ID: 7, Date: "2026-03-05", Type: TypeZNManha, IsPassed: false},
	}
	imported := []ClassifiedRecord{
		{Date: "2026-03-05", Type: TypeZNManha, Title: "passei pro colega", IsPassed: true},
	}

	res := Reconcile(imported, stored)

	assert.Empty(t, res.MissingInStore)
	assert.Empty(t, res.StoreOnly)
	require.Len(t, res.StatusDiffs, 1)
	diff := res.StatusDiffs[0]
	assert.Equal(t, uint(7), diff.StoredID)
	assert.False(t, diff.StoredPassed)
	assert.True(t, diff.ImportedPassed)
	assert.Equal(t, imported[0], diff.Record)
}

// Two stored events on the same key and a single imported record: the
// first stored event is consumed (FIFO), the second lands in StoreOnly.
func TestReconcileDuplicateKeyConsumesFirst(t *testing.T) {
	stored := []StoredEvent{
		{ID: 1, Date: "2026-03-05", Type: TypeZNManha},
		{ID: 2, Date: "2026-03-05", Type: TypeZNManha},
	}
	imported := []ClassifiedRecord{
		{Date: "2026-03-05", Type: TypeZNManha},
	}

	res := Reconcile(imported, stored)

	assert.Empty(t, res.MissingInStore)
	assert.Empty(t, res.StatusDiffs)
	require.Len(t, res.StoreOnly, 1)
	assert.Equal(t, uint(2), res.StoreOnly[0].ID)
}

func TestReconcileStoreOnlyKeepsStorageOrder(t *testing.T) {
	stored := []StoredEvent{
		{ID: 3, Date: "2026-03-01", Type: TypeHCManha},
		{ID: 1, Date: "2026-03-02", Type: TypeHCManha},
		{ID: 2, Date: "2026-03-03", Type: TypeHCManha},
	}

	res := Reconcile(nil, stored)

	require.Len(t, res.StoreOnly, 3)
	assert.Equal(t, uint(3), res.StoreOnly[0].ID)
	assert.Equal(t, uint(1), res.StoreOnly[1].ID)
	assert.Equal(t, uint(2), res.StoreOnly[2].ID)
}

// Full import path: CSV row -> parse -> classify -> reconcile against an
// empty store.
func TestImportEndToEnd(t *testing.T) {
	csv := strings.Join([]string{
		`start_date,title,place,notes,color`,
		`2026-03-05T07:00:00,"Manhã HC",HC,"",""`,
	}, "\n")

	records, skipped, err := ParseImportCSV(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, records, 1)

	imported := ClassifyRecords(records)
	res := Reconcile(imported, nil)

	require.Len(t, res.MissingInStore, 1)
	assert.Equal(t, ClassifiedRecord{
		Date:     "2026-03-05",
		Type:     TypeHCManha,
		Title:    "Manhã HC",
		IsPassed: false,
	}, res.MissingInStore[0])
	assert.Empty(t, res.StatusDiffs)
	assert.Empty(t, res.StoreOnly)
}
