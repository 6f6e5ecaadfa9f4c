package schedule

// ImportedRecord is one raw row of an external calendar export.
type ImportedRecord struct {
	Date  string `json:"date"`
	Title string `json:"title"`
	Place string `json:"place"`
	Notes string `json:"notes"`
	Color string `json:"color"`
}

// ClassifiedRecord is an imported record after classification, shaped
// like a stored event for reconciliation.
type ClassifiedRecord struct {
	Date     string `json:"date"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	IsPassed bool   `json:"is_passed"`
}

// StoredEvent is the slice of a persisted event the core algorithms need.
type StoredEvent struct {
	ID          uint   `json:"id"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description"`
	IsPassed    bool   `json:"is_passed"`
	IsCancelled bool   `json:"is_cancelled"`
}

// StatusDiff pairs an imported record with the stored event it matched
// when the two disagree on the passed flag.
type StatusDiff struct {
	Record         ClassifiedRecord `json:"record"`
	StoredID       uint             `json:"stored_id"`
	StoredPassed   bool             `json:"stored_passed"`
	ImportedPassed bool             `json:"imported_passed"`
}

// Result holds the three reconciliation buckets. It is recomputed on
// every request and never cached.
type Result struct {
	MissingInStore []ClassifiedRecord `json:"missing_in_store"`
	StatusDiffs    []StatusDiff       `json:"status_diffs"`
	StoreOnly      []StoredEvent      `json:"store_only"`
}

// Reconcile compares an import run against the stored agenda. Events are
// keyed by date plus classified type; each stored event can be matched by
// at most one imported record (FIFO within a key), every imported record
// lands in exactly one of missing/matched, and whatever the import run
// never claimed ends up in StoreOnly, in storage order.
func Reconcile(imported []ClassifiedRecord, stored []StoredEvent) Result {
	byKey := make(map[string][]int)
	for i, ev := range stored {
		k := ev.Date + "|" + ev.Type
		byKey[k] = append(byKey[k], i)
	}
	consumed := make([]bool, len(stored))

	res := Result{
		MissingInStore: []ClassifiedRecord{},
		StatusDiffs:    []StatusDiff{},
		StoreOnly:      []StoredEvent{},
	}

	for _, rec := range imported {
		k := rec.Date + "|" + rec.Type
		idxs := byKey[k]
		if len(idxs) == 0 {
			res.MissingInStore = append(res.MissingInStore, rec)
			continue
		}
		i := idxs[0]
		byKey[k] = idxs[1:]
		consumed[i] = true
		if stored[i].IsPassed != rec.IsPassed {
			res.StatusDiffs = append(res.StatusDiffs, StatusDiff{
				Record:         rec,
				StoredID:       stored[i].ID,
				StoredPassed:   stored[i].IsPassed,
				ImportedPassed: rec.IsPassed,
			})
		}
	}

	for i, ev := range stored {
		if !consumed[i] {
			res.StoreOnly = append(res.StoreOnly, ev)
		}
	}
	return res
}
