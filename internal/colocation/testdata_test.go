package colocation

// toyDataset mirrors the small fixture used throughout the reference
// material: two tight (A,B,C) triangles far apart, plus an isolated D that
// participates in neither.
func toyDataset(t testingT) *SpatialDataset {
	t.Helper()

	instances := []Instance{
		{Feature: "A", Idx: 1, X: 0.0, Y: 0.0},
		{Feature: "B", Idx: 1, X: 0.1, Y: 0.0},
		{Feature: "C", Idx: 1, X: 0.05, Y: 0.08},

		{Feature: "A", Idx: 2, X: 1.0, Y: 1.0},
		{Feature: "B", Idx: 2, X: 1.1, Y: 1.0},
		{Feature: "C", Idx: 2, X: 1.05, Y: 1.07},

		{Feature: "D", Idx: 1, X: 0.5, Y: 0.5},
	}

	ds, err := NewSpatialDataset(instances)
	if err != nil {
		t.Fatalf("toyDataset: %v", err)
	}
	return ds
}

// testingT is the subset of *testing.T this file needs, so both tests and
// benchmarks can share the fixture builder.
type testingT interface {
	Helper()
	Fatalf(format string, args ...any)
}

// featureDistinctnessDataset mirrors scenario D of the spec: two A
// instances close enough to each other and to a single B that a naive
// enumerator might chain all three into one candidate clique.
func featureDistinctnessDataset(t testingT) *SpatialDataset {
	t.Helper()

	instances := []Instance{
		{Feature: "A", Idx: 1, X: 0.0, Y: 0.0},
		{Feature: "A", Idx: 2, X: 0.01, Y: 0.0},
		{Feature: "B", Idx: 1, X: 0.02, Y: 0.0},
	}

	ds, err := NewSpatialDataset(instances)
	if err != nil {
		t.Fatalf("featureDistinctnessDataset: %v", err)
	}
	return ds
}
