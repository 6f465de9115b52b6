package scaler

import (
	"sort"
	"strconv"
	"sync"
)

// record is the registry-internal view of a container: the exported
// ContainerRecord plus sampling state for the two-sample CPU delta.
type record struct {
	ContainerRecord

	prevCPUTotal   uint64
	prevSystemCPU  uint64
	hasPrevSample  bool
	sampleFailures int
}

// registry holds every tracked container keyed by runtime ID. The tick
// goroutine is the only writer; Snapshot readers take the read lock.
type registry struct {
	mu   sync.RWMutex
	byID map[string]*record
}

func newRegistry() *registry {
	return &registry{
		byID: make(map[string]*record),
	}
}

// sync reconciles the registry against a fresh list query. New
// containers get a record (lineage decided here, once, from labels);
// containers missing from the listing are dropped. Returns the dropped
// records so the caller can clean up per-parent decision state.
func (g *registry) sync(listed []RuntimeContainer) (added, removed []ContainerRecord) {
	g.mu.Lock()
	defer g.mu.Unlock()

	seen := make(map[string]struct{}, len(listed))

	for i := range listed {
		rc := listed[i]
		seen[rc.ID] = struct{}{}

		if rec, ok := g.byID[rc.ID]; ok {
			rec.Name = rc.Name
			rec.Image = rc.Image
			rec.Status = statusFromState(rc.State)

			continue
		}

		rec := &record{
			ContainerRecord: ContainerRecord{
				ID:      rc.ID,
				Name:    rc.Name,
				Image:   rc.Image,
				Status:  statusFromState(rc.State),
				Lineage: lineageFromLabels(rc.Labels),
			},
		}
		g.byID[rc.ID] = rec
		added = append(added, rec.ContainerRecord)
	}

	for id, rec := range g.byID {
		if _, ok := seen[id]; ok {
			continue
		}

		rec.Status = StatusRemoved
		removed = append(removed, rec.ContainerRecord)
		delete(g.byID, id)
	}

	sortByName(added)
	sortByName(removed)

	return added, removed
}

// snapshot returns a deep copy of all records, stable-sorted by name.
func (g *registry) snapshot() []ContainerRecord {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]ContainerRecord, 0, len(g.byID))
	for _, rec := range g.byID {
		out = append(out, copyRecord(rec.ContainerRecord))
	}

	sortByName(out)

	return out
}

// primaries returns all non-clone records sorted by name.
func (g *registry) primaries() []ContainerRecord {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []ContainerRecord

	for _, rec := range g.byID {
		if rec.IsClone() {
			continue
		}

		out = append(out, copyRecord(rec.ContainerRecord))
	}

	sortByName(out)

	return out
}

// childrenOf returns the clones of the named parent, sorted by clone
// index ascending (the last entry is the newest, removed first).
func (g *registry) childrenOf(parent string) []ContainerRecord {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.childrenOfLocked(parent)
}

func (g *registry) childrenOfLocked(parent string) []ContainerRecord {
	var out []ContainerRecord

	for _, rec := range g.byID {
		if rec.Lineage == nil || rec.Lineage.Parent != parent {
			continue
		}

		out = append(out, copyRecord(rec.ContainerRecord))
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Lineage.Index < out[j].Lineage.Index
	})

	return out
}

// orphanClones returns clones whose parent name no longer resolves to
// any tracked container, sorted by name. They are eligible for cleanup.
func (g *registry) orphanClones() []ContainerRecord {
	g.mu.RLock()
	defer g.mu.RUnlock()

	names := make(map[string]struct{}, len(g.byID))
	for _, rec := range g.byID {
		names[rec.Name] = struct{}{}
	}

	var out []ContainerRecord

	for _, rec := range g.byID {
		if rec.Lineage == nil {
			continue
		}

		if _, ok := names[rec.Lineage.Parent]; !ok {
			out = append(out, copyRecord(rec.ContainerRecord))
		}
	}

	sortByName(out)

	return out
}

// resolve maps a command target (runtime ID or display name) to
// records; TargetAll resolves to every primary.
func (g *registry) resolve(target string) []ContainerRecord {
	if target == TargetAll {
		return g.primaries()
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if rec, ok := g.byID[target]; ok {
		return []ContainerRecord{copyRecord(rec.ContainerRecord)}
	}

	for _, rec := range g.byID {
		if rec.Name == target {
			return []ContainerRecord{copyRecord(rec.ContainerRecord)}
		}
	}

	return nil
}

// insertClone registers a freshly created clone as running.
func (g *registry) insertClone(id, name, image, parent string, index int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.byID[id] = &record{
		ContainerRecord: ContainerRecord{
			ID:     id,
			Name:   name,
			Image:  image,
			Status: StatusRunning,
			Lineage: &Lineage{
				Parent: parent,
				Index:  index,
			},
		},
	}
}

func (g *registry) remove(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.byID, id)
}

// applySample stores a usage sample, computing CPU percent from the
// previous tick's counters. The first observation reports CPU 0.
func (g *registry) applySample(id string, smp UsageSample) {
	g.mu.Lock()
	defer g.mu.Unlock()

	rec, ok := g.byID[id]
	if !ok {
		return
	}

	if rec.hasPrevSample {
		rec.CPUPercent = cpuPercent(rec.prevCPUTotal, rec.prevSystemCPU, smp)
	} else {
		rec.CPUPercent = 0
	}

	rec.MemPercent = memPercent(smp)
	rec.prevCPUTotal = smp.CPUTotal
	rec.prevSystemCPU = smp.SystemCPU
	rec.hasPrevSample = true
	rec.sampleFailures = 0
}

// recordSampleFailure keeps the previous values (stale-but-present)
// and reports true once the container hit the unreachable limit, at
// which point the record is dropped.
func (g *registry) recordSampleFailure(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	rec, ok := g.byID[id]
	if !ok {
		return false
	}

	rec.sampleFailures++
	if rec.sampleFailures < maxSampleFailures {
		return false
	}

	delete(g.byID, id)

	return true
}

func (g *registry) ids() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.byID))
	for id := range g.byID {
		out = append(out, id)
	}

	sort.Strings(out)

	return out
}

func copyRecord(r ContainerRecord) ContainerRecord {
	if r.Lineage != nil {
		lin := *r.Lineage
		r.Lineage = &lin
	}

	return r
}

func sortByName(records []ContainerRecord) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})
}

func statusFromState(state string) Status {
	switch state {
	case "running":
		return StatusRunning
	case "paused":
		return StatusPaused
	default:
		return StatusStopped
	}
}

// lineageFromLabels decides the record variant. A malformed index
// label still yields a clone (index 0) so it stays removable.
func lineageFromLabels(labels map[string]string) *Lineage {
	if labels[LabelIsClone] != LabelValueTrue {
		return nil
	}

	parent, ok := labels[LabelParent]
	if !ok || parent == "" {
		return nil
	}

	index, err := strconv.Atoi(labels[LabelCloneIndex])
	if err != nil {
		index = 0
	}

	return &Lineage{
		Parent: parent,
		Index:  index,
	}
}
