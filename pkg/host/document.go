package host

import "sync"

// Document receives the operations a session produces for one client.
// The declarative diff appends structural and attribute patches; imperative
// callers use the capability interfaces (PropertyWriter, EventDispatcher)
// when the document supports them.
type Document interface {
	Append(patches ...Patch)
}

// RecordingDocument is an in-memory Document that queues every operation.
// The session runtime drains it into wire frames; tests inspect it directly.
// It implements both capability interfaces, so mirrors bound to it are fully
// functional.
type RecordingDocument struct {
	mu      sync.Mutex
	patches []Patch
	seq     uint64
}

// NewRecordingDocument creates an empty recording document.
func NewRecordingDocument() *RecordingDocument {
	return &RecordingDocument{}
}

// Append queues patches in order.
func (r *RecordingDocument) Append(patches ...Patch) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patches = append(r.patches, patches...)
}

// SetChecked implements PropertyWriter.
func (r *RecordingDocument) SetChecked(ref string, checked bool) {
	r.Append(NewSetCheckedPatch(ref, checked))
}

// SetIndeterminate implements PropertyWriter.
func (r *RecordingDocument) SetIndeterminate(ref string, indeterminate bool) {
	r.Append(NewSetIndeterminatePatch(ref, indeterminate))
}

// SetValue implements PropertyWriter.
func (r *RecordingDocument) SetValue(ref string, value string) {
	r.Append(Patch{Op: OpSetValue, Ref: ref, Value: value})
}

// DispatchEvent implements EventDispatcher.
func (r *RecordingDocument) DispatchEvent(ref string, name string, detail string) {
	r.Append(NewDispatchPatch(ref, name, detail))
}

// Drain returns all queued patches as a frame and clears the queue.
// Returns nil when nothing is queued.
func (r *RecordingDocument) Drain() *Frame {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.patches) == 0 {
		return nil
	}
	r.seq++
	f := &Frame{Seq: r.seq, Patches: r.patches}
	r.patches = nil
	return f
}

// Patches returns a copy of the queued patches without draining them.
func (r *RecordingDocument) Patches() []Patch {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Patch, len(r.patches))
	copy(out, r.patches)
	return out
}

// PatchesFor returns queued patches targeting ref, preserving order.
func (r *RecordingDocument) PatchesFor(ref string) []Patch {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Patch
	for _, p := range r.patches {
		if p.Ref == ref {
			out = append(out, p)
		}
	}
	return out
}
