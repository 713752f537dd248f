package session

import (
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/aster-ui/aster/pkg/host"
	"github.com/aster-ui/aster/pkg/reactive"
	"github.com/aster-ui/aster/pkg/render"
	"github.com/aster-ui/aster/pkg/vdom"
)

// Mounter is implemented by components that need the host document, such as
// controls carrying a native form bridge.
type Mounter interface {
	Mount(doc any)
}

// Effecter is implemented by components with post-render work. Effects run
// after the declarative diff has been queued, so imperative host operations
// always trail the structural patches of the same cycle.
type Effecter interface {
	AfterRender()
}

// Session is the live server-side counterpart of one connected page.
type Session struct {
	id    string
	log   *slog.Logger
	scope *reactive.Scope
	root  vdom.Component
	doc   *host.RecordingDocument
	rend  *render.Renderer

	mu       sync.Mutex
	tree     *vdom.VNode
	handlers map[string]map[string]any // ref -> event name -> handler
	parents  map[string]string         // ref -> enclosing element ref
	refSeq   uint64

	effects []Effecter
	seen    map[vdom.Component]bool

	listener *reactive.ListenerFunc
	dirty    atomic.Bool
	notify   chan struct{}
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// New creates a session for the given root component.
func New(id string, root vdom.Component, opts ...Option) *Session {
	s := &Session{
		id:       id,
		log:      slog.Default(),
		scope:    reactive.NewScope(nil),
		root:     root,
		doc:      host.NewRecordingDocument(),
		rend:     render.NewRenderer(),
		handlers: make(map[string]map[string]any),
		parents:  make(map[string]string),
		seen:     make(map[vdom.Component]bool),
		notify:   make(chan struct{}, 1),
	}
	s.listener = reactive.NewListenerFunc(s.MarkDirty)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Scope returns the session's root reactive scope.
func (s *Session) Scope() *reactive.Scope {
	return s.scope
}

// Document returns the host document the session appends patches to.
func (s *Session) Document() *host.RecordingDocument {
	return s.doc
}

// Tree returns the most recently committed render tree.
func (s *Session) Tree() *vdom.VNode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree
}

// MarkDirty schedules a re-render on the next Flush and wakes anyone
// waiting on Notify.
func (s *Session) MarkDirty() {
	s.dirty.Store(true)
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// Notify returns a channel that receives after MarkDirty. The connection
// pump drains it by calling Flush, so signal changes made outside an event
// still reach the client.
func (s *Session) Notify() <-chan struct{} {
	return s.notify
}

// Listener adapts the session for signal subscription: any subscribed signal
// change marks the session dirty.
func (s *Session) Listener() reactive.Listener {
	return s.listener
}

// Close disposes the session's reactive scope, running registered cleanups.
func (s *Session) Close() {
	s.scope.Dispose()
}

// Mount performs the initial render. The returned tree is what the first
// page response serializes; subsequent updates arrive as patch frames.
func (s *Session) Mount() *vdom.VNode {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observe(s.root)
	tree := s.expand(s.root.Render())
	s.assignRefs(tree)
	s.index(tree)
	s.tree = tree

	for _, e := range s.effects {
		e.AfterRender()
	}
	return tree
}

// RenderHTML renders the current tree for the initial page.
func (s *Session) RenderHTML() (string, error) {
	s.mu.Lock()
	tree := s.tree
	s.mu.Unlock()
	return s.rend.RenderToString(tree)
}

// HandleEvent applies one decoded client event: handlers run with bubbling
// semantics, the tree re-renders, and the resulting patch frame is returned.
// A nil frame means the event produced no observable change.
func (s *Session) HandleEvent(ev *host.Event) *host.Frame {
	if ev == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	name := domEventName(ev.Type)
	if name == "" {
		s.log.Warn("unknown event type ignored", "session", s.id, "type", uint8(ev.Type))
		return nil
	}

	e := vdom.NewEvent(name, ev.Ref)
	e.Payload = normalizePayload(ev.Payload)
	s.dispatch(e)

	return s.rerender()
}

// Flush re-renders if a subscribed signal marked the session dirty and
// returns the resulting frame, or nil.
func (s *Session) Flush() *host.Frame {
	if !s.dirty.Swap(false) {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rerender()
}

// dispatch walks the handler chain from the target up through enclosing
// elements until propagation stops.
func (s *Session) dispatch(e *vdom.Event) {
	ref := e.Target
	for ref != "" {
		if hs, ok := s.handlers[ref]; ok {
			if h, ok := hs[e.Type]; ok {
				vdom.InvokeHandler(h, e)
			}
		}
		if e.IsPropagationStopped() {
			return
		}
		ref = s.parents[ref]
	}
}

// rerender diffs the new tree against the previous one, queues the patches,
// runs effects, and drains the frame. Caller holds s.mu.
func (s *Session) rerender() *host.Frame {
	next := s.expand(s.root.Render())
	s.assignRefs(next)

	for _, p := range vdom.Diff(s.tree, next) {
		s.doc.Append(s.convert(p))
	}

	s.handlers = make(map[string]map[string]any)
	s.parents = make(map[string]string)
	s.index(next)
	s.tree = next

	for _, e := range s.effects {
		e.AfterRender()
	}
	return s.doc.Drain()
}

// expand resolves component nodes into their rendered output, registering
// mount and effect hooks the first time a component is seen.
func (s *Session) expand(node *vdom.VNode) *vdom.VNode {
	if node == nil {
		return nil
	}
	if node.Kind == vdom.KindComponent {
		if node.Comp == nil {
			return nil
		}
		s.observe(node.Comp)
		return s.expand(node.Comp.Render())
	}
	for i, c := range node.Children {
		node.Children[i] = s.expand(c)
	}
	return node
}

func (s *Session) observe(c vdom.Component) {
	if c == nil || s.seen[c] {
		return
	}
	s.seen[c] = true
	if m, ok := c.(Mounter); ok {
		m.Mount(s.doc)
	}
	if e, ok := c.(Effecter); ok {
		s.effects = append(s.effects, e)
	}
}

// assignRefs gives every interactive element without a reference a session
// scoped one, so events can target it.
func (s *Session) assignRefs(node *vdom.VNode) {
	if node == nil {
		return
	}
	if node.IsInteractive() && node.Ref == "" {
		s.refSeq++
		node.Ref = refName(s.refSeq)
	}
	for _, c := range node.Children {
		s.assignRefs(c)
	}
}

// index records handler and parent chains for event routing.
func (s *Session) index(node *vdom.VNode) {
	s.indexNode(node, "")
}

func (s *Session) indexNode(node *vdom.VNode, parentRef string) {
	if node == nil {
		return
	}

	ref := parentRef
	if node.Kind == vdom.KindElement && node.Ref != "" {
		ref = node.Ref
		if parentRef != "" {
			s.parents[node.Ref] = parentRef
		}
		for key, value := range node.Props {
			if len(key) > 2 && strings.EqualFold(key[:2], "on") {
				if s.handlers[node.Ref] == nil {
					s.handlers[node.Ref] = make(map[string]any)
				}
				s.handlers[node.Ref][strings.ToLower(key[2:])] = value
			}
		}
	}

	for _, c := range node.Children {
		s.indexNode(c, ref)
	}
}

// convert turns a declarative diff patch into its wire form, serializing
// inserted and replacement subtrees to HTML.
func (s *Session) convert(p vdom.Patch) host.Patch {
	switch p.Op {
	case vdom.PatchSetText:
		return host.NewSetTextPatch(p.Ref, p.Value)
	case vdom.PatchSetAttr:
		return host.NewSetAttrPatch(p.Ref, p.Key, p.Value)
	case vdom.PatchRemoveAttr:
		return host.NewRemoveAttrPatch(p.Ref, p.Key)
	case vdom.PatchInsertNode:
		return host.Patch{
			Op:       host.OpInsertNode,
			ParentID: p.ParentID,
			Index:    p.Index,
			HTML:     s.serialize(p.Node),
		}
	case vdom.PatchRemoveNode:
		return host.Patch{Op: host.OpRemoveNode, Ref: p.Ref}
	case vdom.PatchMoveNode:
		return host.Patch{Op: host.OpMoveNode, Ref: p.Ref, ParentID: p.ParentID, Index: p.Index}
	case vdom.PatchReplaceNode:
		return host.Patch{Op: host.OpReplaceNode, Ref: p.Ref, HTML: s.serialize(p.Node)}
	default:
		s.log.Warn("unknown diff op", "session", s.id, "op", uint8(p.Op))
		return host.Patch{}
	}
}

func (s *Session) serialize(node *vdom.VNode) string {
	html, err := s.rend.RenderToString(node)
	if err != nil {
		s.log.Error("subtree serialization failed", "session", s.id, "error", err)
		return ""
	}
	return html
}

// refName builds a session-assigned reference; the prefix keeps it distinct
// from component-assigned refs.
func refName(n uint64) string {
	return "n" + strconv.FormatUint(n, 10)
}

// domEventName maps wire event types to DOM event names.
func domEventName(t host.EventType) string {
	switch t {
	case host.EventClick:
		return "click"
	case host.EventChange:
		return "change"
	case host.EventInput:
		return "input"
	case host.EventSubmit:
		return "submit"
	case host.EventFocus:
		return "focus"
	case host.EventBlur:
		return "blur"
	case host.EventKeyDown:
		return "keydown"
	case host.EventKeyUp:
		return "keyup"
	default:
		return ""
	}
}

// normalizePayload flattens pointer payloads from the wire decoder so
// handlers only deal with values.
func normalizePayload(p any) any {
	switch v := p.(type) {
	case *host.KeyboardData:
		if v == nil {
			return nil
		}
		return *v
	case *host.SubmitData:
		if v == nil {
			return nil
		}
		return *v
	default:
		return p
	}
}
