package host

// Op identifies a document operation.
type Op uint8

// Document operation constants. SetAttr/RemoveAttr and the structural ops are
// produced by the declarative diff; SetValue, SetChecked, SetIndeterminate and
// Dispatch are imperative property writes that bypass it.
const (
	OpSetText          Op = 0x01 // Update text content
	OpSetAttr          Op = 0x02 // Set attribute
	OpRemoveAttr       Op = 0x03 // Remove attribute
	OpInsertNode       Op = 0x04 // Insert serialized subtree
	OpRemoveNode       Op = 0x05 // Remove node
	OpMoveNode         Op = 0x06 // Move node under parent
	OpReplaceNode      Op = 0x07 // Replace node with serialized subtree
	OpSetValue         Op = 0x08 // Set input value property
	OpSetChecked       Op = 0x09 // Set input checked property
	OpSetIndeterminate Op = 0x0A // Set input indeterminate property
	OpFocus            Op = 0x0B // Focus element
	OpBlur             Op = 0x0C // Blur element
	OpDispatch         Op = 0x20 // Dispatch a bubbling DOM event on the node
)

// String returns the operation name.
func (op Op) String() string {
	switch op {
	case OpSetText:
		return "SetText"
	case OpSetAttr:
		return "SetAttr"
	case OpRemoveAttr:
		return "RemoveAttr"
	case OpInsertNode:
		return "InsertNode"
	case OpRemoveNode:
		return "RemoveNode"
	case OpMoveNode:
		return "MoveNode"
	case OpReplaceNode:
		return "ReplaceNode"
	case OpSetValue:
		return "SetValue"
	case OpSetChecked:
		return "SetChecked"
	case OpSetIndeterminate:
		return "SetIndeterminate"
	case OpFocus:
		return "Focus"
	case OpBlur:
		return "Blur"
	case OpDispatch:
		return "Dispatch"
	default:
		return "Unknown"
	}
}

// Patch is a single document operation targeting the node identified by Ref.
type Patch struct {
	Op       Op
	Ref      string // Target node reference
	Key      string // Attribute key or event name
	Value    string // Attribute value, text, input value, or event detail
	ParentID string // Parent ref for InsertNode/MoveNode
	Index    int    // Insert/Move position
	HTML     string // Serialized subtree for InsertNode/ReplaceNode
	Bool     bool   // For SetChecked/SetIndeterminate
}

// Frame is a batch of patches with a delivery sequence number.
type Frame struct {
	Seq     uint64
	Patches []Patch
}

// EncodeFrame encodes a patch frame to bytes.
func EncodeFrame(f *Frame) []byte {
	e := NewEncoder()
	e.WriteUvarint(f.Seq)
	e.WriteUvarint(uint64(len(f.Patches)))
	for i := range f.Patches {
		encodePatch(e, &f.Patches[i])
	}
	return e.Bytes()
}

func encodePatch(e *Encoder, p *Patch) {
	e.WriteByte(byte(p.Op))
	e.WriteString(p.Ref)

	switch p.Op {
	case OpSetText, OpSetValue:
		e.WriteString(p.Value)

	case OpSetAttr:
		e.WriteString(p.Key)
		e.WriteString(p.Value)

	case OpRemoveAttr:
		e.WriteString(p.Key)

	case OpInsertNode:
		e.WriteString(p.ParentID)
		e.WriteUvarint(uint64(p.Index))
		e.WriteString(p.HTML)

	case OpRemoveNode, OpFocus, OpBlur:
		// Ref is sufficient

	case OpMoveNode:
		e.WriteString(p.ParentID)
		e.WriteUvarint(uint64(p.Index))

	case OpReplaceNode:
		e.WriteString(p.HTML)

	case OpSetChecked, OpSetIndeterminate:
		e.WriteBool(p.Bool)

	case OpDispatch:
		e.WriteString(p.Key)   // Event name
		e.WriteString(p.Value) // Event detail (JSON)
	}
}

// DecodeFrame decodes a patch frame from bytes.
func DecodeFrame(data []byte) (*Frame, error) {
	d := NewDecoder(data)

	seq, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	count, err := d.ReadCollectionCount()
	if err != nil {
		return nil, err
	}

	patches := make([]Patch, count)
	for i := 0; i < count; i++ {
		if err := decodePatch(d, &patches[i]); err != nil {
			return nil, err
		}
	}
	return &Frame{Seq: seq, Patches: patches}, nil
}

func decodePatch(d *Decoder, p *Patch) error {
	opByte, err := d.ReadByte()
	if err != nil {
		return err
	}
	p.Op = Op(opByte)

	p.Ref, err = d.ReadString()
	if err != nil {
		return err
	}

	switch p.Op {
	case OpSetText, OpSetValue:
		p.Value, err = d.ReadString()

	case OpSetAttr:
		p.Key, err = d.ReadString()
		if err != nil {
			return err
		}
		p.Value, err = d.ReadString()

	case OpRemoveAttr:
		p.Key, err = d.ReadString()

	case OpInsertNode:
		p.ParentID, err = d.ReadString()
		if err != nil {
			return err
		}
		var idx uint64
		idx, err = d.ReadUvarint()
		if err != nil {
			return err
		}
		p.Index = int(idx)
		p.HTML, err = d.ReadString()

	case OpRemoveNode, OpFocus, OpBlur:
		// No additional data

	case OpMoveNode:
		p.ParentID, err = d.ReadString()
		if err != nil {
			return err
		}
		var idx uint64
		idx, err = d.ReadUvarint()
		p.Index = int(idx)

	case OpReplaceNode:
		p.HTML, err = d.ReadString()

	case OpSetChecked, OpSetIndeterminate:
		p.Bool, err = d.ReadBool()

	case OpDispatch:
		p.Key, err = d.ReadString()
		if err != nil {
			return err
		}
		p.Value, err = d.ReadString()

	default:
		// Unknown op: tolerated for forward compatibility
	}

	return err
}

// NewSetAttrPatch creates a SetAttr patch.
func NewSetAttrPatch(ref, key, value string) Patch {
	return Patch{Op: OpSetAttr, Ref: ref, Key: key, Value: value}
}

// NewRemoveAttrPatch creates a RemoveAttr patch.
func NewRemoveAttrPatch(ref, key string) Patch {
	return Patch{Op: OpRemoveAttr, Ref: ref, Key: key}
}

// NewSetTextPatch creates a SetText patch.
func NewSetTextPatch(ref, text string) Patch {
	return Patch{Op: OpSetText, Ref: ref, Value: text}
}

// NewSetCheckedPatch creates a SetChecked property write.
func NewSetCheckedPatch(ref string, checked bool) Patch {
	return Patch{Op: OpSetChecked, Ref: ref, Bool: checked}
}

// NewSetIndeterminatePatch creates a SetIndeterminate property write.
func NewSetIndeterminatePatch(ref string, indeterminate bool) Patch {
	return Patch{Op: OpSetIndeterminate, Ref: ref, Bool: indeterminate}
}

// NewDispatchPatch creates a Dispatch patch for a bubbling client event.
func NewDispatchPatch(ref, eventName, detail string) Patch {
	return Patch{Op: OpDispatch, Ref: ref, Key: eventName, Value: detail}
}
