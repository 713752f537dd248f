package host

// EventType identifies the type of a client event frame.
type EventType uint8

// Client event constants.
const (
	EventClick   EventType = 0x01
	EventChange  EventType = 0x11
	EventInput   EventType = 0x10
	EventSubmit  EventType = 0x12
	EventFocus   EventType = 0x13
	EventBlur    EventType = 0x14
	EventKeyDown EventType = 0x20
	EventKeyUp   EventType = 0x21
)

// String returns the event type name.
func (et EventType) String() string {
	switch et {
	case EventClick:
		return "Click"
	case EventChange:
		return "Change"
	case EventInput:
		return "Input"
	case EventSubmit:
		return "Submit"
	case EventFocus:
		return "Focus"
	case EventBlur:
		return "Blur"
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	default:
		return "Unknown"
	}
}

// KeyboardData carries keyboard event details.
type KeyboardData struct {
	Key  string
	Code string
}

// SubmitData carries form submission fields.
type SubmitData struct {
	Fields map[string]string
}

// Event is a decoded client event frame.
type Event struct {
	Seq     uint64
	Type    EventType
	Ref     string // Target node reference
	Payload any    // Type-specific payload, nil for simple events
}

// EncodeEvent encodes an event to bytes.
func EncodeEvent(ev *Event) []byte {
	e := NewEncoder()
	e.WriteUvarint(ev.Seq)
	e.WriteByte(byte(ev.Type))
	e.WriteString(ev.Ref)

	switch ev.Type {
	case EventClick, EventFocus, EventBlur:
		// No payload

	case EventInput, EventChange:
		s, _ := ev.Payload.(string)
		e.WriteString(s)

	case EventSubmit:
		data, ok := ev.Payload.(*SubmitData)
		if !ok || data == nil {
			e.WriteUvarint(0)
		} else {
			e.WriteUvarint(uint64(len(data.Fields)))
			for k, v := range data.Fields {
				e.WriteString(k)
				e.WriteString(v)
			}
		}

	case EventKeyDown, EventKeyUp:
		data, ok := ev.Payload.(*KeyboardData)
		if !ok || data == nil {
			e.WriteString("")
			e.WriteString("")
		} else {
			e.WriteString(data.Key)
			e.WriteString(data.Code)
		}
	}

	return e.Bytes()
}

// DecodeEvent decodes an event from bytes.
func DecodeEvent(data []byte) (*Event, error) {
	d := NewDecoder(data)

	seq, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	typeByte, err := d.ReadByte()
	if err != nil {
		return nil, err
	}
	ref, err := d.ReadString()
	if err != nil {
		return nil, err
	}

	ev := &Event{Seq: seq, Type: EventType(typeByte), Ref: ref}

	switch ev.Type {
	case EventClick, EventFocus, EventBlur:
		// No payload

	case EventInput, EventChange:
		s, err := d.ReadString()
		if err != nil {
			return nil, err
		}
		ev.Payload = s

	case EventSubmit:
		count, err := d.ReadCollectionCount()
		if err != nil {
			return nil, err
		}
		fields := make(map[string]string, count)
		for i := 0; i < count; i++ {
			k, err := d.ReadString()
			if err != nil {
				return nil, err
			}
			v, err := d.ReadString()
			if err != nil {
				return nil, err
			}
			fields[k] = v
		}
		ev.Payload = &SubmitData{Fields: fields}

	case EventKeyDown, EventKeyUp:
		key, err := d.ReadString()
		if err != nil {
			return nil, err
		}
		code, err := d.ReadString()
		if err != nil {
			return nil, err
		}
		ev.Payload = &KeyboardData{Key: key, Code: code}

	default:
		// Unknown event type: decoded header only, forward compatible
	}

	return ev, nil
}
