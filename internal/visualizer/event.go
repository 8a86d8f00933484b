package visualizer

type EventKind uint8

const (
	Spawned EventKind = iota
	Committed
	Evicted
)

func (k EventKind) String() string {
	switch k {
	case Spawned:
		return "spawned"
	case Committed:
		return "committed"
	case Evicted:
		return "evicted"
	}
	return "unknown"
}

// Event reports one membership change. Frame is the visualizer's own tick count.
type Event struct {
	Kind      EventKind
	Structure string
	ID        uint64
	Frame     uint64
}

type Observer interface {
	OnEvent(e Event)
}

type ObserverFunc func(Event)

func (f ObserverFunc) OnEvent(e Event) { f(e) }

// Observable is implemented by every visualizer in this package.
type Observable interface {
	AddObserver(o Observer)
}
