package chrono

// Cloner allows types to provide deep copy logic.
// Implementing this interface is required for use with Processor.
//
// The Clone method must return a deep copy where modifications to the clone
// do not affect the original value. For types containing pointers, slices, or maps,
// ensure these are also copied to achieve true isolation.
//
// For simple value types with no pointers, slices, or maps, Clone can simply return
// the receiver value:
//
//	func (e Event) Clone() Event { return e }
//
// For types with reference fields, ensure deep copying:
//
//	func (s Schedule) Clone() Schedule {
//	    slots := make([]Slot, len(s.Slots))
//	    copy(slots, s.Slots)
//	    return Schedule{Name: s.Name, Slots: slots}
//	}
type Cloner[T any] interface {
	Clone() T
}
