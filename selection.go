package gazetteer

// Selection is the current value of an in-progress address form. Fields are
// always consistent: District is reachable from State, City from
// (State, District), and Pincode is set only via SetFromPincode.
type Selection struct {
	State    string
	District string
	City     string
	Pincode  string
	Locality string
}

// Level is a Selection's consistency level.
type Level int

const (
	LevelNone     Level = iota // nothing selected
	LevelState                 // state only
	LevelDistrict              // state + district
	LevelCity                  // state + district + city
	LevelPincode               // fully resolved via a pincode record
)

func (l Level) String() string {
	switch l {
	case LevelState:
		return "state"
	case LevelDistrict:
		return "district"
	case LevelCity:
		return "city"
	case LevelPincode:
		return "pincode"
	default:
		return "none"
	}
}

// Coordinator reconciles forward (dropdown cascade) and reverse (pincode
// lookup) resolution against one in-progress address selection. Every
// mutation either moves the selection downward — changing an upstream field
// clears everything below it — or jumps straight to fully resolved via
// SetFromPincode; no call sequence can expose an inconsistent combination.
//
// A Coordinator is owned by the single form bound to it. It is not safe for
// concurrent mutation.
type Coordinator struct {
	ix     *Index
	sel    Selection
	subs   []subscriber
	nextID int
}

type subscriber struct {
	id int
	fn func(Selection)
}

// NewCoordinator creates a Coordinator over ix with an empty selection.
func NewCoordinator(ix *Index) *Coordinator {
	return &Coordinator{ix: ix}
}

// Selection returns the current selection.
func (co *Coordinator) Selection() Selection {
	return co.sel
}

// Level returns the current consistency level.
func (co *Coordinator) Level() Level {
	switch {
	case co.sel.Pincode != "":
		return LevelPincode
	case co.sel.City != "":
		return LevelCity
	case co.sel.District != "":
		return LevelDistrict
	case co.sel.State != "":
		return LevelState
	default:
		return LevelNone
	}
}

// SetState sets the state and clears district, city, and pincode, which are
// no longer guaranteed reachable. An empty state resets the whole selection.
// The stored value is the canonical casing when the state is known to the
// index; otherwise the input is kept as given.
func (co *Coordinator) SetState(state string) {
	if state != "" {
		if name, ok := matchName(co.ix.States(), state); ok {
			state = name
		}
	}
	co.sel = Selection{State: state}
	co.notify()
}

// SetDistrict sets the district. Valid only when a state is set and district
// is one of Districts(state); otherwise fails with *InvalidSelectionError and
// leaves the selection untouched. Clears city and pincode.
func (co *Coordinator) SetDistrict(district string) error {
	name, ok := co.ix.hasDistrict(co.sel.State, district)
	if !ok {
		return &InvalidSelectionError{Field: "district", Value: district}
	}
	co.sel = Selection{State: co.sel.State, District: name}
	co.notify()
	return nil
}

// SetCity sets the city. Valid only when state and district are set and city
// is one of Cities(state, district). Clears pincode.
func (co *Coordinator) SetCity(city string) error {
	name, ok := co.ix.hasCity(co.sel.State, co.sel.District, city)
	if !ok {
		return &InvalidSelectionError{Field: "city", Value: city}
	}
	co.sel = Selection{State: co.sel.State, District: co.sel.District, City: name}
	co.notify()
	return nil
}

// SetFromPincode is the reverse path: given a record chosen from Search, it
// fills state, district, city, and pincode atomically. The record came out of
// the index, so it is consistent by construction and skips the cascading
// validation — this is the only way all four fields change in one step.
func (co *Coordinator) SetFromPincode(r Record) {
	co.sel = Selection{
		State:    r.State,
		District: r.District,
		City:     r.City,
		Pincode:  r.Pincode,
		Locality: r.Locality,
	}
	co.notify()
}

// Reset clears the whole selection.
func (co *Coordinator) Reset() {
	co.sel = Selection{}
	co.notify()
}

// Subscribe registers fn to run after every selection change, including
// resets, so bound form fields can repopulate. The returned cancel removes
// the subscription; calling it more than once is harmless.
func (co *Coordinator) Subscribe(fn func(Selection)) (cancel func()) {
	co.nextID++
	id := co.nextID
	co.subs = append(co.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range co.subs {
			if s.id == id {
				// Removal keeps order so remaining subscribers still fire in
				// registration order.
				co.subs = append(co.subs[:i], co.subs[i+1:]...)
				return
			}
		}
	}
}

func (co *Coordinator) notify() {
	for _, s := range co.subs {
		s.fn(co.sel)
	}
}
