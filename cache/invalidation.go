package cache

// Mutation names every write the SDK can perform against the remote API.
type Mutation string

const (
	MutationCreateEvent       Mutation = "event.create"
	MutationUpdateEventStatus Mutation = "event.status"
	MutationCreateBooking     Mutation = "booking.create"
	MutationCancelBooking     Mutation = "booking.cancel"
	MutationMarkAttendance    Mutation = "booking.attendance"
	MutationCreateFeedback    Mutation = "feedback.create"
	MutationUpdateFeedback    Mutation = "feedback.update"
	MutationDeleteFeedback    Mutation = "feedback.delete"
	MutationSubmitContact     Mutation = "contact.submit"
	MutationMarkMessageRead   Mutation = "contact.read"
	MutationCreateUser        Mutation = "user.create"
	MutationUpdateUserRole    Mutation = "user.role"
	MutationDeleteUser        Mutation = "user.delete"
)

// Template is a key pattern; {event} expands to the mutation's event scope,
// and a trailing slash marks a prefix covering a whole parameterized family.
type Template string

const (
	tmplEvents        Template = "events"
	tmplEventDetail   Template = "events/{event}"
	tmplUpcoming      Template = "events/upcoming/"
	tmplMyBookings    Template = "bookings/my"
	tmplEventFeedback Template = "feedback/event/{event}"
	tmplMyFeedback    Template = "feedback/my"
	tmplContact       Template = "contactmessages"
	tmplUsers         Template = "users"
)

// Rules is the single declarative table of which cached reads each mutation
// stales. Both missing and extra entries are bugs: a missing one leaves the
// UI stale, an extra one causes redundant refetches.
var Rules = map[Mutation][]Template{
	MutationCreateEvent:       {tmplEvents, tmplUpcoming},
	MutationUpdateEventStatus: {tmplEvents, tmplUpcoming, tmplEventDetail},
	MutationCreateBooking:     {tmplEvents, tmplEventDetail, tmplMyBookings},
	MutationCancelBooking:     {tmplMyBookings, tmplEventDetail},
	MutationMarkAttendance:    {tmplMyBookings, tmplEventDetail},
	MutationCreateFeedback:    {tmplEventFeedback, tmplMyFeedback},
	MutationUpdateFeedback:    {tmplEventFeedback, tmplMyFeedback},
	MutationDeleteFeedback:    {tmplEventFeedback, tmplMyFeedback},
	MutationSubmitContact:     {tmplContact},
	MutationMarkMessageRead:   {tmplContact},
	MutationCreateUser:        {tmplUsers},
	MutationUpdateUserRole:    {tmplUsers},
	MutationDeleteUser:        {tmplUsers},
}

// Keys expands the rules for m into concrete cache keys. Event-scoped
// templates are skipped when the mutation carries no event id; prefix
// templates belong to Prefixes, not here.
func Keys(m Mutation, eventID string) []Key {
	templates := Rules[m]
	keys := make([]Key, 0, len(templates))

	for _, t := range templates {
		switch t {
		case tmplEventDetail:
			if eventID == "" {
				continue
			}
			keys = append(keys, EventKey(eventID))
		case tmplEventFeedback:
			if eventID == "" {
				continue
			}
			keys = append(keys, EventFeedbackKey(eventID))
		case tmplUpcoming:
			continue
		default:
			keys = append(keys, Key(t))
		}
	}

	return keys
}

// Prefixes returns the prefix-scoped rules for m, covering parameterized
// key families with one entry per parameter value.
func Prefixes(m Mutation) []Key {
	var prefixes []Key
	for _, t := range Rules[m] {
		if t == tmplUpcoming {
			prefixes = append(prefixes, Key(t))
		}
	}

	return prefixes
}

// Apply invalidates everything the rules table declares for m.
func (s *Store) Apply(m Mutation, eventID string) {
	s.Invalidate(Keys(m, eventID)...)
	for _, prefix := range Prefixes(m) {
		s.InvalidatePrefix(prefix)
	}
}
