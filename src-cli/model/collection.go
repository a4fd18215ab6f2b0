package model

// Collection is the ordered sequence of records from one run, in parse
// order. Marshaling it directly gives the flat array form.
type Collection []Event

// Grouped rearranges the collection into a date-keyed mapping. Records
// sharing a date keep their relative order; the map itself carries no
// key order.
func (c Collection) Grouped() map[string][]Event {
	grouped := make(map[string][]Event)
	for _, event := range c {
		grouped[event.Date] = append(grouped[event.Date], event)
	}
	return grouped
}
