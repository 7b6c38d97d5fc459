package domain

// AgendaItem is one row of the agenda.
//
// Order is a projection of the item's position in the sequence it lives in;
// only the store writes it.
type AgendaItem struct {
	ID        string   `json:"id" yaml:"id"`
	Title     string   `json:"agendaItem" yaml:"agendaItem"`
	StartTime string   `json:"startTime" yaml:"startTime"`
	EndTime   string   `json:"endTime" yaml:"endTime"`
	Duration  string   `json:"duration" yaml:"duration"`
	NoteType  string   `json:"noteType" yaml:"noteType"`
	Order     int      `json:"order" yaml:"order"`
	Scheduled bool     `json:"schedule" yaml:"schedule"`
	Postpone  Postpone `json:"postpone" yaml:"postpone"`
}

// CloneItems copies a slice of items. AgendaItem holds only values, so a
// shallow element copy is a deep copy.
func CloneItems(items []AgendaItem) []AgendaItem {
	if items == nil {
		return nil
	}
	out := make([]AgendaItem, len(items))
	copy(out, items)
	return out
}
