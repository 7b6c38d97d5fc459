package domain

import "time"

// Agenda describes one meeting instance. It is read-only once loaded.
type Agenda struct {
	Name               string `json:"name" yaml:"name"`
	StartTime          string `json:"startTime" yaml:"startTime"`
	EndTime            string `json:"endTime" yaml:"endTime"`
	Lunch              bool   `json:"lunch" yaml:"lunch"`
	LunchStartTime     string `json:"lunchStartTime,omitempty" yaml:"lunchStartTime,omitempty"`
	LunchEndTime       string `json:"lunchEndTime,omitempty" yaml:"lunchEndTime,omitempty"`
	MeetingEnvironment string `json:"meetingEnvironment" yaml:"meetingEnvironment"`
}

// HasLunch reports whether a lunch window is configured with both bounds.
func (a *Agenda) HasLunch() bool {
	return a != nil && a.Lunch && a.LunchStartTime != "" && a.LunchEndTime != ""
}

// Clone returns a copy of a, or nil when a is nil.
func (a *Agenda) Clone() *Agenda {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

// Dataset is what every data source hands to the store: optional agenda
// metadata plus the item list in source order.
type Dataset struct {
	Agenda *Agenda      `json:"agenda,omitempty" yaml:"agenda,omitempty"`
	Items  []AgendaItem `json:"items" yaml:"items"`
}

// Empty reports whether the dataset carries no items.
func (d *Dataset) Empty() bool {
	return d == nil || len(d.Items) == 0
}

// ImportedDataset is a dataset mirrored into the local database.
type ImportedDataset struct {
	ID         string
	Source     string
	ImportedAt time.Time
	Dataset    Dataset
}
