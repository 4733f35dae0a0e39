package models

import (
	"fmt"
	"time"
)

// ZoneID identifies the DNS zone of a domain at the provider.
type ZoneID int

// ZoneVersion identifies a snapshot of the records of a zone.
type ZoneVersion int

// ActiveVersion is the version number used to designate
// the currently active version of a zone when listing records.
const ActiveVersion ZoneVersion = 0

// RecordFilter contains the criteria selecting the records to
// read and update within a zone version. Empty fields are ignored.
type RecordFilter struct {
	Name string
	Type string
}

func (f RecordFilter) String() string {
	return "[name: " + f.Name + " | type: " + f.Type + "]"
}

// Record is a record of a zone version, as returned by the provider.
type Record struct {
	ID    int
	Name  string
	Type  string
	Value string
	TTL   int
}

func (r Record) String() string {
	return fmt.Sprintf("%d %s %s %s %ds", r.ID, r.Name, r.Type, r.Value, r.TTL)
}

// RecordFields are the fields written to a record when updating it.
type RecordFields struct {
	Name  string
	Type  string
	Value string
	// TTL is the time to live in seconds.
	TTL int
}

// MakeRecordFields builds the fields to write to an existing record.
// The filter name and type are used as defaults, and the record
// name and type take precedence over them when set.
func MakeRecordFields(filter RecordFilter, record Record,
	value string, ttl time.Duration) RecordFields {
	fields := RecordFields{
		Name:  filter.Name,
		Type:  filter.Type,
		Value: value,
		TTL:   int(ttl / time.Second),
	}
	if record.Name != "" {
		fields.Name = record.Name
	}
	if record.Type != "" {
		fields.Type = record.Type
	}
	return fields
}
