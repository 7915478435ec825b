// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Company is the predicate function for company builders.
type Company func(*sql.Selector)

// Counter is the predicate function for counter builders.
type Counter func(*sql.Selector)

// Feedback is the predicate function for feedback builders.
type Feedback func(*sql.Selector)

// File is the predicate function for file builders.
type File func(*sql.Selector)

// Lead is the predicate function for lead builders.
type Lead func(*sql.Selector)

// LeadActivity is the predicate function for leadactivity builders.
type LeadActivity func(*sql.Selector)

// LeadAssignment is the predicate function for leadassignment builders.
type LeadAssignment func(*sql.Selector)

// LeadNote is the predicate function for leadnote builders.
type LeadNote func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Requirement is the predicate function for requirement builders.
type Requirement func(*sql.Selector)

// Submission is the predicate function for submission builders.
type Submission func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// Thread is the predicate function for thread builders.
type Thread func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
