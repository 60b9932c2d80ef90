package waitlist

import "github.com/dtroode/studyflow-waitlist/internal/model"

const (
	// DefaultCollection is the collection waitlist entries are appended to.
	DefaultCollection = "waitlist"
	// DefaultSource tags entries created from the prelaunch landing page.
	DefaultSource = "prelaunch-website"
	// StatusPending is the initial admission status of every entry.
	StatusPending = "pending"
)

// Entry is a waitlist record as written to the store. It is never read back.
type Entry struct {
	Email  string
	Source string
	Status string
}

// NewEntry creates a pending entry for email originating from source.
func NewEntry(email, source string) Entry {
	return Entry{
		Email:  email,
		Source: source,
		Status: StatusPending,
	}
}

// Fields renders the entry as document fields. joinedAt is left to the store.
func (e Entry) Fields() model.Fields {
	return model.Fields{
		"email":    e.Email,
		"joinedAt": model.ServerTimestamp,
		"source":   e.Source,
		"status":   e.Status,
	}
}
