// Package entity defines the core domain entities for the application.
// It contains the fundamental business objects, Contact and NewsItem, along
// with their domain-specific errors.
package entity

// Contact represents a contact-form submission.
// All fields are free text and optional at the storage layer; the store
// assigns the identifier on creation and it is immutable afterwards.
type Contact struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Country   string
	Problems  string
	About     string
}
