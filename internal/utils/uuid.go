// Package utils provides general-purpose helper utilities used across
// different parts of the application: UUID generation for transaction and
// trace identifiers, and JSON response writing.
package utils

import "github.com/google/uuid"

type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string. Version 7 ids are time-ordered, so ids
// generated on the same terminal sort roughly by creation time. Falls back
// to a random v4 id if the v7 source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
