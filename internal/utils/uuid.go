package utils

import "github.com/google/uuid"

// UUIDGenerator produces trace ids for inbound requests that do not carry
// one. Time-ordered v7 ids are preferred so that ids sort by arrival.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
