// Package ident renders random UUIDs as compact identifiers in any alphabet.
package ident

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/treeforest/basen"
)

// New encodes a fresh random UUID with c.
func New(c *basen.Codec) (string, error) {
	s, _, err := NewUUID(c)
	return s, err
}

// NewUUID is New that also returns the UUID behind the identifier.
func NewUUID(c *basen.Codec) (string, uuid.UUID, error) {
	id := uuid.New()
	s, err := c.Encode(id[:])
	if err != nil {
		return "", uuid.Nil, err
	}
	return s, id, nil
}

// Parse reverses New.
func Parse(c *basen.Codec, s string) (uuid.UUID, error) {
	b, err := c.Decode(s)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.FromBytes(b)
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "identifier %q", s)
	}
	return id, nil
}
