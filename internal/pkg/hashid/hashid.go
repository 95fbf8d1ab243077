// Package hashid encodes internal numeric ids into the opaque tokens used in
// public URLs. The encoding is reversible and deliberately not cryptographic;
// it only keeps sequential database ids out of casual view.
package hashid

import (
	"fmt"

	hashids "github.com/speps/go-hashids/v2"
	"github.com/eventschedule/eventschedule-backend/internal/model"
)

type Codec struct {
	h *hashids.HashID
}

func NewCodec(salt string, minLength int) (*Codec, error) {
	data := hashids.NewData()
	data.Salt = salt
	data.MinLength = minLength

	h, err := hashids.NewWithData(data)
	if err != nil {
		return nil, fmt.Errorf("init hashids: %w", err)
	}

	return &Codec{h: h}, nil
}

func (c *Codec) Encode(id int64) (string, error) {
	if id <= 0 {
		return "", fmt.Errorf("encode id %d: %w", id, model.ErrInvalidIdentifier)
	}

	s, err := c.h.EncodeInt64([]int64{id})
	if err != nil {
		return "", fmt.Errorf("encode id %d: %w", id, err)
	}

	return s, nil
}

func (c *Codec) Decode(s string) (int64, error) {
	ids, err := c.h.DecodeInt64WithError(s)
	if err != nil {
		return 0, fmt.Errorf("decode %q: %w", s, model.ErrInvalidIdentifier)
	}
	if len(ids) != 1 || ids[0] <= 0 {
		return 0, fmt.Errorf("decode %q: %w", s, model.ErrInvalidIdentifier)
	}

	return ids[0], nil
}
