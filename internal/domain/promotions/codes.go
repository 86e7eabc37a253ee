package promotions

import (
	"fmt"

	"github.com/speps/go-hashids/v2"
)

const codeMinLength = 8

// Codec turns promotion ids into short public redemption codes and back.
type Codec struct {
	h *hashids.HashID
}

func NewCodec(salt string) (*Codec, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = codeMinLength

	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, fmt.Errorf("init hashids: %w", err)
	}
	return &Codec{h: h}, nil
}

func (c *Codec) Encode(id int64) (string, error) {
	return c.h.EncodeInt64([]int64{id})
}

func (c *Codec) Decode(code string) (int64, error) {
	if code == "" {
		return 0, ErrInvalidCode
	}
	ids, err := c.h.DecodeInt64WithError(code)
	if err != nil || len(ids) != 1 {
		return 0, ErrInvalidCode
	}
	return ids[0], nil
}

// WithCode fills p.Code.
func (c *Codec) WithCode(p *Promotion) error {
	code, err := c.Encode(p.ID)
	if err != nil {
		return err
	}
	p.Code = code
	return nil
}
