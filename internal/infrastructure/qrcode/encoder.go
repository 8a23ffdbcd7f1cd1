package qrcode

import (
	"errors"

	goqrcode "github.com/skip2/go-qrcode"
)

const DefaultSize = 256

var ErrEmptyContent = errors.New("qr code content is empty")

// PNGEncoder renders QR codes with high error correction.
type PNGEncoder struct {
	size int
}

func NewPNGEncoder(size int) *PNGEncoder {
	if size <= 0 {
		size = DefaultSize
	}
	return &PNGEncoder{size: size}
}

func (e *PNGEncoder) EncodePNG(content string) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	return goqrcode.Encode(content, goqrcode.High, e.size)
}
