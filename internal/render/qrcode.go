package render

import (
	"encoding/base64"
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"

	"github.com/dmitrymomot/resumekit/internal/resume"
)

const defaultQRSize = 256

// qrPNG encodes content as a PNG QR code with medium error correction.
func qrPNG(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyQRContent
	}
	if size <= 0 {
		size = defaultQRSize
	}
	png, err := skipqrcode.Encode(content, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrQRCodeFailed, err)
	}
	return png, nil
}

func pngDataURI(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}

// profileQRCode returns a QR code PNG for the document's first profile link.
// It returns nil when QR codes are disabled or the document has no link.
func profileQRCode(o options, doc resume.Document) ([]byte, string, error) {
	if !o.qrCode {
		return nil, "", nil
	}
	link, ok := profileLink(doc)
	if !ok {
		return nil, "", nil
	}
	png, err := qrPNG(link, o.qrSize)
	if err != nil {
		return nil, "", err
	}
	return png, link, nil
}
