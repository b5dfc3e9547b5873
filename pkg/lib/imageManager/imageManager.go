package imageManager

import (
	"bytes"
	"errors"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"

	"github.com/chai2010/webp"
	"github.com/nfnt/resize"
)

var (
	ErrInternal         = errors.New("internal server error")
	ErrInvalidTypeImage = errors.New("invalid image type, supported formats are jpg, jpeg, png, webp, or non-animated gif")
	ErrEmptyImage       = errors.New("image file is empty")
)

const (
	ContentType = "image/webp"
	Extension   = ".webp"
	quality     = 85
)

// ParsingImage проверяет тип изображения, уменьшает его до maxSide по длинной
// стороне (если нужно) и перекодирует в webp.
func ParsingImage(file io.Reader, maxSide uint) ([]byte, error) {
	buffer := new(bytes.Buffer)
	if _, err := io.Copy(buffer, file); err != nil {
		return nil, ErrInternal
	}
	if buffer.Len() == 0 {
		return nil, ErrEmptyImage
	}

	var img image.Image
	var err error
	contentType := http.DetectContentType(buffer.Bytes())

	switch contentType {
	case "image/png":
		img, err = png.Decode(buffer)
	case "image/jpeg":
		img, err = jpeg.Decode(buffer)
	case "image/gif":
		isNonAnimated, errGif := isNonAnimatedGIF(bytes.NewReader(buffer.Bytes()))
		if errGif != nil || !isNonAnimated {
			return nil, ErrInvalidTypeImage
		}
		img, err = gif.Decode(buffer)
	case "image/webp":
		img, err = webp.Decode(buffer)
	default:
		return nil, ErrInvalidTypeImage
	}
	if err != nil {
		return nil, ErrInvalidTypeImage
	}

	bounds := img.Bounds()
	width, height := uint(bounds.Dx()), uint(bounds.Dy())
	if maxSide > 0 && (width > maxSide || height > maxSide) {
		// 0 по одной из сторон сохраняет пропорции
		if width >= height {
			img = resize.Resize(maxSide, 0, img, resize.Lanczos3)
		} else {
			img = resize.Resize(0, maxSide, img, resize.Lanczos3)
		}
	}

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Quality: quality}); err != nil {
		return nil, ErrInternal
	}
	return out.Bytes(), nil
}

func isNonAnimatedGIF(reader io.Reader) (bool, error) {
	img, err := gif.DecodeAll(reader)
	if err != nil {
		return false, err
	}
	return len(img.Image) == 1, nil
}
