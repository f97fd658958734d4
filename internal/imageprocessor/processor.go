package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Processor приводит фотографии и логотипы к разумному размеру
// перед записью в хранилище
type Processor struct {
	maxDim  int // максимальная сторона в пикселях
	quality int // качество JPEG (1-100)
}

func NewProcessor(maxDim, quality int) *Processor {
	if maxDim <= 0 {
		maxDim = 1600
	}
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{maxDim: maxDim, quality: quality}
}

// CanProcess - перекодировать умеем только JPEG и PNG,
// остальные форматы изображений проходят как есть
func (p *Processor) CanProcess(contentType string) bool {
	return contentType == "image/jpeg" || contentType == "image/png"
}

// Normalize декодирует изображение, ужимает до максимальной стороны
// и кодирует обратно в исходный формат
func (p *Processor) Normalize(src io.Reader) (io.Reader, error) {
	img, format, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	resized := p.shrink(img)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, resized, &jpeg.Options{Quality: p.quality})
	case "png":
		err = png.Encode(&buf, resized)
	default:
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return &buf, nil
}

// shrink уменьшает изображение с сохранением пропорций.
// Изображения в пределах лимита не трогаем.
func (p *Processor) shrink(img image.Image) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= p.maxDim && height <= p.maxDim {
		return img
	}

	ratio := float64(width) / float64(height)
	newWidth := p.maxDim
	newHeight := p.maxDim
	if ratio > 1 {
		newHeight = int(float64(p.maxDim) / ratio)
	} else {
		newWidth = int(float64(p.maxDim) * ratio)
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
