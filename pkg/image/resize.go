package image

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// Cover scales and crops img so it fills exactly w x h pixels, keeping
// the aspect ratio and cutting the overflow around the center, the way
// `object-fit: cover` does. Downscaled results get a light sharpen to
// restore edges lost in resampling. A nil or empty image returns nil.
func Cover(img image.Image, w, h int) *image.NRGBA {
	if img == nil || w <= 0 || h <= 0 {
		return nil
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil
	}

	// Crop to the target aspect ratio first so the scale is uniform.
	cropW, cropH := b.Dx(), b.Dy()
	if cropW*h > cropH*w {
		cropW = max(cropH*w/h, 1)
	} else {
		cropH = max(cropW*h/w, 1)
	}
	cropped := imaging.CropAnchor(img, cropW, cropH, imaging.Center)

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), cropped, cropped.Bounds(), xdraw.Src, nil)

	if cropW > w*2 {
		return imaging.Sharpen(dst, 0.5)
	}
	return dst
}

// ImageToNRGBA converts any image.Image to *image.NRGBA for efficient pixel access.
func ImageToNRGBA(src image.Image) *image.NRGBA {
	if nrgba, ok := src.(*image.NRGBA); ok {
		return nrgba
	}
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}
