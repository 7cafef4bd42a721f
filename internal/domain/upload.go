package domain

import "math"

// ImageUpload describes a stored upload.
type ImageUpload struct {
	Filename string  `json:"filename"`
	Format   string  `json:"format"`
	SizeKB   float64 `json:"size_kb"`
}

// SizeKB converts a byte count to kibibytes rounded to two decimal places.
func SizeKB(n int64) float64 {
	return math.Round(float64(n)/1024*100) / 100
}
