package utils

import (
	"github.com/hailam/filecraft/internal/ports"
	"github.com/hailam/filecraft/internal/utils"
)

// UtilSizeParser adapts the utils.ParseSize function to the ports.SizeParser interface.
type UtilSizeParser struct{}

// NewUtilSizeParser creates a new size parser adapter.
func NewUtilSizeParser() ports.SizeParser {
	return &UtilSizeParser{}
}

// Parse accepts plain byte counts as well as K/M/G suffixed sizes.
func (p *UtilSizeParser) Parse(spec string) (int64, error) {
	return utils.ParseSize(spec)
}
