package ports

// SizeParser parses size specs, plain ("204800") or human-readable ("10MB"), into bytes.
type SizeParser interface {
	Parse(spec string) (int64, error)
}
