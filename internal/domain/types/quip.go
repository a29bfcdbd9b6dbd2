package types

// Quip is a rendered template together with its position in the collection.
type Quip struct {
	Index       int         `json:"index" yaml:"index"`
	Fingerprint Fingerprint `json:"fingerprint" yaml:"fingerprint"`
	Text        string      `json:"quip" yaml:"quip"`
}
