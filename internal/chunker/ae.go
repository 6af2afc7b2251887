// internal/chunker/ae.go
package chunker

import "github.com/creativeyann17/go-quickcdc/pkg/quickcdc"

type aeSplitter struct {
	targetSize int
	maxSize    int
	salt       uint64
}

func newAESplitter(p Params) (splitter, error) {
	if _, err := quickcdc.DeriveParams(p.TargetSize, p.MaxSize); err != nil {
		return nil, err
	}
	return &aeSplitter{
		targetSize: p.TargetSize,
		maxSize:    p.MaxSize,
		salt:       p.Salt,
	}, nil
}

func (s *aeSplitter) split(data []byte, emit func(n int) error) error {
	// One session per buffer; sessions are cheap and never shared
	session, err := quickcdc.New(data, s.targetSize, s.maxSize, s.salt)
	if err != nil {
		return err
	}

	for chunk := range session.All() {
		if err := emit(len(chunk)); err != nil {
			return err
		}
	}
	return nil
}
