// Package chunk partitions matched identifiers into fixed-size batches
// and persists them to disk.
package chunk

import (
	"gitlab.com/tozd/go/errors"

	"idchunk/pkg/mapper"
)

// 🚫 ErrInvalidSize is returned when the chunk size is not positive.
var ErrInvalidSize = errors.New("chunk size must be a positive integer")

// 📦 Chunk is a contiguous fixed-size group of matched identifiers,
// tagged with a 1-based sequence number. The last chunk may be shorter.
type Chunk struct {
	Seq   int              // 1-based sequence number
	Items []mapper.Mapping // Identifiers with their resolved folder paths
}

// 🔍 IDs returns the chunk's identifiers in order.
func (c Chunk) IDs() []string {
	out := make([]string, len(c.Items))
	for i, m := range c.Items {
		out[i] = m.ID
	}
	return out
}

// ✂️ Split partitions items into chunks of up to size elements. The
// concatenation of all chunks reproduces items exactly; the chunk count
// is ceil(len(items)/size).
func Split(items []mapper.Mapping, size int) ([]Chunk, error) {
	if size <= 0 {
		return nil, errors.Errorf("%w: %d", ErrInvalidSize, size)
	}

	chunks := make([]Chunk, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, Chunk{
			Seq:   len(chunks) + 1,
			Items: items[start:end],
		})
	}
	return chunks, nil
}
