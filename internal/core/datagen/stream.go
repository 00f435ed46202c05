package datagen

import (
	"iter"
	"log/slog"

	"synthetic-data-generator/internal/core/random"
	"synthetic-data-generator/internal/core/types"
)

const DefaultProgressEvery = 100_000

type StreamOption func(*RecordStream)

// WithProgressEvery sets how many records pass between progress log lines.
// Zero disables progress logging.
func WithProgressEvery(n int64) StreamOption {
	return func(s *RecordStream) {
		s.progressEvery = n
	}
}

// RecordStream yields the records of one output file. The first record, the
// anchor, is built when the stream is created and carries the generator's
// sentinel uid on its first root manager. The remaining records are only
// generated as the consumer pulls them. A stream can be ranged over once.
type RecordStream struct {
	gen           Generator
	src           *random.Source
	count         int64
	logger        *slog.Logger
	progressEvery int64

	anchor   types.Entity
	consumed bool
}

func NewRecordStream(gen Generator, src *random.Source, count int64, logger *slog.Logger, opts ...StreamOption) *RecordStream {
	if count < 0 {
		panic("datagen: negative record count")
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &RecordStream{
		gen:           gen,
		src:           src,
		count:         count,
		logger:        logger,
		progressEvery: DefaultProgressEvery,
	}
	for _, opt := range opts {
		opt(s)
	}

	if count > 0 {
		s.anchor = gen.Generate(src)
		managers := s.anchor.Managers()
		if len(managers) > 0 {
			managers[0].Uid = gen.AnchorUID()
		}
	}

	return s
}

func (s *RecordStream) Count() int64 {
	return s.count
}

// Anchor returns nil for an empty stream.
func (s *RecordStream) Anchor() types.Entity {
	return s.anchor
}

// Rest yields the count-1 records that follow the anchor.
func (s *RecordStream) Rest() iter.Seq[types.Entity] {
	return func(yield func(types.Entity) bool) {
		if s.consumed {
			panic("datagen: record stream already consumed")
		}
		s.consumed = true

		remaining := s.count - 1
		for i := int64(1); i <= remaining; i++ {
			if s.progressEvery > 0 && i%s.progressEvery == 0 {
				s.logger.Info("generating records", "record", i, "of", remaining)
			}
			if !yield(s.gen.Generate(s.src)) {
				return
			}
		}
	}
}

// All yields the anchor followed by the rest of the records.
func (s *RecordStream) All() iter.Seq[types.Entity] {
	return func(yield func(types.Entity) bool) {
		if s.consumed {
			panic("datagen: record stream already consumed")
		}
		if s.anchor == nil {
			s.consumed = true
			return
		}
		if !yield(s.anchor) {
			s.consumed = true
			return
		}
		for e := range s.Rest() {
			if !yield(e) {
				return
			}
		}
	}
}
