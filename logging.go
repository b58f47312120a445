package valutatrade

import (
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// loggingRateStore decorates a RateStore with logging.
type loggingRateStore struct {
	logger log.Logger
	next   RateStore
}

// NewLoggingRateStore returns a RateStore that logs every load of the table
// at debug level.
func NewLoggingRateStore(logger log.Logger, s RateStore) RateStore {
	return &loggingRateStore{logger: logger, next: s}
}

func (s *loggingRateStore) Rates() (t RateTable, err error) {
	defer func(begin time.Time) {
		level.Debug(s.logger).Log(
			"method", "rates",
			"bases", len(t),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Rates()
}

// SaveRates forwards to the decorated store when it is a RateWriter.
func (s *loggingRateStore) SaveRates(t RateTable) (err error) {
	w, ok := s.next.(RateWriter)
	if !ok {
		return errReadOnlyRates
	}
	defer func(begin time.Time) {
		level.Debug(s.logger).Log(
			"method", "save_rates",
			"bases", len(t),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.SaveRates(t)
}
