package storage

import (
	"context"
	"io"
	"time"

	"github.com/cenkalti/backoff/v4"

	"collegeblog/internal/logger"
)

// Retrying retries uploads with exponential backoff. A body that cannot be
// rewound is attempted once.
type Retrying struct {
	next     Storage
	attempts int
	backoff  func() backoff.BackOff
}

func NewRetrying(next Storage, attempts int) *Retrying {
	if attempts < 1 {
		attempts = 1
	}
	return &Retrying{
		next:     next,
		attempts: attempts,
		backoff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 200 * time.Millisecond
			b.MaxInterval = 2 * time.Second
			b.MaxElapsedTime = 10 * time.Second
			return b
		},
	}
}

func (r *Retrying) UploadImage(ctx context.Context, fileName, contentType string, file io.Reader, size int64) (string, string, error) {
	seeker, rewindable := file.(io.Seeker)

	var (
		name    string
		url     string
		attempt int
	)

	op := func() error {
		attempt++
		if attempt > 1 {
			if !rewindable {
				return backoff.Permanent(io.ErrUnexpectedEOF)
			}
			if _, err := seeker.Seek(0, io.SeekStart); err != nil {
				return backoff.Permanent(err)
			}
		}

		var err error
		name, url, err = r.next.UploadImage(ctx, fileName, contentType, file, size)
		if err != nil {
			logger.Log.Warnw("image upload attempt failed", "attempt", attempt, "file", fileName, "error", err)
		}
		return err
	}

	b := backoff.WithContext(backoff.WithMaxRetries(r.backoff(), uint64(r.attempts-1)), ctx)
	if !rewindable {
		b = backoff.WithContext(&backoff.StopBackOff{}, ctx)
	}

	if err := backoff.Retry(op, b); err != nil {
		return "", "", err
	}
	return name, url, nil
}
