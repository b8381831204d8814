package service

import (
	"context"
	"io"
	"sync"

	"github.com/lib/pq"

	"collegeblog/internal/models"
	"collegeblog/internal/repository"
)

// inlineTx runs fn without a database and records whether it failed.
type inlineTx struct {
	calls      int
	rolledBack bool
}

func (t *inlineTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	if err := fn(ctx); err != nil {
		t.rolledBack = true
		return err
	}
	return nil
}

type recordingMailer struct {
	mu    sync.Mutex
	err   error
	to    []string
	links []string
}

func (m *recordingMailer) SendVerification(_ context.Context, to, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.to = append(m.to, to)
	m.links = append(m.links, link)
	return nil
}

type fakeStorage struct {
	err         error
	contentType string
	body        []byte
}

func (s *fakeStorage) UploadImage(_ context.Context, fileName, contentType string, file io.Reader, _ int64) (string, string, error) {
	if s.err != nil {
		return "", "", s.err
	}
	s.contentType = contentType
	s.body, _ = io.ReadAll(file)
	return "college-blog/2026/10/" + fileName, "https://cdn.example.com/college-blog/2026/10/" + fileName, nil
}

// uniqueViolation mimics what the repository returns for a violated unique constraint.
func uniqueViolation(constraint string) error {
	return &wrappedDriverError{
		sentinel: repository.ErrDuplicate,
		driver:   &pq.Error{Code: "23505", Constraint: constraint},
	}
}

type wrappedDriverError struct {
	sentinel error
	driver   error
}

func (e *wrappedDriverError) Error() string   { return e.sentinel.Error() + ": " + e.driver.Error() }
func (e *wrappedDriverError) Unwrap() []error { return []error{e.sentinel, e.driver} }

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func testUser(id int64) *models.User {
	return &models.User{ID: id, Email: "user@example.com", IsActive: true, IsVerified: true}
}
