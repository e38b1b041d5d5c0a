package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"eventsManager/internal/config"
	"eventsManager/internal/models"
	"eventsManager/internal/storage"

	"github.com/google/uuid"
)

// Storage keeps events and comments in process memory. Every operation waits
// for the configured latency first and gives up early if ctx is cancelled,
// leaving the data untouched.
type Storage struct {
	mu       sync.RWMutex
	events   []models.Event
	comments []models.Comment

	latency time.Duration
	now     func() time.Time
	newID   func() (string, error)
}

func New(cfg *config.Storage) *Storage {
	s := &Storage{
		latency: cfg.Latency,
		now:     time.Now,
		newID:   newUUID,
	}

	if cfg.Seed {
		s.events = slices.Clone(seedEvents)
		s.comments = slices.Clone(seedComments)
	}

	return s
}

// newUUID returns a version 7 UUID: a millisecond timestamp followed by
// random bits.
func newUUID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

func (s *Storage) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Storage) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	const op = "storage.memory.GetAllEvents"

	if err := s.wait(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.events), nil
}

func (s *Storage) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	const op = "storage.memory.GetEvent"

	if err := s.wait(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.eventIndex(id)
	if i == -1 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
	}

	event := s.events[i]

	return &event, nil
}

func (s *Storage) GetEventWithComments(ctx context.Context, id string) (*models.Event, []models.Comment, error) {
	const op = "storage.memory.GetEventWithComments"

	if err := s.wait(ctx); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.eventIndex(id)
	if i == -1 {
		return nil, nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
	}

	event := s.events[i]

	return &event, s.commentsOf(id), nil
}

func (s *Storage) CreateEvent(ctx context.Context, in models.EventInput) (*models.Event, error) {
	const op = "storage.memory.CreateEvent"

	if err := s.wait(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.uniqueID()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	event := in.WithID(id)
	s.events = append(s.events, event)

	return &event, nil
}

// UpdateEvent replaces the event in place so its position in listings is kept.
func (s *Storage) UpdateEvent(ctx context.Context, id string, in models.EventInput) (*models.Event, error) {
	const op = "storage.memory.UpdateEvent"

	if err := s.wait(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.eventIndex(id)
	if i == -1 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
	}

	event := in.WithID(id)
	s.events[i] = event

	return &event, nil
}

// DeleteEvent reports whether an event was removed. Comments of the event
// are kept.
func (s *Storage) DeleteEvent(ctx context.Context, id string) (bool, error) {
	const op = "storage.memory.DeleteEvent"

	if err := s.wait(ctx); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.eventIndex(id)
	if i == -1 {
		return false, nil
	}

	s.events = slices.Delete(s.events, i, i+1)

	return true, nil
}

func (s *Storage) GetCategories() []models.Category {
	return models.Categories()
}

func (s *Storage) GetAllComments(ctx context.Context) ([]models.Comment, error) {
	const op = "storage.memory.GetAllComments"

	if err := s.wait(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.comments), nil
}

func (s *Storage) GetEventComments(ctx context.Context, eventID string) ([]models.Comment, error) {
	const op = "storage.memory.GetEventComments"

	if err := s.wait(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.commentsOf(eventID), nil
}

// CreateComment appends a pending comment dated today (UTC). The event must exist
// at the time of the call.
func (s *Storage) CreateComment(ctx context.Context, in models.CommentInput) (*models.Comment, error) {
	const op = "storage.memory.CreateComment"

	if err := s.wait(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.eventIndex(in.EventID) == -1 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	comment := models.Comment{
		ID:      "c" + id,
		EventID: in.EventID,
		Author:  in.Author,
		Content: in.Content,
		Date:    s.now().UTC().Format(models.DateLayout),
	}
	s.comments = append(s.comments, comment)

	return &comment, nil
}

func (s *Storage) ApproveComment(ctx context.Context, id string) (*models.Comment, error) {
	const op = "storage.memory.ApproveComment"

	if err := s.wait(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.commentIndex(id)
	if i == -1 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrCommentNotFound)
	}

	s.comments[i].Approved = true
	comment := s.comments[i]

	return &comment, nil
}

func (s *Storage) DeleteComment(ctx context.Context, id string) (bool, error) {
	const op = "storage.memory.DeleteComment"

	if err := s.wait(ctx); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.commentIndex(id)
	if i == -1 {
		return false, nil
	}

	s.comments = slices.Delete(s.comments, i, i+1)

	return true, nil
}

// DeleteComments removes every listed comment and returns how many were
// found. Unknown ids are ignored.
func (s *Storage) DeleteComments(ctx context.Context, ids []string) (int, error) {
	const op = "storage.memory.DeleteComments"

	if err := s.wait(ctx); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.comments)
	s.comments = slices.DeleteFunc(s.comments, func(c models.Comment) bool {
		return slices.Contains(ids, c.ID)
	})

	return before - len(s.comments), nil
}

func (s *Storage) eventIndex(id string) int {
	return slices.IndexFunc(s.events, func(e models.Event) bool {
		return e.ID == id
	})
}

func (s *Storage) commentIndex(id string) int {
	return slices.IndexFunc(s.comments, func(c models.Comment) bool {
		return c.ID == id
	})
}

func (s *Storage) commentsOf(eventID string) []models.Comment {
	comments := make([]models.Comment, 0)

	for _, c := range s.comments {
		if c.EventID == eventID {
			comments = append(comments, c)
		}
	}

	return comments
}

// uniqueID draws ids until one is unused. Generated ids practically never
// collide, the loop keeps them unique anyway. Caller holds the write lock.
func (s *Storage) uniqueID() (string, error) {
	for {
		id, err := s.newID()
		if err != nil {
			return "", err
		}

		if s.eventIndex(id) == -1 {
			return id, nil
		}
	}
}
