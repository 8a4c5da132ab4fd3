package handlers

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskmanager/models"
	"taskmanager/store"
)

// In-memory stands-ins for the mongo stores, matching their error contract.

type memUserStore struct {
	mu    sync.Mutex
	users map[string]models.User // keyed by email
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]models.User)}
}

func (s *memUserStore) Create(ctx context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return nil, store.ErrDuplicateEmail
	}

	user.ID = primitive.NewObjectID()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.Email] = *user

	return user, nil
}

func (s *memUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[email]
	if !ok {
		return nil, store.ErrNotFound
	}

	return &user, nil
}

func (s *memUserStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

type memTaskStore struct {
	mu    sync.Mutex
	tasks map[string]models.Task // keyed by hex id
	order []string               // insertion order, mirroring natural store order
}

func newMemTaskStore() *memTaskStore {
	return &memTaskStore{tasks: make(map[string]models.Task)}
}

func (s *memTaskStore) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task.ID = primitive.NewObjectID()
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	id := task.ID.Hex()
	s.tasks[id] = *task
	s.order = append(s.order, id)

	return task, nil
}

func (s *memTaskStore) ListByOwner(ctx context.Context, ownerID string) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tasks []models.Task
	for _, id := range s.order {
		if t, ok := s.tasks[id]; ok && t.UserID == ownerID {
			tasks = append(tasks, t)
		}
	}

	return tasks, nil
}

func (s *memTaskStore) GetByID(ctx context.Context, id, ownerID string) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok || task.UserID != ownerID {
		return nil, store.ErrNotFound
	}

	return &task, nil
}

func (s *memTaskStore) Replace(ctx context.Context, id, ownerID string, task *models.Task) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.tasks[id]
	if !ok || existing.UserID != ownerID {
		return nil, store.ErrNotFound
	}

	existing.Title = task.Title
	existing.Description = task.Description
	existing.Status = task.Status
	existing.DueDate = task.DueDate
	existing.UpdatedAt = time.Now()
	s.tasks[id] = existing

	return &existing, nil
}

func (s *memTaskStore) Delete(ctx context.Context, id, ownerID string) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok || task.UserID != ownerID {
		return nil, store.ErrNotFound
	}

	delete(s.tasks, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return &task, nil
}
