package handler

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"taskmanage/internal/model"
	"taskmanage/internal/repository"
)

// In-memory stores mirroring the atomic semantics of the mongo repositories.
// Merge-style operations apply only non-empty fields, matching the $set of a
// struct whose optional fields carry omitempty: absent fields never erase
// stored values.

type fakeUserStore struct {
	users map[string]model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]model.User{}}
}

func (s *fakeUserStore) CreateIfAbsent(_ context.Context, email string, u model.User) (model.User, error) {
	if existing, ok := s.users[email]; ok {
		return existing, nil
	}
	u.ID = bson.NewObjectID()
	u.Email = email
	s.users[email] = u
	return u, nil
}

func (s *fakeUserStore) Merge(_ context.Context, email string, u model.User) (model.User, error) {
	existing, ok := s.users[email]
	if !ok {
		existing = model.User{ID: bson.NewObjectID(), Email: email}
	}
	if u.Name != "" {
		existing.Name = u.Name
	}
	if u.Image != "" {
		existing.Image = u.Image
	}
	if u.Role != "" {
		existing.Role = u.Role
	}
	if u.Status != "" {
		existing.Status = u.Status
	}
	s.users[email] = existing
	return existing, nil
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (model.User, error) {
	u, ok := s.users[email]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

type fakeTaskStore struct {
	tasks map[string]model.Task
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: map[string]model.Task{}}
}

func (s *fakeTaskStore) Insert(_ context.Context, t model.Task) (string, error) {
	t.ID = bson.NewObjectID()
	id := t.ID.Hex()
	s.tasks[id] = t
	return id, nil
}

func (s *fakeTaskStore) UpdateFields(_ context.Context, id string, t model.Task) (int64, int64, error) {
	if err := checkID(id); err != nil {
		return 0, 0, err
	}
	existing, ok := s.tasks[id]
	if !ok {
		return 0, 0, nil
	}
	existing.Title = t.Title
	existing.Description = t.Description
	existing.Deadline = t.Deadline
	existing.Priority = t.Priority
	s.tasks[id] = existing
	return 1, 1, nil
}

func (s *fakeTaskStore) SetStatus(_ context.Context, id, status string) (int64, int64, error) {
	if err := checkID(id); err != nil {
		return 0, 0, err
	}
	existing, ok := s.tasks[id]
	if !ok {
		return 0, 0, nil
	}
	existing.Status = status
	s.tasks[id] = existing
	return 1, 1, nil
}

func (s *fakeTaskStore) Delete(_ context.Context, id string) (int64, error) {
	if err := checkID(id); err != nil {
		return 0, err
	}
	if _, ok := s.tasks[id]; !ok {
		return 0, nil
	}
	delete(s.tasks, id)
	return 1, nil
}

func (s *fakeTaskStore) FindByID(_ context.Context, id string) (model.Task, error) {
	if err := checkID(id); err != nil {
		return model.Task{}, err
	}
	t, ok := s.tasks[id]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	return t, nil
}

func (s *fakeTaskStore) ListByOwner(_ context.Context, email string) ([]model.Task, error) {
	tasks := []model.Task{}
	for _, t := range s.tasks {
		if t.Email == email {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

type fakeNotificationStore struct {
	byTask map[string]model.Notification
}

func newFakeNotificationStore() *fakeNotificationStore {
	return &fakeNotificationStore{byTask: map[string]model.Notification{}}
}

func (s *fakeNotificationStore) Upsert(_ context.Context, taskID string, n model.Notification) (model.Notification, error) {
	// Field-wise merge like the repository's $set of an omitempty struct.
	existing, ok := s.byTask[taskID]
	if !ok {
		existing = model.Notification{ID: bson.NewObjectID(), TaskID: taskID}
	}
	if n.Email != "" {
		existing.Email = n.Email
	}
	if n.Message != "" {
		existing.Message = n.Message
	}
	if n.Time != "" {
		existing.Time = n.Time
	}
	s.byTask[taskID] = existing
	return existing, nil
}

func (s *fakeNotificationStore) Delete(_ context.Context, id string) (int64, error) {
	if err := checkID(id); err != nil {
		return 0, err
	}
	for taskID, n := range s.byTask {
		if n.ID.Hex() == id {
			delete(s.byTask, taskID)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *fakeNotificationStore) ListByRecipient(_ context.Context, email string) ([]model.Notification, error) {
	notifications := []model.Notification{}
	for _, n := range s.byTask {
		if n.Email == email {
			notifications = append(notifications, n)
		}
	}
	return notifications, nil
}

func checkID(id string) error {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return repository.ErrInvalidID
	}
	return nil
}

type recordingPublisher struct {
	keys     []string
	payloads []any
}

func (p *recordingPublisher) Publish(routingKey string, payload any) error {
	p.keys = append(p.keys, routingKey)
	p.payloads = append(p.payloads, payload)
	return nil
}
