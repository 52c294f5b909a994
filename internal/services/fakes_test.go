package services

import (
	"context"
	"strconv"
	"sync"
	"time"

	"pitchplan_backend/internal/models"
	"pitchplan_backend/internal/plan"
	"pitchplan_backend/internal/repositories"
)

// fakeUserRepo is an in-memory UserRepository. ConsumeGeneration performs
// the conditional increment under a lock, mirroring the single-statement
// guarantee of the real implementation.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = "user-" + user.Username
	}
	user.CreatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) ResetGenerations(userID string, nextReset time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.GenerationsUsed = 0
	u.ResetDate = nextReset
	return nil
}

func (r *fakeUserRepo) ConsumeGeneration(userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return false, nil
	}
	if u.GenerationsUsed >= u.GenerationsLimit {
		return false, nil
	}
	u.GenerationsUsed++
	return true, nil
}

func (r *fakeUserRepo) UpdateStripeInfo(userID, customerID, subscriptionID string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	u.StripeCustomerID = customerID
	if subscriptionID != "" {
		u.StripeSubscriptionID = subscriptionID
		u.PlanType = models.PlanTypePro
		u.GenerationsLimit = models.UnlimitedGenerations
	}
	copied := *u
	return &copied, nil
}

// fakeSessionRepo is an in-memory SessionRepository preserving insertion
// order; listing returns newest first.
type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions []*models.TrainingSession
	nextID   int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{}
}

func (r *fakeSessionRepo) Create(session *models.TrainingSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	if session.ID == "" {
		session.ID = "session-" + strconv.Itoa(r.nextID)
	}
	session.CreatedAt = time.Now().Add(time.Duration(r.nextID) * time.Second)
	session.UpdatedAt = session.CreatedAt
	copied := *session
	r.sessions = append(r.sessions, &copied)
	return nil
}

func (r *fakeSessionRepo) FindOwned(id, userID string) (*models.TrainingSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		if s.ID == id && s.UserID == userID {
			copied := *s
			return &copied, nil
		}
	}
	return nil, repositories.ErrSessionNotFound
}

func (r *fakeSessionRepo) FindByUser(userID string) ([]models.TrainingSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.TrainingSession
	for i := len(r.sessions) - 1; i >= 0; i-- {
		if r.sessions[i].UserID == userID {
			out = append(out, *r.sessions[i])
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) DeleteOwned(id, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.sessions {
		if s.ID == id && s.UserID == userID {
			r.sessions = append(r.sessions[:i], r.sessions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSessionRepo) CountByUser(userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, s := range r.sessions {
		if s.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeSessionRepo) CountByUserSince(userID string, since time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, s := range r.sessions {
		if s.UserID == userID && !s.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

// fakeEmailProvider records sent mail.
type fakeEmailProvider struct {
	mu   sync.Mutex
	sent []string
}

func (p *fakeEmailProvider) Send(to, subject, htmlBody string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, to+": "+subject)
	return nil
}

// fakeGenerator returns a canned document or error.
type fakeGenerator struct {
	session *plan.Session
	err     error
	calls   int
}

func (g *fakeGenerator) Generate(_ context.Context, req plan.Request) (*plan.Session, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	session := *g.session
	session.SessionType = req.SessionType
	session.SessionFocus = req.SessionFocus
	session.DurationMinutes = req.DurationMinutes
	session.Participants = req.Participants
	return &session, nil
}
