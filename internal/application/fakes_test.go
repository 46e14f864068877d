package application

import (
	"strconv"
	"sync"

	"github.com/realtexai/realtex-api/internal/domain/entity"
	"github.com/realtexai/realtex-api/internal/domain/repository"
)

// memUserRepo is an in-memory UserRepository with the same uniqueness
// behavior as the Postgres implementation.
type memUserRepo struct {
	mu   sync.Mutex
	rows map[string]*entity.User
	seq  int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{rows: map[string]*entity.User{}}
}

func copyUser(u *entity.User) *entity.User {
	cp := *u
	if u.InvitationToken != nil {
		t := *u.InvitationToken
		cp.InvitationToken = &t
	}
	return &cp
}

func (r *memUserRepo) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.seq++
	u.ID = "user-" + strconv.Itoa(r.seq)
	r.rows[u.ID] = copyUser(u)
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return copyUser(u), nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.rows {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetByInvitationToken(token string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.rows {
		if u.InvitationToken != nil && *u.InvitationToken == token {
			return copyUser(u), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) List() ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.User, 0, len(r.rows))
	for _, u := range r.rows {
		out = append(out, copyUser(u))
	}
	return out, nil
}

func (r *memUserRepo) Update(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[u.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, row := range r.rows {
		if id != u.ID && row.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.rows[u.ID] = copyUser(u)
	return nil
}

func (r *memUserRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *memUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

var _ repository.UserRepository = (*memUserRepo)(nil)

// memAreaRepo is an in-memory AreaRepository keyed by (area, country).
type memAreaRepo struct {
	mu      sync.Mutex
	rows    map[string]*entity.Area
	seq     int
	creates int
}

func newMemAreaRepo() *memAreaRepo {
	return &memAreaRepo{rows: map[string]*entity.Area{}}
}

func areaKey(name, country string) string { return name + "|" + country }

func (r *memAreaRepo) Get(areaName, country string) (*entity.Area, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.rows[areaKey(areaName, country)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *memAreaRepo) GetOrCreate(candidate *entity.Area) (*entity.Area, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := areaKey(candidate.AreaName, candidate.Country)
	if a, ok := r.rows[key]; ok {
		cp := *a
		return &cp, nil
	}
	r.seq++
	r.creates++
	candidate.ID = "area-" + strconv.Itoa(r.seq)
	cp := *candidate
	r.rows[key] = &cp
	out := cp
	return &out, nil
}

var _ repository.AreaRepository = (*memAreaRepo)(nil)

// memPropertyRepo is an in-memory PropertyRepository.
type memPropertyRepo struct {
	mu   sync.Mutex
	rows map[string]*entity.Property
	seq  int
}

func newMemPropertyRepo() *memPropertyRepo {
	return &memPropertyRepo{rows: map[string]*entity.Property{}}
}

func (r *memPropertyRepo) Create(p *entity.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	p.ID = "property-" + strconv.Itoa(r.seq)
	cp := *p
	r.rows[p.ID] = &cp
	return nil
}

func (r *memPropertyRepo) GetByID(id string) (*entity.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memPropertyRepo) List() ([]*entity.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Property, 0, len(r.rows))
	for _, p := range r.rows {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memPropertyRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

var _ repository.PropertyRepository = (*memPropertyRepo)(nil)

// memPredictionRepo is an in-memory append-only PredictionRepository.
type memPredictionRepo struct {
	mu   sync.Mutex
	rows []*entity.Prediction
	seq  int
}

func newMemPredictionRepo() *memPredictionRepo {
	return &memPredictionRepo{}
}

func (r *memPredictionRepo) Create(p *entity.Prediction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	p.ID = "prediction-" + strconv.Itoa(r.seq)
	cp := *p
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *memPredictionRepo) ListByProperty(propertyID string) ([]*entity.Prediction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Prediction
	for i := len(r.rows) - 1; i >= 0; i-- {
		if r.rows[i].PropertyID == propertyID {
			cp := *r.rows[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

var _ repository.PredictionRepository = (*memPredictionRepo)(nil)
