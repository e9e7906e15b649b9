package service

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/bizgenie/bizgenie-api/internal/core/domain"
	"github.com/bizgenie/bizgenie-api/internal/core/ports"
)

// In-memory stand-ins for the repository and infrastructure ports. They
// enforce the same sentinel errors the real adapters return.

type stubIdentityRepo struct {
	mu         sync.Mutex
	identities map[string]*domain.Identity // keyed by id
}

func newStubIdentityRepo() *stubIdentityRepo {
	return &stubIdentityRepo{identities: make(map[string]*domain.Identity)}
}

func cloneIdentity(i *domain.Identity) *domain.Identity {
	if i == nil {
		return nil
	}
	clone := *i
	return &clone
}

func (r *stubIdentityRepo) Create(_ context.Context, identity *domain.Identity) (*domain.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.identities {
		if existing.Email == identity.Email {
			return nil, domain.ErrIdentityExists
		}
	}
	r.identities[identity.ID] = cloneIdentity(identity)
	return cloneIdentity(identity), nil
}

func (r *stubIdentityRepo) FindByEmail(_ context.Context, email string) (*domain.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, i := range r.identities {
		if i.Email == email {
			return cloneIdentity(i), nil
		}
	}
	return nil, domain.ErrIdentityNotFound
}

func (r *stubIdentityRepo) FindByID(_ context.Context, id string) (*domain.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.identities[id]; ok {
		return cloneIdentity(i), nil
	}
	return nil, domain.ErrIdentityNotFound
}

func (r *stubIdentityRepo) ListByBusiness(_ context.Context, businessID string) ([]*domain.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Identity
	for _, i := range r.identities {
		if i.BusinessID == businessID {
			out = append(out, cloneIdentity(i))
		}
	}
	return out, nil
}

type stubRevocations struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
}

func newStubRevocations() *stubRevocations {
	return &stubRevocations{revoked: make(map[string]time.Duration)}
}

func (s *stubRevocations) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[tokenID] = ttl
	return nil
}

func (s *stubRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.revoked[tokenID]
	return ok, nil
}

type stubLeadRepo struct {
	mu    sync.Mutex
	leads map[string]*domain.Lead
	order []string
}

func newStubLeadRepo() *stubLeadRepo {
	return &stubLeadRepo{leads: make(map[string]*domain.Lead)}
}

func cloneLead(l *domain.Lead) *domain.Lead {
	clone := *l
	return &clone
}

func (r *stubLeadRepo) Insert(_ context.Context, lead *domain.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads[lead.ID] = cloneLead(lead)
	r.order = append(r.order, lead.ID)
	return nil
}

func (r *stubLeadRepo) FindByID(_ context.Context, businessID, id string) (*domain.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.leads[id]; ok && l.BusinessID == businessID {
		return cloneLead(l), nil
	}
	return nil, domain.ErrLeadNotFound
}

func (r *stubLeadRepo) List(_ context.Context, scope ports.LeadScope) ([]*domain.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Lead
	for _, id := range r.order {
		l := r.leads[id]
		if l.BusinessID != scope.BusinessID {
			continue
		}
		if scope.AssignedTo != "" && l.AssignedTo != scope.AssignedTo {
			continue
		}
		out = append(out, cloneLead(l))
	}
	return out, nil
}

func (r *stubLeadRepo) UpdateStatus(_ context.Context, businessID, id string, status domain.LeadStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.leads[id]
	if !ok || l.BusinessID != businessID {
		return domain.ErrLeadNotFound
	}
	l.Status = status
	l.LastInteraction = time.Now().UTC()
	return nil
}

func (r *stubLeadRepo) Assign(_ context.Context, businessID, id, agentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.leads[id]
	if !ok || l.BusinessID != businessID {
		return domain.ErrLeadNotFound
	}
	l.AssignedTo = agentID
	return nil
}

type stubContentRepo struct {
	mu    sync.Mutex
	items map[string]*domain.ContentItem
	order []string
}

func newStubContentRepo() *stubContentRepo {
	return &stubContentRepo{items: make(map[string]*domain.ContentItem)}
}

func cloneItem(i *domain.ContentItem) *domain.ContentItem {
	clone := *i
	return &clone
}

func (r *stubContentRepo) Insert(_ context.Context, item *domain.ContentItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = cloneItem(item)
	r.order = append(r.order, item.ID)
	return nil
}

func (r *stubContentRepo) FindByID(_ context.Context, businessID, id string) (*domain.ContentItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.items[id]; ok && i.BusinessID == businessID {
		return cloneItem(i), nil
	}
	return nil, domain.ErrContentNotFound
}

func (r *stubContentRepo) ListByBusiness(_ context.Context, businessID string) ([]*domain.ContentItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.ContentItem
	for _, id := range r.order {
		if i := r.items[id]; i.BusinessID == businessID {
			out = append(out, cloneItem(i))
		}
	}
	return out, nil
}

func (r *stubContentRepo) UpdateStatus(_ context.Context, businessID, id string, status domain.ContentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.items[id]
	if !ok || i.BusinessID != businessID {
		return domain.ErrContentNotFound
	}
	i.Status = status
	return nil
}

type stubBusinessRepo struct {
	mu        sync.Mutex
	profiles  map[string]*domain.BusinessProfile
	summaries []*domain.BusinessSummary
}

func newStubBusinessRepo() *stubBusinessRepo {
	return &stubBusinessRepo{profiles: make(map[string]*domain.BusinessProfile)}
}

func (r *stubBusinessRepo) CreateProfile(_ context.Context, profile *domain.BusinessProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.profiles[profile.ID]; exists {
		return domain.ErrBusinessExists
	}
	clone := *profile
	r.profiles[profile.ID] = &clone
	return nil
}

func (r *stubBusinessRepo) FindByID(_ context.Context, id string) (*domain.BusinessProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrBusinessNotFound
}

func (r *stubBusinessRepo) AddFileRef(_ context.Context, businessID, ref string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[businessID]
	if !ok {
		return domain.ErrBusinessNotFound
	}
	p.UploadedFiles = append(p.UploadedFiles, ref)
	return nil
}

func (r *stubBusinessRepo) RemoveFileRef(_ context.Context, businessID, ref string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[businessID]
	if !ok {
		return domain.ErrBusinessNotFound
	}
	kept := p.UploadedFiles[:0]
	for _, f := range p.UploadedFiles {
		if f != ref {
			kept = append(kept, f)
		}
	}
	p.UploadedFiles = kept
	return nil
}

func (r *stubBusinessRepo) ListSummaries(_ context.Context) ([]*domain.BusinessSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.summaries, nil
}

type stubFileStore struct {
	mu       sync.Mutex
	uploaded map[string]string // key -> content type
	deleted  []string
}

func newStubFileStore() *stubFileStore {
	return &stubFileStore{uploaded: make(map[string]string)}
}

func (s *stubFileStore) Upload(_ context.Context, key, contentType string, r io.Reader) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.Copy(io.Discard, r)
	s.uploaded[key] = contentType
	return nil
}

func (s *stubFileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, key)
	return nil
}

type stubNotifier struct {
	mu     sync.Mutex
	events []ports.LeadAssignedEvent
	err    error
}

func (n *stubNotifier) LeadAssigned(_ context.Context, event ports.LeadAssignedEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.events = append(n.events, event)
	return nil
}
