package client

import (
	"context"

	"github.com/ramidarshan07/wealthtrack/internal/core/domain"
	"github.com/ramidarshan07/wealthtrack/internal/dto"
	"github.com/ramidarshan07/wealthtrack/internal/utils"
)

// ReferenceStore wraps one reference-data collection (categories, payment
// methods or amount types). Reads go through a shared cache; every mutation
// invalidates it.
type ReferenceStore struct {
	client *Client
	path   string
	cache  *resourceCache[[]dto.ReferenceResponse]
}

// Stores bundles the three reference collections behind one cache.
type Stores struct {
	Categories     *ReferenceStore
	PaymentMethods *ReferenceStore
	AmountTypes    *ReferenceStore
}

// NewStores creates the reference stores for a gateway.
func NewStores(c *Client) *Stores {
	cache := newResourceCache[[]dto.ReferenceResponse]()
	return &Stores{
		Categories:     &ReferenceStore{client: c, path: "/categories", cache: cache},
		PaymentMethods: &ReferenceStore{client: c, path: "/payment-methods", cache: cache},
		AmountTypes:    &ReferenceStore{client: c, path: "/amount-types", cache: cache},
	}
}

// List returns all entities of the collection, active and inactive, serving
// repeat calls from the cache until a mutation invalidates it.
func (s *ReferenceStore) List(ctx context.Context) ([]dto.ReferenceResponse, error) {
	if cached, ok := s.cache.Get(s.path); ok {
		return cached, nil
	}

	var refs []dto.ReferenceResponse
	skipped, err := s.client.get(ctx, s.path, &refs)
	if err != nil {
		return nil, err
	}
	if skipped {
		return nil, nil
	}
	s.cache.Set(s.path, refs)
	return refs, nil
}

// ListActive returns only active entities, the set pickers should offer.
func (s *ReferenceStore) ListActive(ctx context.Context) ([]dto.ReferenceResponse, error) {
	refs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]dto.ReferenceResponse, 0, len(refs))
	for _, ref := range refs {
		if domain.Status(ref.Status) == domain.StatusActive {
			active = append(active, ref)
		}
	}
	return active, nil
}

// Create adds an entity. The name is normalized to Title Case before the
// request so the server and client agree on the canonical form.
func (s *ReferenceStore) Create(ctx context.Context, name string) (*dto.ReferenceResponse, error) {
	var ref dto.ReferenceResponse
	req := dto.CreateReferenceRequest{Name: utils.NormalizeName(name)}
	skipped, err := s.client.post(ctx, s.path, req, &ref)
	if err != nil || skipped {
		return nil, err
	}
	s.cache.Invalidate(s.path)
	return &ref, nil
}

// Rename changes an entity's name.
func (s *ReferenceStore) Rename(ctx context.Context, id, name string) (*dto.ReferenceResponse, error) {
	var ref dto.ReferenceResponse
	req := dto.UpdateReferenceRequest{Name: utils.NormalizeName(name)}
	skipped, err := s.client.put(ctx, s.path+"/"+id, req, &ref)
	if err != nil || skipped {
		return nil, err
	}
	s.cache.Invalidate(s.path)
	return &ref, nil
}

// SetStatus toggles the soft-delete flag.
func (s *ReferenceStore) SetStatus(ctx context.Context, id string, status domain.Status) (*dto.ReferenceResponse, error) {
	var ref dto.ReferenceResponse
	req := dto.UpdateStatusRequest{Status: string(status)}
	skipped, err := s.client.patch(ctx, s.path+"/"+id+"/status", req, &ref)
	if err != nil || skipped {
		return nil, err
	}
	s.cache.Invalidate(s.path)
	return &ref, nil
}

// Remove deletes an entity.
func (s *ReferenceStore) Remove(ctx context.Context, id string) error {
	skipped, err := s.client.delete(ctx, s.path+"/"+id)
	if err != nil || skipped {
		return err
	}
	s.cache.Invalidate(s.path)
	return nil
}
