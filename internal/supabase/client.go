package supabase

import (
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
	"ucpmaroc-backend/internal/models"
)

// RestClient reads public marketplace data through PostgREST, the same path
// the web front-end uses. Writes go through DatabaseClient instead.
type RestClient struct {
	client *supabase.Client
}

func NewRestClient(supabaseURL, serviceKey string) (*RestClient, error) {
	client, err := supabase.NewClient(supabaseURL, serviceKey, nil)
	if err != nil {
		return nil, err
	}

	return &RestClient{client: client}, nil
}

func (r *RestClient) ListActors() ([]models.Actor, error) {
	data, _, err := r.client.From("actors").
		Select("id, display_name, email, slug, created_at", "", false).
		Order("display_name", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list actors: %w", err)
	}

	var actors []models.Actor
	if err := json.Unmarshal(data, &actors); err != nil {
		return nil, fmt.Errorf("failed to decode actors: %w", err)
	}
	return actors, nil
}

func (r *RestClient) GetActorBySlug(slug string) (*models.Actor, error) {
	data, _, err := r.client.From("actors").
		Select("id, display_name, email, slug, created_at", "", false).
		Eq("slug", slug).
		Limit(1, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get actor: %w", err)
	}

	var actors []models.Actor
	if err := json.Unmarshal(data, &actors); err != nil {
		return nil, fmt.Errorf("failed to decode actor: %w", err)
	}
	if len(actors) == 0 {
		return nil, fmt.Errorf("actor not found: %s", slug)
	}
	return &actors[0], nil
}
