// Package leads runs the intake pipeline for contact and hire-me
// submissions: reference code, optional enrichment, persistence with local
// fallback, and best-effort relay notification.
package leads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/linoawt/Linostudiong/internal/cache"
	"github.com/linoawt/Linostudiong/internal/enrich"
	"github.com/linoawt/Linostudiong/internal/models"
	"github.com/linoawt/Linostudiong/internal/relay"
	"github.com/linoawt/Linostudiong/internal/store"
)

var (
	// ErrBusy is returned when a submission arrives while another is in
	// flight; the caller should simply drop it.
	ErrBusy = errors.New("leads: submission already in flight")
	// ErrInvalid marks submissions rejected before any side effect.
	ErrInvalid = errors.New("leads: invalid submission")
)

type Submission struct {
	Name    string
	Email   string
	Budget  string
	Message string
	Type    models.LeadType
}

// Enricher produces a summary for a submission; any error degrades the
// pipeline to the locally generated reference code with no summary.
type Enricher interface {
	Summarize(ctx context.Context, req enrich.Request) (enrich.Result, error)
}

// Notifier delivers the outbound notification; called fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, n relay.Notification) error
}

type Pipeline struct {
	store    *store.Client
	cache    *cache.Cache
	enricher Enricher // optional
	notifier Notifier // optional

	mu   sync.Mutex
	busy bool

	notifyWG sync.WaitGroup
}

func NewPipeline(s *store.Client, c *cache.Cache, e Enricher, n Notifier) *Pipeline {
	return &Pipeline{store: s, cache: c, enricher: e, notifier: n}
}

// Submit runs one submission through the pipeline and returns its reference
// code. The user-visible outcome depends only on persistence: enrichment
// and relay failures degrade silently.
func (p *Pipeline) Submit(ctx context.Context, sub Submission, couponPrefix string) (string, error) {
	if err := sub.validate(); err != nil {
		return "", err
	}

	p.mu.Lock()
	if p.busy {
		p.mu.Unlock()
		return "", ErrBusy
	}
	p.busy = true
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		p.busy = false
		p.mu.Unlock()
	}()

	code := NewReferenceCode(couponPrefix)
	summary := ""
	if p.enricher != nil {
		res, err := p.enricher.Summarize(ctx, enrich.Request{
			Name:          sub.Name,
			Email:         sub.Email,
			Budget:        sub.Budget,
			Message:       sub.Message,
			ReferenceCode: code,
		})
		if err != nil {
			log.Printf("leads: enrichment: %v", err)
		} else {
			summary = res.EmailFormatted
			if MatchesFormat(couponPrefix, res.ReferenceCode) {
				code = res.ReferenceCode
			}
		}
	}

	lead := models.Lead{
		ID:            uuid.NewString(),
		Name:          sub.Name,
		Email:         sub.Email,
		Type:          sub.Type,
		Budget:        sub.Budget,
		Message:       sub.Message,
		ReferenceCode: code,
		Summary:       summary,
		CreatedAt:     time.Now().UTC(),
	}

	if err := p.persist(ctx, lead); err != nil {
		return "", err
	}

	if p.notifier != nil {
		p.notifyWG.Add(1)
		go func() {
			defer p.notifyWG.Done()
			nctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := p.notifier.Notify(nctx, relay.Notification{
				Name:          lead.Name,
				Email:         lead.Email,
				Budget:        lead.Budget,
				Message:       lead.Message,
				ReferenceCode: lead.ReferenceCode,
				Summary:       lead.Summary,
			}); err != nil {
				log.Printf("leads: relay: %v", err)
			}
		}()
	}

	return code, nil
}

// Wait blocks until in-flight relay notifications finish. Used on shutdown.
func (p *Pipeline) Wait() {
	p.notifyWG.Wait()
}

func (s Submission) validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: name required", ErrInvalid)
	}
	if !strings.Contains(s.Email, "@") {
		return fmt.Errorf("%w: valid email required", ErrInvalid)
	}
	if strings.TrimSpace(s.Message) == "" {
		return fmt.Errorf("%w: message required", ErrInvalid)
	}
	if !s.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalid, s.Type)
	}
	return nil
}

func (p *Pipeline) persist(ctx context.Context, lead models.Lead) error {
	err := p.store.Table("leads").Insert(ctx, leadToRow(lead))
	if err == nil {
		return nil
	}
	log.Printf("leads: remote insert: %v", err)

	if p.cache != nil {
		cErr := p.cache.AppendLead(ctx, lead)
		if cErr == nil {
			return nil
		}
		log.Printf("leads: cache fallback: %v", cErr)
	}
	return fmt.Errorf("persist lead: %w", err)
}

// List returns all leads newest first, for the admin inbox. When the remote
// backend is unreachable it serves the locally cached leads instead.
func (p *Pipeline) List(ctx context.Context) ([]models.Lead, error) {
	raws, err := p.store.Table("leads").Order("created_at", true).Select(ctx)
	if err == nil {
		return leadsFromRaw(raws)
	}
	log.Printf("leads: remote list: %v", err)

	if p.cache != nil {
		cached, cErr := p.cache.LoadLeads(ctx)
		if cErr == nil {
			// Cached leads are appended in arrival order.
			for i, j := 0, len(cached)-1; i < j; i, j = i+1, j-1 {
				cached[i], cached[j] = cached[j], cached[i]
			}
			return cached, nil
		}
		if !errors.Is(cErr, cache.ErrMiss) {
			log.Printf("leads: cache read: %v", cErr)
		}
	}
	return nil, fmt.Errorf("list leads: %w", err)
}

type leadRow struct {
	ID            string    `json:"id,omitempty"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Type          string    `json:"type"`
	Budget        string    `json:"budget,omitempty"`
	Message       string    `json:"message"`
	ReferenceCode string    `json:"reference_code"`
	Summary       string    `json:"summary,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func leadToRow(l models.Lead) leadRow {
	return leadRow{
		ID:            l.ID,
		Name:          l.Name,
		Email:         l.Email,
		Type:          string(l.Type),
		Budget:        l.Budget,
		Message:       l.Message,
		ReferenceCode: l.ReferenceCode,
		Summary:       l.Summary,
		CreatedAt:     l.CreatedAt,
	}
}

func leadsFromRaw(raws []json.RawMessage) ([]models.Lead, error) {
	leads := make([]models.Lead, 0, len(raws))
	for _, raw := range raws {
		var row leadRow
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, fmt.Errorf("decode lead row: %w", err)
		}
		leads = append(leads, models.Lead{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			Type:          models.LeadType(row.Type),
			Budget:        row.Budget,
			Message:       row.Message,
			ReferenceCode: row.ReferenceCode,
			Summary:       row.Summary,
			CreatedAt:     row.CreatedAt,
		})
	}
	return leads, nil
}
