package syncer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"placement-backend/internal/models"
	"placement-backend/internal/store"
)

// Push payload type names understood by the spreadsheet web app.
const (
	PushSites      = "sites"
	PushStatuses   = "studentStatuses"
	PushSchedules  = "schedules"
	PushForms      = "forms"
	PushUploadForm = "uploadForm"
)

// remoteSnapshot is the GET response shape. Every key is optional:
// a present key wholesale-replaces the matching local collection, an
// absent key leaves it untouched. Unknown keys are rejected so a
// malformed remote payload degrades to a logged no-op instead of
// silently half-applying.
type remoteSnapshot struct {
	Sites           *[]models.InternshipSite      `json:"sites"`
	Schedules       *[]models.ScheduleEvent       `json:"schedules"`
	Forms           *[]models.DocumentForm        `json:"forms"`
	StudentStatuses *[]models.StudentStatusRecord `json:"studentStatuses"`
}

type pushEnvelope struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type uploadPayload struct {
	FileName string `json:"fileName"`
	DataURL  string `json:"dataUrl"`
}

// Gateway keeps the local store eventually consistent with the single
// remote collection-store. The consistency contract is deliberately
// weak and documented here rather than hidden: pushes carry the whole
// collection, run concurrently with no queue or sequencing token, and
// the last response to land wins remotely. A failed call is a logged
// no-op; local and remote state may diverge until the next successful
// FetchAll, which itself overwrites local state wholesale.
type Gateway struct {
	endpoint string
	client   *http.Client
	store    *store.Store

	mu       sync.Mutex
	lastSync time.Time
}

func New(endpoint string, client *http.Client, st *store.Store) *Gateway {
	if client == nil {
		client = http.DefaultClient
	}
	return &Gateway{
		endpoint: strings.TrimSpace(endpoint),
		client:   client,
		store:    st,
	}
}

// LastSync reports when the gateway last completed a successful fetch
// or push; zero if never.
func (g *Gateway) LastSync() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastSync
}

func (g *Gateway) markSynced() {
	g.mu.Lock()
	g.lastSync = time.Now().UTC()
	g.mu.Unlock()
}

// FetchAll pulls the remote snapshot and replaces every collection the
// response carries. Collections absent from the response keep their
// current local value.
func (g *Gateway) FetchAll(ctx context.Context) error {
	if g.endpoint == "" {
		return fmt.Errorf("sync endpoint not configured")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint, nil)
	if err != nil {
		return fmt.Errorf("create fetch request: %w", err)
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch remote snapshot: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("remote snapshot returned status %d", resp.StatusCode)
	}

	var snap remoteSnapshot
	dec := json.NewDecoder(resp.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&snap); err != nil {
		return fmt.Errorf("decode remote snapshot: %w", err)
	}

	if snap.Sites != nil {
		g.store.ReplaceSites(ctx, *snap.Sites)
	}
	if snap.Schedules != nil {
		g.store.ReplaceSchedules(ctx, *snap.Schedules)
	}
	if snap.Forms != nil {
		g.store.ReplaceForms(ctx, *snap.Forms)
	}
	if snap.StudentStatuses != nil {
		g.store.ReplaceStatuses(ctx, *snap.StudentStatuses)
	}

	g.markSynced()
	return nil
}

// Push sends one whole collection to the remote store. The response
// body is not interpreted beyond success/failure and the caller's
// optimistic local write is never rolled back.
func (g *Gateway) Push(ctx context.Context, collection string, data any) error {
	return g.post(ctx, pushEnvelope{Type: collection, Data: data})
}

// PushUpload sends an uploaded file (base64 data-URL plus the original
// filename) for server-side processing. The remote side replaces the
// form's sentinel URL on its own time; the client only observes the
// final URL through a later FetchAll.
func (g *Gateway) PushUpload(ctx context.Context, fileName, dataURL string) error {
	return g.post(ctx, pushEnvelope{
		Type: PushUploadForm,
		Data: uploadPayload{FileName: fileName, DataURL: dataURL},
	})
}

func (g *Gateway) post(ctx context.Context, envelope pushEnvelope) error {
	if g.endpoint == "" {
		return fmt.Errorf("sync endpoint not configured")
	}
	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("encode push payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("push %s: %w", envelope.Type, err)
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused; the body itself is ignored.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("push %s returned status %d", envelope.Type, resp.StatusCode)
	}

	g.markSynced()
	return nil
}
