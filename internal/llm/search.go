package llm

import (
	"context"
	"strings"

	"pearl/internal/menu"

	"github.com/sirupsen/logrus"
)

// MenuLister provides the menu snapshot the model chooses from.
type MenuLister interface {
	List(ctx context.Context) ([]menu.Item, error)
}

// SearchResult is a dish as returned to the client.
type SearchResult struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// Result carries the matches and whether the search fell back to an empty
// list because the model or the menu could not be read.
type Result struct {
	Items    []SearchResult
	Degraded bool
}

type Searcher struct {
	client Client
	menu   MenuLister
	log    logrus.FieldLogger
}

func NewSearcher(client Client, menu MenuLister, log logrus.FieldLogger) *Searcher {
	return &Searcher{client: client, menu: menu, log: log}
}

func (s *Searcher) Search(ctx context.Context, query string) Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return Result{Items: []SearchResult{}}
	}

	log := s.log.WithField("query", query)

	items, err := s.menu.List(ctx)
	if err != nil {
		log.WithError(err).Error("ai search: menu snapshot failed")
		return degraded()
	}

	snapshot := make([]promptMenuItem, 0, len(items))
	byID := make(map[int64]menu.Item, len(items))
	for _, it := range items {
		snapshot = append(snapshot, promptMenuItem{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Price:       it.Price,
			Image:       it.Image,
		})
		byID[it.ID] = it
	}

	prompt, err := BuildSearchPrompt(query, snapshot)
	if err != nil {
		log.WithError(err).Error("ai search: build prompt failed")
		return degraded()
	}

	text, err := s.client.Generate(ctx, prompt)
	if err != nil {
		log.WithError(err).Warn("ai search: model call failed")
		return degraded()
	}

	hits, err := ParseSearchHits(text)
	if err != nil {
		log.WithError(err).Warn("ai search: malformed model output")
		return degraded()
	}

	out := make([]SearchResult, 0, len(hits))
	seen := make(map[int64]bool, len(hits))
	for _, h := range hits {
		id, ok := h.MenuID()
		if !ok {
			continue
		}
		it, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, SearchResult{ID: it.ID, Name: it.Name, Price: it.Price, Image: it.Image})
	}
	return Result{Items: out}
}

func degraded() Result {
	return Result{Items: []SearchResult{}, Degraded: true}
}
