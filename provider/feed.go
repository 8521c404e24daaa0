package provider

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tnqbao/gau-gallery-service/entity"
	"github.com/tnqbao/gau-gallery-service/infra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type CardKind string

const (
	CardKindPhoto  CardKind = "photo"
	CardKindLetter CardKind = "letter"
)

const displayDateLayout = "2006.01.02"

// FeedCard is the render-ready projection of one persisted item. Built
// fresh on every aggregation pass, never persisted, never mutated in place.
type FeedCard struct {
	Kind         CardKind  `json:"kind"`
	ID           uint      `json:"id"`
	PrimaryURL   string    `json:"primary_url"`
	SecondaryURL string    `json:"secondary_url,omitempty"`
	DisplayDate  string    `json:"display_date"`
	SortDate     time.Time `json:"sort_date"`
}

// ImageSource and LetterSource are the two backing collections; the
// repositories satisfy them.
type ImageSource interface {
	FindAll() ([]entity.Image, error)
}

type LetterSource interface {
	FindAll() ([]entity.Letter, error)
}

// FeedURLResolver signs feed-content URLs. *Resolver satisfies it.
type FeedURLResolver interface {
	ResolveFeedURL(ctx context.Context, objectKey string) (*ResolvedURL, error)
}

// Aggregator merges the photo and letter collections into one ordered
// sequence of display-ready cards.
type Aggregator struct {
	images   ImageSource
	letters  LetterSource
	resolver FeedURLResolver
	logger   *infra.LoggerClient
	tracer   trace.Tracer
}

func NewAggregator(images ImageSource, letters LetterSource, resolver FeedURLResolver, logger *infra.LoggerClient) *Aggregator {
	return &Aggregator{
		images:   images,
		letters:  letters,
		resolver: resolver,
		logger:   logger,
		tracer:   otel.Tracer("gallery/feed"),
	}
}

// BuildFeed fetches both collections, resolves access URLs and returns the
// cards strictly descending by sort date. A failure fetching one collection
// zeroes out that collection's contribution instead of blanking the feed.
// Every call produces a fully independent sequence.
func (a *Aggregator) BuildFeed(ctx context.Context) []FeedCard {
	ctx, span := a.tracer.Start(ctx, "BuildFeed")
	defer span.End()

	images, err := a.images.FindAll()
	if err != nil {
		a.logger.WarningWithContextf(ctx, "[Feed] images collection unavailable, contributing zero cards: %v", err)
		images = nil
	}

	letters, err := a.letters.FindAll()
	if err != nil {
		a.logger.WarningWithContextf(ctx, "[Feed] letters collection unavailable, contributing zero cards: %v", err)
		letters = nil
	}

	// Card skeletons keep insertion order; that order is the stable
	// tie-break for same-instant items.
	cards := make([]FeedCard, 0, len(images)+len(letters))
	primaryKeys := make([]string, 0, len(images)+len(letters))
	secondaryKeys := make([]string, 0, len(images)+len(letters))

	for _, img := range images {
		cards = append(cards, FeedCard{
			Kind:        CardKindPhoto,
			ID:          img.ID,
			DisplayDate: displayDate(img.CapturedAt, img.CreatedAt),
			SortDate:    sortDate(img.CapturedAt, img.CreatedAt),
		})
		primaryKeys = append(primaryKeys, img.FilePath)
		secondaryKeys = append(secondaryKeys, "")
	}

	for _, letter := range letters {
		cards = append(cards, FeedCard{
			Kind:        CardKindLetter,
			ID:          letter.ID,
			DisplayDate: displayDate(letter.WrittenAt, letter.CreatedAt),
			SortDate:    sortDate(letter.WrittenAt, letter.CreatedAt),
		})
		primaryKeys = append(primaryKeys, letter.FileMain)
		// only the first page resolves eagerly; the rest wait for the
		// viewer to open this letter
		if len(letter.FilePages) > 0 {
			secondaryKeys = append(secondaryKeys, letter.FilePages[0])
		} else {
			secondaryKeys = append(secondaryKeys, "")
		}
	}

	// Per-card resolutions run concurrently; each goroutine writes its own
	// index, so the ordering below depends only on the sort dates.
	var wg sync.WaitGroup
	for i := range cards {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if resolved, err := a.resolver.ResolveFeedURL(ctx, primaryKeys[i]); err == nil {
				cards[i].PrimaryURL = resolved.URL
			} else {
				a.logger.WarningWithContextf(ctx, "[Feed] failed to resolve %s for %s/%d: %v", primaryKeys[i], cards[i].Kind, cards[i].ID, err)
			}
			if secondaryKeys[i] == "" {
				return
			}
			if resolved, err := a.resolver.ResolveFeedURL(ctx, secondaryKeys[i]); err == nil {
				cards[i].SecondaryURL = resolved.URL
			} else {
				a.logger.WarningWithContextf(ctx, "[Feed] failed to resolve %s for %s/%d: %v", secondaryKeys[i], cards[i].Kind, cards[i].ID, err)
			}
		}(i)
	}
	wg.Wait()

	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].SortDate.After(cards[j].SortDate)
	})

	span.SetAttributes(attribute.Int("feed.cards", len(cards)))
	return cards
}

// LetterPages resolves the carousel image sequence of one opened letter:
// its pages in display order. The main scan is the card thumbnail only and
// never appears in the carousel.
func (a *Aggregator) LetterPages(ctx context.Context, letter *entity.Letter) ([]string, error) {
	ctx, span := a.tracer.Start(ctx, "LetterPages")
	defer span.End()

	urls := make([]string, len(letter.FilePages))
	for i, key := range letter.FilePages {
		resolved, err := a.resolver.ResolveFeedURL(ctx, key)
		if err != nil {
			return nil, err
		}
		urls[i] = resolved.URL
	}

	return urls, nil
}

// sortDate is the item's capture/written date when present, its creation
// time otherwise; items with neither sort as epoch zero — oldest, never
// excluded.
func sortDate(itemDate *time.Time, createdAt time.Time) time.Time {
	if itemDate != nil && !itemDate.IsZero() {
		return *itemDate
	}
	if !createdAt.IsZero() {
		return createdAt
	}
	return time.Unix(0, 0).UTC()
}

func displayDate(itemDate *time.Time, createdAt time.Time) string {
	if itemDate != nil && !itemDate.IsZero() {
		return itemDate.Format(displayDateLayout)
	}
	if !createdAt.IsZero() {
		return createdAt.Format(displayDateLayout)
	}
	return ""
}
