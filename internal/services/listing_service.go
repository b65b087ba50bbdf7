package services

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"rakb/api/internal/models"
	"rakb/api/internal/store"
)

// DefaultSearchLimit caps listing search results when the caller does not
// specify a limit.
const DefaultSearchLimit = 24

// ErrInvalidID is returned when a listing identifier cannot be parsed into
// the store's native identifier format.
var ErrInvalidID = errors.New("invalid listing ID format")

const citiesCacheKey = "rakb:cities"

// SearchQuery carries the optional listing search filters. Unset fields add
// no filter clause.
type SearchQuery struct {
	City     *string  `json:"city"`
	MinPrice *float64 `json:"min_price"`
	MaxPrice *float64 `json:"max_price"`
	Limit    int      `json:"limit"`
}

// IListingService defines listing browse/search operations.
type IListingService interface {
	Create(ctx context.Context, listing *models.Listing) (string, error)
	Search(ctx context.Context, q SearchQuery) ([]bson.M, error)
	FindByID(ctx context.Context, idHex string) (bson.M, error)
	Cities(ctx context.Context) ([]string, error)
}

// listingService implements IListingService.
type listingService struct {
	store    store.Store
	rdb      *redis.Client // optional; nil disables the cities cache
	cacheTTL time.Duration
}

// NewListingService creates a new ListingService. rdb may be nil.
func NewListingService(st store.Store, rdb *redis.Client, cacheTTL time.Duration) IListingService {
	return &listingService{store: st, rdb: rdb, cacheTTL: cacheTTL}
}

// Create validates nothing itself; callers validate before persisting.
func (s *listingService) Create(ctx context.Context, listing *models.Listing) (string, error) {
	return s.store.Create(ctx, models.ListingCollection, listing)
}

// searchFilter translates a search query into a store filter: city is a
// case-insensitive exact match, price bounds are inclusive.
func searchFilter(q SearchQuery) store.Filter {
	f := store.Where()
	if q.City != nil && *q.City != "" {
		f = f.EqFold("city", *q.City)
	}
	if q.MinPrice != nil {
		f = f.Gte("daily_price", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		f = f.Lte("daily_price", *q.MaxPrice)
	}
	return f
}

// Search returns up to q.Limit listings in the store's natural order, each
// with its identifier shaped into a plain "id" string and, best-effort, the
// referenced car embedded.
func (s *listingService) Search(ctx context.Context, q SearchQuery) ([]bson.M, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	docs, err := s.store.Find(ctx, models.ListingCollection, searchFilter(q), int64(limit))
	if err != nil {
		return nil, err
	}

	items := make([]bson.M, 0, len(docs))
	for _, d := range docs {
		shapeID(d)
		s.embedCar(ctx, d)
		items = append(items, d)
	}
	return items, nil
}

// FindByID returns a single listing with its identifier shaped and the
// referenced car embedded best-effort. Returns ErrInvalidID for malformed
// identifiers and mongo.ErrNoDocuments when nothing matches.
func (s *listingService) FindByID(ctx context.Context, idHex string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrInvalidID
	}

	doc, err := s.store.FindOne(ctx, models.ListingCollection, store.Where().Eq("_id", oid))
	if err != nil {
		return nil, err
	}

	shapeID(doc)
	s.embedCar(ctx, doc)
	return doc, nil
}

// Cities returns the sorted set of distinct non-empty city values across
// all listings. Results are cached in Redis when a client is configured;
// every cache failure degrades to reading the store directly.
func (s *listingService) Cities(ctx context.Context) ([]string, error) {
	if cached, ok := s.citiesFromCache(ctx); ok {
		return cached, nil
	}

	values, err := s.store.Distinct(ctx, models.ListingCollection, "city")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(values))
	cities := make([]string, 0, len(values))
	for _, v := range values {
		city, ok := v.(string)
		if !ok || city == "" {
			continue
		}
		if _, dup := seen[city]; dup {
			continue
		}
		seen[city] = struct{}{}
		cities = append(cities, city)
	}
	sort.Strings(cities)

	s.citiesToCache(ctx, cities)
	return cities, nil
}

func (s *listingService) citiesFromCache(ctx context.Context) ([]string, bool) {
	if s.rdb == nil {
		return nil, false
	}
	raw, err := s.rdb.Get(ctx, citiesCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.WithError(err).Warn("cities cache read failed")
		}
		return nil, false
	}
	var cities []string
	if err := json.Unmarshal(raw, &cities); err != nil {
		log.WithError(err).Warn("cities cache entry corrupt")
		return nil, false
	}
	return cities, true
}

func (s *listingService) citiesToCache(ctx context.Context, cities []string) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(cities)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, citiesCacheKey, raw, s.cacheTTL).Err(); err != nil {
		log.WithError(err).Warn("cities cache write failed")
	}
}

// shapeID replaces the internal identifier field with a plain "id" string.
func shapeID(d bson.M) {
	if oid, ok := d["_id"].(primitive.ObjectID); ok {
		d["id"] = oid.Hex()
	} else {
		d["id"] = ""
	}
	delete(d, "_id")
}

// embedCar attaches the referenced car document under "car". This is an
// explicitly best-effort step: any failure is logged and the listing is
// returned without the embed.
func (s *listingService) embedCar(ctx context.Context, d bson.M) {
	carID, _ := d["car_id"].(string)
	oid, err := primitive.ObjectIDFromHex(carID)
	if err != nil {
		log.WithField("car_id", carID).Debug("skipping car embed: unparseable reference")
		return
	}

	car, err := s.store.FindOne(ctx, models.CarCollection, store.Where().Eq("_id", oid))
	if err != nil {
		log.WithError(err).WithField("car_id", carID).Debug("skipping car embed")
		return
	}

	shapeID(car)
	d["car"] = car
}
