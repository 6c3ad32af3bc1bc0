package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"golang.org/x/sync/singleflight"

	"github.com/multiio/multigo/pkg/envvar"
	"github.com/multiio/multigo/pkg/types"
	"github.com/multiio/multigo/pkg/util"
	"github.com/multiio/multigo/pkg/util/backoff"
)

const memCacheExpiry = 5 * time.Minute
const fileCacheExpiry = 24 * time.Hour

//go:generate mockgen -destination=mocks/mock_catalog_source.go -package=mocks . CatalogSource

// CatalogSource is the exchange the catalog is loaded from
type CatalogSource interface {
	types.ExchangeMinimal
	types.ExchangeCatalogService
}

var globalCatalogMemCache = newCatalogMemCache()

// catalogLoads merges the concurrent loads of the same exchange catalog into one query
var catalogLoads singleflight.Group

type catalogMemCache struct {
	sync.Mutex
	catalogs map[types.ExchangeName]catalogWithTime
}

type catalogWithTime struct {
	updatedAt time.Time
	catalog   types.Catalog
}

func newCatalogMemCache() *catalogMemCache {
	return &catalogMemCache{
		catalogs: make(map[types.ExchangeName]catalogWithTime),
	}
}

func (c *catalogMemCache) IsOutdated(name types.ExchangeName) bool {
	c.Lock()
	defer c.Unlock()

	data, ok := c.catalogs[name]
	return !ok || time.Since(data.updatedAt) > memCacheExpiry
}

func (c *catalogMemCache) Set(catalog *types.Catalog) {
	c.Lock()
	defer c.Unlock()

	c.catalogs[catalog.Exchange] = catalogWithTime{
		updatedAt: time.Now(),
		catalog:   copyCatalog(catalog),
	}
}

// Get returns a copy of the cached catalog, callers can not mutate the cached snapshot
func (c *catalogMemCache) Get(name types.ExchangeName) (*types.Catalog, bool) {
	c.Lock()
	defer c.Unlock()

	data, ok := c.catalogs[name]
	if !ok {
		return nil, false
	}

	copied := copyCatalog(&data.catalog)
	return &copied, true
}

func copyCatalog(catalog *types.Catalog) types.Catalog {
	markets := make(types.MarketMap, len(catalog.Markets))
	for k, v := range catalog.Markets {
		markets[k] = v
	}

	currencies := make(types.CurrencyMap, len(catalog.Currencies))
	for k, v := range catalog.Currencies {
		currencies[k] = v
	}

	return types.Catalog{
		Exchange:   catalog.Exchange,
		Markets:    markets,
		Currencies: currencies,
	}
}

// CacheDir returns the directory of the file cache, MULTI_CACHE_DIR overrides the user cache directory
func CacheDir() (string, error) {
	if dir, ok := envvar.String("MULTI_CACHE_DIR"); ok && len(dir) > 0 {
		return dir, os.MkdirAll(dir, 0755)
	}

	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(base, "multigo")
	return dir, os.MkdirAll(dir, 0755)
}

type DataFetcher[T any] func() (T, error)

// WithCache loads the value of the key from the file cache, the fetcher is called
// when the cache file does not exist or has expired.
func WithCache[T any](key string, fetcher DataFetcher[T]) (T, error) {
	var zero T

	cacheDir, err := CacheDir()
	if err != nil {
		return zero, err
	}

	cacheFile := filepath.Join(cacheDir, key+".json")

	// the lock file keeps the processes sharing the cache directory from writing the same file
	fileLock := flock.New(cacheFile + ".lock")
	if err := fileLock.Lock(); err != nil {
		return zero, fmt.Errorf("cache file %s lock error: %w", cacheFile, err)
	}

	defer func() {
		if err := fileLock.Unlock(); err != nil {
			log.WithError(err).Errorf("cache file %s unlock error", cacheFile)
		}
	}()

	stat, err := os.Stat(cacheFile)
	if err == nil && time.Since(stat.ModTime()) <= fileCacheExpiry {
		log.Debugf("cache %s found", cacheFile)

		var obj T
		readErr := util.ReadJsonFile(cacheFile, &obj)
		if readErr == nil {
			return obj, nil
		}

		log.WithError(readErr).Warnf("cache %s is corrupted, fetching the data again", cacheFile)
	}

	log.Debugf("cache %s not found or cache expired, executing fetcher callback to get the data", cacheFile)

	obj, err := fetcher()
	if err != nil {
		return zero, err
	}

	if err := util.WriteJsonFile(cacheFile, obj); err != nil {
		return zero, err
	}

	return obj, nil
}

// LoadCatalog loads the catalog of the exchange. The catalog is kept in memory,
// CATALOG_FILE_CACHE=true keeps it in the file cache instead.
func LoadCatalog(ctx context.Context, ex CatalogSource) (*types.Catalog, error) {
	if fileCache, ok := envvar.Bool("CATALOG_FILE_CACHE"); ok && fileCache {
		return loadCatalogFromFile(ctx, ex)
	}

	return loadCatalogFromMem(ctx, ex)
}

func loadCatalogFromMem(ctx context.Context, ex CatalogSource) (*types.Catalog, error) {
	name := ex.Name()
	if !globalCatalogMemCache.IsOutdated(name) {
		if catalog, ok := globalCatalogMemCache.Get(name); ok {
			return catalog, nil
		}
	}

	_, err, _ := catalogLoads.Do(string(name), func() (interface{}, error) {
		catalog, err := queryCatalog(ctx, ex)
		if err != nil {
			return nil, err
		}

		globalCatalogMemCache.Set(catalog)
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	catalog, _ := globalCatalogMemCache.Get(name)
	return catalog, nil
}

func loadCatalogFromFile(ctx context.Context, ex CatalogSource) (*types.Catalog, error) {
	key := fmt.Sprintf("%s-catalog", ex.Name())
	return WithCache(key, func() (*types.Catalog, error) {
		return queryCatalog(ctx, ex)
	})
}

// queryCatalog queries the markets and the currencies with retries,
// the errors of both queries are returned together.
func queryCatalog(ctx context.Context, ex CatalogSource) (*types.Catalog, error) {
	var markets types.MarketMap
	var currencies types.CurrencyMap

	marketErr := backoff.RetryGeneral(ctx, func() (err error) {
		markets, err = ex.QueryMarkets(ctx)
		return err
	})

	currencyErr := backoff.RetryGeneral(ctx, func() (err error) {
		currencies, err = ex.QueryCurrencies(ctx)
		return err
	})

	if err := multierr.Combine(marketErr, currencyErr); err != nil {
		return nil, fmt.Errorf("failed to load %s catalog: %w", ex.Name(), err)
	}

	return types.NewCatalog(ex.Name(), markets, currencies), nil
}
