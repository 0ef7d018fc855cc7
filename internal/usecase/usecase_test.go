package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/GoArmGo/StarWarsAPI/internal/database/dbtest"
	"github.com/GoArmGo/StarWarsAPI/internal/database/storage"
	"github.com/GoArmGo/StarWarsAPI/internal/domain"
	"github.com/GoArmGo/StarWarsAPI/internal/logger"
	"github.com/GoArmGo/StarWarsAPI/internal/messaging/payloads"
)

// recordingPublisher запоминает опубликованные события
type recordingPublisher struct {
	mu     sync.Mutex
	events []payloads.FavoriteEventPayload
	err    error
}

func (p *recordingPublisher) PublishFavoriteEvent(_ context.Context, payload payloads.FavoriteEventPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, payload)
	return p.err
}

func (p *recordingPublisher) Events() []payloads.FavoriteEventPayload {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]payloads.FavoriteEventPayload(nil), p.events...)
}

var errBrokerDown = errors.New("broker down")

// memoryDataset реализует DatasetSource и DatasetSink в памяти
type memoryDataset struct {
	ds  *domain.Dataset
	err error
}

func (m *memoryDataset) LoadDataset(context.Context) (*domain.Dataset, error) {
	return m.ds, m.err
}

func (m *memoryDataset) SaveDataset(_ context.Context, ds *domain.Dataset) error {
	m.ds = ds
	return m.err
}

type fixture struct {
	storage   *storage.GormStorage
	snapshots *storage.SnapshotStorage
	publisher *recordingPublisher
	catalog   CatalogUseCase
	favorites FavoriteUseCase
	seed      SeedUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	c := dbtest.New(t)
	log := logger.Discard()

	s := storage.NewGormStorage(c.Gorm, log)
	snap := storage.NewSnapshotStorage(c.DB, log)
	pub := &recordingPublisher{}

	return &fixture{
		storage:   s,
		snapshots: snap,
		publisher: pub,
		catalog:   NewCatalogUseCase(s, log),
		favorites: NewFavoriteUseCase(s, pub, log),
		seed:      NewSeedUseCase(s, snap, log),
	}
}
