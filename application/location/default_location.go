package location

import (
	"context"
	"errors"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-ledger/constant"
	locationrepo "github.com/muhammadheryan/stock-ledger/repository/location"
	txrepo "github.com/muhammadheryan/stock-ledger/repository/tx"
	"github.com/muhammadheryan/stock-ledger/utils/logger"
	"go.uber.org/zap"
)

var errDefaultLocationVanished = errors.New("default location reported as duplicate but not found")

// DefaultLocationPolicy resolves the GENERAL location of a warehouse, creating it on first use.
type DefaultLocationPolicy interface {
	EnsureDefaultLocationTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64) (uint64, error)
}

type defaultLocationPolicy struct {
	locationRepo locationrepo.LocationRepository

	mu    sync.RWMutex
	cache map[uint64]uint64
}

func NewDefaultLocationPolicy(locationRepo locationrepo.LocationRepository) DefaultLocationPolicy {
	return &defaultLocationPolicy{locationRepo: locationRepo, cache: make(map[uint64]uint64)}
}

// EnsureDefaultLocationTx is safe against a concurrent creator: losing the insert race
// re-reads the winner's row. Ids created inside tx are not cached because tx may still roll back.
func (p *defaultLocationPolicy) EnsureDefaultLocationTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64) (uint64, error) {
	p.mu.RLock()
	id, ok := p.cache[warehouseID]
	p.mu.RUnlock()
	if ok {
		return id, nil
	}

	loc, err := p.locationRepo.FindByCodeTx(ctx, tx, warehouseID, constant.DefaultLocationCode)
	if err != nil {
		return 0, err
	}
	if loc != nil {
		p.remember(warehouseID, loc.ID)
		return loc.ID, nil
	}

	id, err = p.locationRepo.CreateTx(ctx, tx, warehouseID, constant.DefaultLocationCode, constant.LocationPicking)
	if err == nil {
		logger.Info("[EnsureDefaultLocation] created default location", zap.Uint64("warehouse_id", warehouseID), zap.Uint64("location_id", id))
		return id, nil
	}
	if !txrepo.IsDuplicateKey(err) {
		return 0, err
	}

	loc, err = p.locationRepo.FindByCodeTx(ctx, tx, warehouseID, constant.DefaultLocationCode)
	if err != nil {
		return 0, err
	}
	if loc == nil {
		return 0, errDefaultLocationVanished
	}
	p.remember(warehouseID, loc.ID)
	return loc.ID, nil
}

func (p *defaultLocationPolicy) remember(warehouseID, locationID uint64) {
	p.mu.Lock()
	p.cache[warehouseID] = locationID
	p.mu.Unlock()
}
