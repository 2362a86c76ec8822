package iocache

import (
	"sync"

	"trendscope/internal/contract"
)

// CacheStoreManager manages the report cache and history store instances.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	report       contract.CacheStore
	history      contract.HistoryStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetReportStore returns the report CacheStore.
func (mgr *CacheStoreManager) GetReportStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.report
}

// GetHistoryStore returns the HistoryStore.
func (mgr *CacheStoreManager) GetHistoryStore() contract.HistoryStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.history
}
