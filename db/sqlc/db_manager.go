package sqlc

import (
	"net"
	"time"
)

const (
	QuerierCtxTimeout = time.Second * 10
)

// DbManager bundles the managers built on one Querier. A nil Querier
// yields managers that do nothing.
type DbManager struct {
	Analytics *AnalyticsManager
}

func NewDbManager(queries Querier, serverIpNet net.IPNet) DbManager {
	return DbManager{
		Analytics: NewAnalyticsManager(queries, serverIpNet),
	}
}
