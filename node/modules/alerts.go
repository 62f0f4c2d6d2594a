package modules

import (
	"github.com/filecoin-project/lotus-escrow/journal/alerting"
	"github.com/filecoin-project/lotus-escrow/node/config"
)

// CheckDatastoreType raises an alert when node state lives in memory only.
func CheckDatastoreType(cfg config.Datastore) func(al *alerting.Alerting) {
	return func(al *alerting.Alerting) {
		alert := al.AddAlertType("repo", "datastore-type")

		if cfg.Type == config.DatastoreMemory {
			al.Raise(alert, map[string]string{
				"message": "node state is kept in memory and will be lost on shutdown",
				"type":    cfg.Type,
			})
		}
	}
}
