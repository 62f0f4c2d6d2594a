package metrics

import (
	"net/http"
	"sync"

	"contrib.go.opencensus.io/exporter/prometheus"
	logging "github.com/ipfs/go-log/v2"
	promclient "github.com/prometheus/client_golang/prometheus"
)

var log = logging.Logger("metrics")

var (
	exporterOnce sync.Once
	exporter     http.Handler
)

// Exporter returns the prometheus handler served at /debug/metrics. It is
// created once per process against the default registry. Views must be
// registered separately with view.Register.
func Exporter() http.Handler {
	exporterOnce.Do(func() {
		exporter = newExporter()
	})
	return exporter
}

func newExporter() http.Handler {
	registry, ok := promclient.DefaultRegisterer.(*promclient.Registry)
	if !ok {
		log.Warnf("failed to export default prometheus registry; some metrics will be unavailable; unexpected type: %T", promclient.DefaultRegisterer)
	}
	e, err := prometheus.NewExporter(prometheus.Options{
		Registry:  registry,
		Namespace: "lotus_escrow",
	})
	if err != nil {
		log.Errorf("could not create the prometheus stats exporter: %v", err)
		return http.NotFoundHandler()
	}

	return e
}
