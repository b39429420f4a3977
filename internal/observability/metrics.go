package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ProductsScraped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ac_products_scraped_total",
			Help: "Products extracted per retailer",
		},
		[]string{"brand"},
	)
	FetchErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ac_fetch_errors_total",
			Help: "Failed retailer page fetches",
		},
		[]string{"brand"},
	)
	AnalysisFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ac_analysis_failures_total",
			Help: "Failed OpenAI analysis calls",
		},
	)
)

func Start(port string) {
	prometheus.MustRegister(ProductsScraped, FetchErrors, AnalysisFailures)
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, nil)
}
