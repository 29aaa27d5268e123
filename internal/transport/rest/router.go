package rest

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups every REST handler mounted by the router.
type Handlers struct {
	Health     *HealthHandler
	Evaluation *EvaluationHandler
	Bulk       *BulkHandler
	Query      *QueryHandler
	Lineage    *LineageHandler
}

// NewRouter registers the probes, the metrics endpoint and the /api routes.
// api wraps only the /api routes; probes and metrics stay unauthenticated.
func NewRouter(h Handlers, gatherer prometheus.Gatherer, api func(http.Handler) http.Handler) http.Handler {
	root := http.NewServeMux()

	root.HandleFunc("GET /live", h.Health.Live)
	root.HandleFunc("GET /ready", h.Health.Ready)
	root.HandleFunc("GET /health", h.Health.Health)
	root.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/sites/{siteID}/evaluations", h.Query.List)
	mux.HandleFunc("GET /api/sites/{siteID}/evaluations/export", h.Query.Export)

	mux.HandleFunc("POST /api/evaluations/bulk", h.Bulk.Update)
	mux.HandleFunc("PATCH /api/evaluations/{id}", h.Evaluation.Update)
	mux.HandleFunc("PATCH /api/evaluations/{id}/applicability", h.Evaluation.SetApplicability)
	mux.HandleFunc("PATCH /api/evaluations/{id}/conformity", h.Evaluation.SetConformity)
	mux.HandleFunc("POST /api/evaluations/{id}/suggestions/{kind}/apply", h.Evaluation.ApplySuggestion)
	mux.HandleFunc("POST /api/evaluations/{id}/suggestions/{kind}/ignore", h.Evaluation.IgnoreSuggestion)
	mux.HandleFunc("POST /api/evaluations/{id}/lock", h.Evaluation.Lock)
	mux.HandleFunc("DELETE /api/evaluations/{id}/lock", h.Evaluation.Unlock)
	mux.HandleFunc("GET /api/evaluations/{id}/history", h.Evaluation.History)
	mux.HandleFunc("POST /api/evaluations/{id}/proofs", h.Evaluation.AttachProof)
	mux.HandleFunc("POST /api/evaluations/{id}/actions", h.Evaluation.CreateAction)
	mux.HandleFunc("GET /api/proofs/url", h.Evaluation.ProofURL)
	mux.HandleFunc("DELETE /api/proofs/{id}", h.Evaluation.DetachProof)
	mux.HandleFunc("DELETE /api/actions/{id}", h.Evaluation.DeleteAction)

	mux.HandleFunc("GET /api/articles/{id}/versions", h.Lineage.ListVersions)
	mux.HandleFunc("POST /api/articles/{id}/versions", h.Lineage.CreateVersion)
	mux.HandleFunc("POST /api/articles/{id}/versions/{versionID}/restore", h.Lineage.Restore)

	mux.HandleFunc("GET /api/views", h.Query.ListViews)
	mux.HandleFunc("POST /api/views", h.Query.CreateView)
	mux.HandleFunc("PUT /api/views/{id}", h.Query.UpdateView)
	mux.HandleFunc("DELETE /api/views/{id}", h.Query.DeleteView)
	mux.HandleFunc("GET /api/views/{id}/apply", h.Query.ApplyView)

	var apiHandler http.Handler = mux
	if api != nil {
		apiHandler = api(mux)
	}
	root.Handle("/api/", apiHandler)

	return root
}
