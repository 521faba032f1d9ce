// Package metrics defines and registers all custom Prometheus metrics for
// the rex-properties API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rex_properties"

// PropertiesCreatedTotal counts newly created listings.
// Label:
//   - type: the listing type (e.g. "House", "Apartment")
var PropertiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "properties_created_total",
		Help:      "Total number of property listings created, by listing type.",
	},
	[]string{"type"},
)

// PropertiesDeletedTotal counts permanently deleted listings.
var PropertiesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "properties_deleted_total",
		Help:      "Total number of property listings deleted.",
	},
)

// BookmarkTogglesTotal counts bookmark toggle outcomes.
// Label:
//   - result: "added" or "removed"
var BookmarkTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookmark_toggles_total",
		Help:      "Total number of bookmark toggles, by result (added/removed).",
	},
	[]string{"result"},
)

// ImageUploadFailuresTotal counts failed asset-host upload batches.
var ImageUploadFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "image_upload_failures_total",
		Help:      "Total number of image upload batches that failed.",
	},
)

// SignInsTotal counts successful OAuth sign-ins.
// Label:
//   - result: "created" (first sign-in) or "existing"
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sign_ins_total",
		Help:      "Total number of successful sign-ins, by user resolution result.",
	},
	[]string{"result"},
)
