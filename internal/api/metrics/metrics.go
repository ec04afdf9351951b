// Package metrics defines and registers all custom Prometheus metrics for
// the activax API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "activax"

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// UserMutationsTotal counts committed mutations to the user collection.
// Label:
//   - action: "register", "create", "update", "delete", "password", "photo"
var UserMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_mutations_total",
		Help:      "Total number of user collection mutations, by action.",
	},
	[]string{"action"},
)

// ActivityMutationsTotal counts committed mutations to the activity
// collection.
// Label:
//   - action: "add", "update", "delete"
var ActivityMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_mutations_total",
		Help:      "Total number of activity collection mutations, by action.",
	},
	[]string{"action"},
)

// AuthzDenialsTotal counts requests refused by the authorization engine.
// Label:
//   - reason: "forbidden", "permission", "view_locked"
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of authorization denials, by reason.",
	},
	[]string{"reason"},
)

// PermissionCommitsTotal counts committed permission matrix drafts.
var PermissionCommitsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "permission_commits_total",
		Help:      "Total number of permission drafts committed to user records.",
	},
)
