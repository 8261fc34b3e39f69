// Package metrics exposes Prometheus collectors for the migration dashboard.
package metrics

const namespace = "migration_dashboard"

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
