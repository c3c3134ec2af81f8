/*
Package observability turns executor lifecycle events into logs and
Prometheus metrics.

Both helpers return domain.LifecycleHooks, so they can be merged and passed
to mugincad.WithLifecycleHooks:

	m := observability.NewMetrics(prometheus.NewRegistry())
	hooks := m.Hooks().Merge(observability.LoggingHooks(logger))
	d := mugincad.New(mugincad.WithLifecycleHooks(hooks))
*/
package observability
