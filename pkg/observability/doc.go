/*
Package observability provides monitoring for the validation pipeline.

Metrics registers Prometheus collectors and exposes them as
domain.LifecycleHooks, so the pipeline itself stays unaware of Prometheus:

	m := observability.NewMetrics(prometheus.DefaultRegisterer)
	v := pergola.New(pergola.WithLifecycleHooks(m.Hooks()))

Chain combines several hook sets when metrics and custom auditing are
both wanted.
*/
package observability
