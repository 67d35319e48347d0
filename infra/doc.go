// Package infra contains technical adapters such as the metrics
// exporters, the MQTT publisher and the advisory client. These
// packages should depend only on the interfaces defined in the core
// packages.
package infra
