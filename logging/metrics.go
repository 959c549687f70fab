package logging

import (
	"github.com/prometheus/client_golang/prometheus"
)

var recordsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "gldemo_log_records_total",
	Help: "Numbers of log records written, by level",
}, []string{"level"})

func init() {
	prometheus.MustRegister(recordsTotal)
}
