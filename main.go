package main

import (
	"os"

	"github.com/glitchworks/gldemo/logging"
	"github.com/glitchworks/gldemo/scene"
	"github.com/glitchworks/gldemo/vars"
	"github.com/gobwas/glob"
	"github.com/prometheus/client_golang/prometheus"
)

// version is overridden by release builds via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	vars.LoadFileIfExists("vars.yml")
	vars.ParseArguments(os.Args[1:])

	logging.SetConsoleEnabled(vars.AllocConsole)
	logging.Init(int(vars.LogBufferSize.Bytes()))
	if vars.LogDebugFilter != "" {
		filter, err := glob.Compile(vars.LogDebugFilter)
		if err != nil {
			logging.Fail("Invalid debug filter pattern.",
				logging.String("pattern", vars.LogDebugFilter),
				logging.String("error", err.Error()))
		}
		logging.SetDebugFilter(filter)
	}

	registerInfoMetric()

	logging.Info("Starting.", logging.String("version", version))
	if vars.DebugContext {
		logging.Debug("Debug context enabled.")
	}
	if err := scene.Run(); err != nil {
		logging.Fail("Window closed with an error.", logging.String("error", err.Error()))
	}
}

func registerInfoMetric() {
	opts := prometheus.GaugeOpts{}
	opts.Name = "gldemo_info"
	opts.Help = "gldemo application information"
	gauge := prometheus.NewGaugeVec(opts, []string{"version"})
	gauge.WithLabelValues(version).Set(1)
	prometheus.MustRegister(gauge)
}
