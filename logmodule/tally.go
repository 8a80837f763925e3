package logmodule

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
)

// TallyReporter writes tally metrics to logrus at debug level
type TallyReporter struct {
	entry *log.Entry
}

func NewTallyReporter(prefix string) tally.StatsReporter {
	return &TallyReporter{entry: log.WithField("prefix", prefix)}
}

func (r *TallyReporter) Capabilities() tally.Capabilities {
	return r
}

func (r *TallyReporter) Reporting() bool {
	return true
}

func (r *TallyReporter) Tagging() bool {
	return true
}

func (r *TallyReporter) Flush() {}

func (r *TallyReporter) report(name string, tags map[string]string, value interface{}) {
	fields := log.Fields{"metric": name, "value": value}
	for k, v := range tags {
		fields["tag."+k] = v
	}
	r.entry.WithFields(fields).Debug("metric")
}

func (r *TallyReporter) ReportCounter(name string, tags map[string]string, value int64) {
	r.report(name, tags, value)
}

func (r *TallyReporter) ReportGauge(name string, tags map[string]string, value float64) {
	r.report(name, tags, value)
}

func (r *TallyReporter) ReportTimer(name string, tags map[string]string, interval time.Duration) {
	r.report(name, tags, interval)
}

func (r *TallyReporter) ReportHistogramValueSamples(name string, tags map[string]string, _ tally.Buckets, _, upper float64, samples int64) {
	r.report(name, tags, map[string]interface{}{"le": upper, "samples": samples})
}

func (r *TallyReporter) ReportHistogramDurationSamples(name string, tags map[string]string, _ tally.Buckets, _, upper time.Duration, samples int64) {
	r.report(name, tags, map[string]interface{}{"le": upper, "samples": samples})
}
