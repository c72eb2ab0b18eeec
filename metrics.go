package mqtt

import "github.com/prometheus/client_golang/prometheus"

// DecodeMetrics exposes optional Prometheus instrumentation for Decode. A
// nil *DecodeMetrics is always safe to pass through DecodeOptions: every
// method on it is a no-op, so instrumentation is opt-in per caller rather
// than a package-global side effect.
type DecodeMetrics struct {
	PacketsDecoded *prometheus.CounterVec
	BytesDecoded   prometheus.Counter
	DecodeErrors   *prometheus.CounterVec
}

// NewDecodeMetrics builds a fresh, unregistered DecodeMetrics.
func NewDecodeMetrics() *DecodeMetrics {
	return &DecodeMetrics{
		PacketsDecoded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mqtt_codec_packets_decoded_total",
			Help: "Total control packets successfully decoded, by packet type.",
		}, []string{"packet_type"}),
		BytesDecoded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mqtt_codec_bytes_decoded_total",
			Help: "Total bytes consumed by successful Decode calls.",
		}),
		DecodeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mqtt_codec_decode_errors_total",
			Help: "Total Decode failures, by ErrorKind. NeedMore is not counted here.",
		}, []string{"kind"}),
	}
}

// Register adds m's collectors to reg. Safe to call once per registerer;
// call it on a freshly built DecodeMetrics, before first use.
func (m *DecodeMetrics) Register(reg prometheus.Registerer) error {
	if m == nil {
		return nil
	}
	for _, c := range []prometheus.Collector{m.PacketsDecoded, m.BytesDecoded, m.DecodeErrors} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *DecodeMetrics) observeDecode(pkt Packet, consumed int) {
	if m == nil {
		return
	}
	m.PacketsDecoded.WithLabelValues(PacketNames[pkt.Type()]).Inc()
	m.BytesDecoded.Add(float64(consumed))
}

func (m *DecodeMetrics) observeError(err error) {
	if m == nil || IsNeedMore(err) {
		return
	}
	kind := "unknown"
	if de := AsDecodeError(err); de != nil {
		kind = de.Kind.String()
	}
	m.DecodeErrors.WithLabelValues(kind).Inc()
}
