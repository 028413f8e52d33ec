// Package duconfig holds the process-wide settings that govern PDU
// codec strictness and DUL timing, loaded once at startup and passed
// explicitly to every reactor rather than read from package-level
// globals (the teacher's PDU layer read ad hoc constants inline; this
// collects them into one struct per the REDESIGN note against
// configuration globals).
package duconfig

import (
	"time"

	"github.com/spf13/viper"
)

// Config governs one process's DUL behavior. A single Config is shared
// read-only by every association a process hosts.
type Config struct {
	// EnforceUIDConformance rejects UIDs that aren't purely numeric,
	// dot-separated components with no leading zeros (PS3.5 §9.1). Off
	// by default since many real peers emit non-conformant UIDs that
	// still round-trip safely.
	EnforceUIDConformance bool

	// MaxPDULength is the value server.Server advertises in the Maximum
	// Length sub-item of its outbound A-ASSOCIATE-AC. Outbound
	// A-ASSOCIATE-RQs take theirs from client.Config.MaxPDULength.
	MaxPDULength uint32

	// ARTIMTimeout bounds how long the DUL waits in a state where only
	// the ARTIM timer can move it forward (PS3.8 §9.1.5).
	ARTIMTimeout time.Duration

	// RunLoopDelay mirrors pynetdicom's dul.py _run_loop_delay. It is
	// loaded and stored only: the reactor's run loop blocks in a select
	// and does not read it.
	RunLoopDelay time.Duration

	// IndicationQueueDepth bounds the channel the reactor uses to hand
	// indications and confirmations to the service user; a full queue
	// means the user isn't draining fast enough.
	IndicationQueueDepth int

	// LogRequestIdentifiers and LogResponseIdentifiers are identifier
	// logging toggles. They are loaded and stored only; the reactor does
	// not read them and logs no AE titles or UIDs at info level.
	LogRequestIdentifiers  bool
	LogResponseIdentifiers bool
}

// Default returns the configuration pynetdicom's ACSE_TIMEOUT/ARTIM
// defaults and this engine's own queueing choices settle on.
func Default() Config {
	return Config{
		EnforceUIDConformance:  false,
		MaxPDULength:           16384,
		ARTIMTimeout:           30 * time.Second,
		RunLoopDelay:           1 * time.Millisecond,
		IndicationQueueDepth:   64,
		LogRequestIdentifiers:  true,
		LogResponseIdentifiers: true,
	}
}

// Load builds a Config from Default, overridden by any matching keys
// viper finds in the environment (prefixed DULENGINE_) or a config file
// previously set up on v via v.SetConfigFile/v.AddConfigPath.
func Load(v *viper.Viper) (Config, error) {
	cfg := Default()
	if v == nil {
		return cfg, nil
	}

	v.SetEnvPrefix("dulengine")
	v.AutomaticEnv()
	v.SetDefault("enforce_uid_conformance", cfg.EnforceUIDConformance)
	v.SetDefault("max_pdu_length", cfg.MaxPDULength)
	v.SetDefault("artim_timeout", cfg.ARTIMTimeout)
	v.SetDefault("run_loop_delay", cfg.RunLoopDelay)
	v.SetDefault("indication_queue_depth", cfg.IndicationQueueDepth)
	v.SetDefault("log_request_identifiers", cfg.LogRequestIdentifiers)
	v.SetDefault("log_response_identifiers", cfg.LogResponseIdentifiers)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	cfg.EnforceUIDConformance = v.GetBool("enforce_uid_conformance")
	cfg.MaxPDULength = uint32(v.GetUint("max_pdu_length"))
	cfg.ARTIMTimeout = v.GetDuration("artim_timeout")
	cfg.RunLoopDelay = v.GetDuration("run_loop_delay")
	cfg.IndicationQueueDepth = v.GetInt("indication_queue_depth")
	cfg.LogRequestIdentifiers = v.GetBool("log_request_identifiers")
	cfg.LogResponseIdentifiers = v.GetBool("log_response_identifiers")
	return cfg, nil
}
